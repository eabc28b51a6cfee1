package documents

import (
    "fmt"
    "sort"
    "strings"

    "github.com/agnivade/levenshtein"

    "tabgroups/internal/tui/state"
    "tabgroups/internal/tui/util"
    chips "tabgroups/internal/tui/widgets/tagchips"
)

// RenderTags is a thin adapter over the TagChips widget for list items.
func RenderTags(tags []state.Tag, noColor bool) string {
    return chips.View(tags, noColor)
}

// RenderItem returns one list line: title, chips, and the group it lives in.
func RenderItem(key state.GroupKey, d state.Document, active bool, noColor bool) string {
    return fmt.Sprintf("%-24s %s  (%s)", util.Title(d), RenderTags(util.ComputeTags(d, active), noColor), key)
}

// Match is a quick-switch candidate.
type Match struct {
    Group    state.GroupKey
    Document state.Document
    Score    int
}

// Rank orders every open document by how closely its title matches query.
// Substring hits come first, prefix hits before inner hits; the rest are
// ordered by edit distance. An empty query lists documents in tab order.
func Rank(s state.EditorState, query string) []Match {
    q := strings.ToLower(strings.TrimSpace(query))
    var out []Match
    for _, k := range state.GroupKeys {
        g := s.Group(k)
        for i, id := range g.TabOrder {
            d, ok := g.Documents[id]
            if !ok {
                continue
            }
            out = append(out, Match{Group: k, Document: d, Score: score(q, strings.ToLower(util.Title(d)), i)})
        }
    }
    if q == "" {
        return out
    }
    sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
    return out
}

func score(q, title string, pos int) int {
    switch {
    case q == "":
        return pos
    case strings.HasPrefix(title, q):
        return 0
    case strings.Contains(title, q):
        return 1
    }
    return 2 + levenshtein.ComputeDistance(q, title)
}

// RenderMatches lists up to limit candidates with the selected one marked.
func RenderMatches(ms []Match, selected, limit int, noColor bool) string {
    var b strings.Builder
    for i, m := range ms {
        if limit > 0 && i >= limit {
            fmt.Fprintf(&b, "  … %d more\n", len(ms)-limit)
            break
        }
        cursor := "  "
        if i == selected {
            cursor = "> "
        }
        b.WriteString(cursor + RenderItem(m.Group, m.Document, false, noColor) + "\n")
    }
    return b.String()
}
