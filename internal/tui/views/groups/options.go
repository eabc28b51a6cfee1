package groups

import (
    "fmt"
    "strings"

    "tabgroups/internal/tui/state"
)

// Option is one entry of a group's context menu.
type Option struct {
    Label  string
    Action state.Action
}

// RenderOptions returns the context menu for group k without numeric shortcuts.
// Entries that would be no-ops for the current state are left out.
func RenderOptions(s state.EditorState, k state.GroupKey) []Option {
    g := s.Group(k)
    other := state.OtherGroup(k)
    var opts []Option
    if s.ActiveEditor != k {
        opts = append(opts, Option{"Focus Group", state.SetActiveEditor{Group: k}})
    }
    if id := g.ActiveDocumentID; id != "" {
        opts = append(opts,
            Option{"Split Tab To " + title(other), state.SplitTab{Src: k, Dest: other, DocumentID: id}},
            Option{"Append Tab To " + title(other), state.AppendTab{Src: k, Dest: other, DocumentID: id}},
            Option{"Close Tab", state.Close{Group: k, DocumentID: id}},
        )
    }
    if state.HasDocuments(s.Group(state.Primary)) || state.HasDocuments(s.Group(state.Secondary)) {
        opts = append(opts,
            Option{"Close All", state.CloseAll{}},
            Option{"Close All Including Pinned", state.CloseAll{IncludeGlobal: true}},
        )
    }
    return opts
}

// View lists opts with the cursor on selected.
func View(k state.GroupKey, opts []Option, selected int) string {
    var b strings.Builder
    fmt.Fprintf(&b, "%s group\n", title(k))
    if len(opts) == 0 {
        b.WriteString("  (nothing to do)\n")
    }
    for i, o := range opts {
        cursor := "  "
        if i == selected {
            cursor = "> "
        }
        b.WriteString(cursor + o.Label + "\n")
    }
    return b.String()
}

func title(k state.GroupKey) string {
    s := string(k)
    if s == "" {
        return s
    }
    return strings.ToUpper(s[:1]) + s[1:]
}
