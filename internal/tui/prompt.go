package tui

import (
    "os"
    "path/filepath"
    "sort"
    "strconv"
    "strings"

    "github.com/agnivade/levenshtein"
    "github.com/charmbracelet/bubbles/textinput"
    "github.com/google/uuid"

    "tabgroups/internal/tui/state"
)

const maxSuggestions = 8

// prompt is the single-line input used by the open and quick-switch modes.
type prompt struct {
    input   textinput.Model
    suggest []string
    sel     int
}

func newPrompt() prompt {
    ti := textinput.New()
    ti.CharLimit = 512
    ti.Width = 60
    return prompt{input: ti}
}

func (p *prompt) start(placeholder string) {
    p.input.Reset()
    p.input.Placeholder = placeholder
    p.input.Focus()
    p.suggest = nil
    p.sel = 0
}

func (p *prompt) stop() {
    p.input.Blur()
    p.suggest = nil
    p.sel = 0
}

func (p *prompt) move(delta, n int) {
    if n == 0 {
        p.sel = 0
        return
    }
    p.sel = (p.sel + delta + n) % n
}

// computeSuggestions lists directory entries for the path typed so far,
// closest names first.
func computeSuggestions(in string) []string {
    if strings.TrimSpace(in) == "" {
        return nil
    }
    expanded := expandPath(in)
    dir := expanded
    base := ""
    if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() {
        dir = filepath.Dir(expanded)
        base = strings.ToLower(filepath.Base(expanded))
    }
    entries, err := os.ReadDir(dir)
    if err != nil {
        return nil
    }
    type cand struct {
        path string
        dist int
    }
    var cs []cand
    for _, e := range entries {
        name := strings.ToLower(e.Name())
        if base != "" && !strings.Contains(name, base) {
            continue
        }
        p := filepath.Join(dir, e.Name())
        // present with ~/ when within home
        if h, _ := os.UserHomeDir(); h != "" && strings.HasPrefix(p, h) {
            p = "~" + strings.TrimPrefix(p, h)
        }
        d := levenshtein.ComputeDistance(base, name)
        if strings.HasPrefix(name, base) {
            d = 0
        }
        cs = append(cs, cand{p, d})
    }
    sort.SliceStable(cs, func(i, j int) bool { return cs[i].dist < cs[j].dist })
    out := make([]string, 0, maxSuggestions)
    for _, c := range cs {
        if len(out) >= maxSuggestions {
            break
        }
        out = append(out, c.path)
    }
    return out
}

func expandPath(p string) string {
    p = strings.TrimSpace(p)
    if strings.HasPrefix(p, "~/") {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, p[2:])
        }
    }
    p = os.ExpandEnv(p)
    if !filepath.IsAbs(p) {
        if abs, err := filepath.Abs(p); err == nil {
            p = abs
        }
    }
    return p
}

// documentForPath builds the Document opened for a file path. The absolute
// path doubles as the document id so reopening focuses the existing tab.
func documentForPath(path string) state.Document {
    p := expandPath(path)
    return state.Document{
        DocumentID:  p,
        FileName:    p,
        ContentType: contentTypeFor(p),
    }
}

// untitledDocument returns a fresh unsaved document with a random id.
func untitledDocument(n int) state.Document {
    return state.Document{
        DocumentID:  uuid.NewString(),
        FileName:    "untitled-" + strconv.Itoa(n),
        ContentType: "text/plain",
        Dirty:       true,
    }
}

func contentTypeFor(path string) string {
    switch strings.ToLower(filepath.Ext(path)) {
    case ".bot":
        return "application/bot"
    case ".transcript":
        return "application/vnd.microsoft.bfemulator.document.transcript"
    case ".json":
        return "application/json"
    case ".md":
        return "text/markdown"
    case "":
        return ""
    }
    return "text/plain"
}
