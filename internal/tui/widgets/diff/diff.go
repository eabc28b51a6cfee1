package diff

import (
    "fmt"
    "sort"
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "tabgroups/internal/tui/state"
)

var (
    delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the difference between two editor snapshots, unified or
// side-by-side depending on v.View.
func (DiffView) View(v state.ViewState, before, after state.EditorState) string {
    b, a := Snapshot(before), Snapshot(after)
    if b == a {
        return "No changes\n"
    }
    rows := pairLines(b, a)
    if v.View == state.SideBySide {
        return sideBySide(rows, v)
    }
    return unified(rows, v)
}

// Snapshot renders s as stable, line-oriented text suitable for diffing.
func Snapshot(s state.EditorState) string {
    var b strings.Builder
    fmt.Fprintf(&b, "activeEditor: %s\n", s.ActiveEditor)
    fmt.Fprintf(&b, "draggingTab: %t\n", s.DraggingTab)
    for _, k := range state.GroupKeys {
        g := s.Group(k)
        fmt.Fprintf(&b, "[%s]\n", k)
        fmt.Fprintf(&b, "  active: %s\n", g.ActiveDocumentID)
        fmt.Fprintf(&b, "  tabOrder: %s\n", strings.Join(g.TabOrder, ", "))
        fmt.Fprintf(&b, "  recentTabs: %s\n", strings.Join(g.RecentTabs, ", "))
        ids := make([]string, 0, len(g.Documents))
        for id := range g.Documents {
            ids = append(ids, id)
        }
        sort.Strings(ids)
        for _, id := range ids {
            d := g.Documents[id]
            fmt.Fprintf(&b, "  doc %s: file=%s type=%s dirty=%t global=%t\n",
                id, d.FileName, d.ContentType, d.Dirty, d.IsGlobal)
            if len(d.Meta) > 0 {
                fmt.Fprintf(&b, "    meta=%s\n", string(d.Meta))
            }
        }
    }
    return b.String()
}

// row is one aligned line pair. A missing side is marked by has* = false.
type row struct {
    left, right       string
    hasLeft, hasRight bool
}

// pairLines runs a line-mode diff and aligns deletions with the insertions
// that follow them.
func pairLines(before, after string) []row {
    d := dmp.New()
    ca, cb, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffCharsToLines(d.DiffMain(ca, cb, false), lines)

    var rows []row
    var dels []string
    flush := func() {
        for _, l := range dels {
            rows = append(rows, row{left: l, hasLeft: true})
        }
        dels = nil
    }
    for _, df := range diffs {
        ls := splitLines(df.Text)
        switch df.Type {
        case dmp.DiffEqual:
            flush()
            for _, l := range ls {
                rows = append(rows, row{left: l, right: l, hasLeft: true, hasRight: true})
            }
        case dmp.DiffDelete:
            dels = append(dels, ls...)
        case dmp.DiffInsert:
            for i, l := range ls {
                if i < len(dels) {
                    rows = append(rows, row{left: dels[i], right: l, hasLeft: true, hasRight: true})
                } else {
                    rows = append(rows, row{right: l, hasRight: true})
                }
            }
            if len(ls) < len(dels) {
                dels = dels[len(ls):]
            } else {
                dels = nil
            }
        }
    }
    flush()
    return rows
}

func splitLines(s string) []string {
    s = strings.TrimSuffix(s, "\n")
    if s == "" {
        return nil
    }
    return strings.Split(s, "\n")
}

func unified(rows []row, v state.ViewState) string {
    var b strings.Builder
    b.WriteString("STATE DIFF (Unified)\n")
    width := columnWidth(v, false)
    for _, r := range rows {
        if r.hasLeft && r.hasRight && r.left == r.right {
            if v.NoColor {
                fmt.Fprintf(&b, "  %s\n", fit(r.left, width, v))
            } else {
                fmt.Fprintf(&b, "  %s\n", faint.Render(fit(r.left, width, v)))
            }
            continue
        }
        if r.hasLeft {
            l := fit(r.left, width, v)
            if v.NoColor {
                fmt.Fprintf(&b, "- %s\n", l)
            } else {
                b.WriteString(delLine.Render("- ") + highlight(l, fit(r.right, width, v), dmp.DiffDelete) + "\n")
            }
        }
        if r.hasRight {
            rt := fit(r.right, width, v)
            if v.NoColor {
                fmt.Fprintf(&b, "+ %s\n", rt)
            } else {
                b.WriteString(addLine.Render("+ ") + highlight(fit(r.left, width, v), rt, dmp.DiffInsert) + "\n")
            }
        }
    }
    return b.String()
}

func sideBySide(rows []row, v state.ViewState) string {
    const sep = " │ "
    var b strings.Builder
    b.WriteString("BEFORE │ AFTER\n")
    colWidth := columnWidth(v, true)
    for _, r := range rows {
        l := clip(r.left, colWidth, v.ScrollH)
        rt := clip(r.right, colWidth, v.ScrollH)
        ml, mr := " ", " "
        if r.left != r.right || r.hasLeft != r.hasRight {
            if r.hasLeft {
                ml = "-"
            }
            if r.hasRight {
                mr = "+"
            }
        }
        left := pad(ml+" "+l, colWidth+2)
        right := mr + " " + rt
        if !v.NoColor && ml == "-" {
            left = delLine.Render(left)
        }
        if !v.NoColor && mr == "+" {
            right = addLine.Render(right)
        }
        fmt.Fprintf(&b, "%s%s%s\n", left, sep, right)
    }
    return b.String()
}

// highlight renders the side of a changed line pair selected by kind with
// char-level spans for the changed runs.
func highlight(before, after string, kind dmp.Operation) string {
    d := dmp.New()
    diffs := d.DiffMain(before, after, false)
    diffs = d.DiffCleanupSemantic(diffs)
    line, char := delLine, delChar
    if kind == dmp.DiffInsert {
        line, char = addLine, addChar
    }
    var sb strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case kind:
            sb.WriteString(char.Render(df.Text))
        case dmp.DiffEqual:
            sb.WriteString(line.Render(df.Text))
        }
    }
    return sb.String()
}

func columnWidth(v state.ViewState, split bool) int {
    if v.Width <= 0 {
        return 40
    }
    w := v.Width - 2
    if split {
        w = (v.Width - 3) / 2 - 2
    }
    if w < 10 {
        w = 10
    }
    return w
}

func fit(s string, width int, v state.ViewState) string {
    if v.Wrap {
        return s
    }
    return clip(s, width, v.ScrollH)
}

func clip(s string, width int, start int) string {
    runes := []rune(s)
    if start < 0 {
        start = 0
    }
    if start >= len(runes) {
        return ""
    }
    end := start + width
    if end > len(runes) {
        end = len(runes)
    }
    return string(runes[start:end])
}

func pad(s string, width int) string {
    if w := len([]rune(s)); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}
