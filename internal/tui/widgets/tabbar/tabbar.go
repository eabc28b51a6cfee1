package tabbar

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "github.com/mattn/go-runewidth"

    "tabgroups/internal/tui/state"
    "tabgroups/internal/tui/util"
)

// DefaultMaxTitle is the display width a single tab title is clipped to.
const DefaultMaxTitle = 24

type TabBar struct {
    MaxTitle int
    NoColor  bool
}

func NewTabBar(noColor bool) TabBar { return TabBar{MaxTitle: DefaultMaxTitle, NoColor: noColor} }

// View renders one group's tabs in tab order. focused marks the group that
// holds keyboard focus; width bounds the whole line (0 = unbounded).
func (b TabBar) View(key state.GroupKey, g state.TabGroup, focused bool, width int) string {
    p := util.DefaultPalette()
    label := string(key)
    if focused {
        label += "*"
    }
    header := label + ":"
    if !b.NoColor {
        hs := lipgloss.NewStyle().Bold(focused).Foreground(p.Muted)
        if focused {
            hs = hs.Foreground(p.Focus)
        }
        header = hs.Render(header)
    }

    if len(g.TabOrder) == 0 {
        return header + " (empty)"
    }

    parts := make([]string, 0, len(g.TabOrder))
    for _, id := range g.TabOrder {
        d, ok := g.Documents[id]
        if !ok {
            continue
        }
        parts = append(parts, b.tab(d, id == g.ActiveDocumentID, focused))
    }
    line := header + " " + strings.Join(parts, " ")
    if width > 0 && lipgloss.Width(line) > width {
        if b.NoColor {
            line = runewidth.Truncate(line, width, "…")
        } else {
            line = lipgloss.NewStyle().MaxWidth(width).Render(line)
        }
    }
    return line
}

func (b TabBar) tab(d state.Document, active, focused bool) string {
    max := b.MaxTitle
    if max <= 0 {
        max = DefaultMaxTitle
    }
    title := runewidth.Truncate(util.Title(d), max, "…")
    if d.Dirty {
        title += " ●"
    }
    if d.IsGlobal {
        title = "⚑ " + title
    }
    if b.NoColor {
        if active {
            return "[" + title + "]"
        }
        return " " + title + " "
    }
    p := util.DefaultPalette()
    st := lipgloss.NewStyle().Padding(0, 1)
    switch {
    case active && focused:
        st = st.Background(p.Active).Foreground(p.OnAccent).Bold(true)
    case active:
        st = st.Underline(true)
    default:
        st = st.Foreground(p.Muted)
    }
    return st.Render(title)
}
