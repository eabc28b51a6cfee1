package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "tabgroups/internal/tui/state"
    "tabgroups/internal/tui/util"
)

// View renders tab tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.ACTIVE:
        return "Active"
    case state.DIRTY:
        return "Modified"
    case state.GLOBAL:
        return "Pinned"
    case state.TYPE:
        return t.Label
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.OnAccent)
    switch t.Kind {
    case state.ACTIVE:
        return base.Background(p.Active)
    case state.DIRTY:
        return base.Background(p.Dirty).Foreground(lipgloss.Color("#111111"))
    case state.GLOBAL:
        return base.Background(p.Global)
    case state.TYPE:
        return base.Background(p.Type).Bold(false)
    default:
        return base
    }
}
