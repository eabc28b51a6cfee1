package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors shared by the tab bar, chips and status line.
type Palette struct {
    Active   lipgloss.Color
    Dirty    lipgloss.Color
    Global   lipgloss.Color
    Type     lipgloss.Color
    Muted    lipgloss.Color
    Focus    lipgloss.Color
    OnAccent lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Active:   lipgloss.Color("#3D6DFF"),
        Dirty:    lipgloss.Color("#F0AD4E"),
        Global:   lipgloss.Color("#2AA876"),
        Type:     lipgloss.Color("#6C757D"),
        Muted:    lipgloss.Color("#5A5A5A"),
        Focus:    lipgloss.Color("#D9534F"),
        OnAccent: lipgloss.Color("#FFFFFF"),
    }
}
