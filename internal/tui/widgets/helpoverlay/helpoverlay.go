package helpoverlay

import (
    "fmt"
    "strings"

    "tabgroups/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// Section is one titled group of key hints.
type Section struct {
    Title string
    Keys  []string
}

// DefaultSections lists the shell's key bindings grouped by purpose.
func DefaultSections() []Section {
    return []Section{
        {"Tabs", []string{"h/l or ←/→: previous/next tab", "H/L: move tab left/right", "/: quick switch"}},
        {"Groups", []string{"tab: switch group", "s: split to other group", "a: append to other group", "m: group menu", "D: toggle dragging"}},
        {"Documents", []string{"o: open path", "n: new untitled", "d: toggle modified", "g: toggle pinned", "y: copy file name"}},
        {"Closing", []string{"x: close tab", "X: close all unpinned", "ctrl+x: close everything"}},
        {"Panels", []string{"i: inspector", "v: unified/side-by-side", "[/]: scroll inspector ({/} fast)", "w: wrap", "ctrl+l: action log", "u: undo", "W: save workspace"}},
    }
}

// View returns grouped keys help with the focused group indicated.
func (HelpOverlay) View(s state.EditorState, sections []Section) string {
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Focus: %s)\n", s.ActiveEditor)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.Title)
        for _, k := range sec.Keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
