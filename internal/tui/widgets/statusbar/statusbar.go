package statusbar

import (
    "fmt"
    "strings"

    "tabgroups/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting editor and shell state.
func (StatusBar) View(s state.EditorState, v state.ViewState) string {
    focus := fmt.Sprintf("[%s]", s.ActiveEditor)
    counts := fmt.Sprintf("P:%d S:%d",
        len(s.Group(state.Primary).Documents),
        len(s.Group(state.Secondary).Documents))

    dirty := 0
    for _, k := range state.GroupKeys {
        for _, d := range s.Group(k).Documents {
            if d.Dirty {
                dirty++
            }
        }
    }

    parts := []string{focus, counts}
    if dirty > 0 {
        parts = append(parts, fmt.Sprintf("Modified:%d", dirty))
    }
    if s.DraggingTab {
        parts = append(parts, "Dragging")
    }
    if d, ok := s.ActiveDocument(); ok {
        parts = append(parts, d.DocumentID)
    }
    if v.Wrap {
        parts = append(parts, "Wrap: On")
    }
    if v.Notice != "" {
        parts = append(parts, v.Notice)
    }
    return strings.Join(parts, "  ")
}
