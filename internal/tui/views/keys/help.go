package keys

import (
    "tabgroups/internal/tui/state"
    help "tabgroups/internal/tui/widgets/helpoverlay"
)

// RenderHelp returns the grouped keys overlay content for the shell.
func RenderHelp(s state.EditorState) string {
    h := help.NewHelpOverlay()
    return h.View(s, help.DefaultSections())
}
