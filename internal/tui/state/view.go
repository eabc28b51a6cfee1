package state

// Panel is the overlay currently shown below the tab groups.
type Panel int

const (
    PanelNone Panel = iota
    PanelInspector
    PanelLog
    PanelHelp
)

// DiffMode controls how the state inspector renders a transition.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// ViewState holds shell-only UI state used by the status bar, inspector and
// log panel. It never affects EditorState.
type ViewState struct {
    Panel Panel
    Wrap  bool
    View  DiffMode

    // Layout & scrolling
    Width   int
    Height  int
    MinCol  int
    ScrollH int
    NoColor bool

    // Notices and ephemeral messages
    Notice string
}

// TogglePanel shows p, or hides it if it is already showing.
func TogglePanel(v ViewState, p Panel) ViewState {
    if v.Panel == p {
        v.Panel = PanelNone
    } else {
        v.Panel = p
    }
    return v
}

// ToggleWrap flips the Wrap flag and returns a new state copy.
func ToggleWrap(v ViewState) ViewState {
    v.Wrap = !v.Wrap
    return v
}

// ToggleView switches between Unified and SideBySide inspector views.
func ToggleView(v ViewState) ViewState {
    if v.View == Unified {
        v.View = SideBySide
    } else {
        v.View = Unified
    }
    return v
}

// Resize updates the size and falls back to unified if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(v ViewState, width, height int) ViewState {
    v.Width = width
    v.Height = height
    threshold := 2*v.MinCol + 3
    if v.View == SideBySide && v.Width < threshold {
        v.View = Unified
        v.Notice = "Narrow width: using unified view"
    }
    return v
}

// ScrollLeft moves the inspector's horizontal offset left.
func ScrollLeft(v ViewState, fast bool) ViewState {
    delta := 1
    if fast {
        delta = 8
    }
    if v.ScrollH >= delta {
        v.ScrollH -= delta
    } else {
        v.ScrollH = 0
    }
    return v
}

// ScrollRight moves the inspector's horizontal offset right.
func ScrollRight(v ViewState, fast bool) ViewState {
    delta := 1
    if fast {
        delta = 8
    }
    v.ScrollH += delta
    return v
}

// SetNotice replaces the ephemeral status message.
func SetNotice(v ViewState, msg string) ViewState {
    v.Notice = msg
    return v
}
