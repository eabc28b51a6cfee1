package state

import "testing"

func TestToggleWrap(t *testing.T) {
    v := ViewState{Wrap: false}
    v = ToggleWrap(v)
    if !v.Wrap { t.Fatalf("expected Wrap to be true") }
}

func TestTogglePanel(t *testing.T) {
    v := ViewState{}
    v = TogglePanel(v, PanelInspector)
    if v.Panel != PanelInspector { t.Fatalf("expected inspector panel") }
    v = TogglePanel(v, PanelLog)
    if v.Panel != PanelLog { t.Fatalf("expected log panel to replace inspector") }
    v = TogglePanel(v, PanelLog)
    if v.Panel != PanelNone { t.Fatalf("expected panel hidden") }
}

func TestToggleView(t *testing.T) {
    v := ViewState{View: Unified}
    v = ToggleView(v)
    if v.View != SideBySide { t.Fatalf("expected SideBySide view") }
}

func TestResizeFallbackToUnified(t *testing.T) {
    v := ViewState{View: SideBySide, MinCol: 20}
    v = Resize(v, 30, 10) // threshold = 2*20+3 = 43; 30 < 43 => unified
    if v.View != Unified { t.Fatalf("expected Unified after resize fallback") }
    if v.Notice == "" { t.Fatalf("expected fallback notice to be set") }
}

func TestScrolls(t *testing.T) {
    v := ViewState{}
    v = ScrollRight(v, true)
    if v.ScrollH == 0 { t.Fatalf("expected scroll to increase") }
    v = ScrollLeft(v, true)
    if v.ScrollH != 0 { t.Fatalf("expected scroll to return to 0") }
}
