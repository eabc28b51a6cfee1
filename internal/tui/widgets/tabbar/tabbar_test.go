package tabbar

import (
    "strings"
    "testing"

    "tabgroups/internal/tui/state"
)

func group(ids ...string) state.TabGroup {
    g := state.NewTabGroup()
    for _, id := range ids {
        g.Documents[id] = state.Document{DocumentID: id, FileName: id + ".bot"}
        g.TabOrder = append(g.TabOrder, id)
        g.RecentTabs = append(g.RecentTabs, id)
    }
    if len(ids) > 0 {
        g.ActiveDocumentID = ids[0]
    }
    return g
}

func TestViewMarksActiveTab(t *testing.T) {
    out := NewTabBar(true).View(state.Primary, group("a", "b"), true, 0)
    if !strings.HasPrefix(out, "primary*:") {
        t.Fatalf("missing focused header: %q", out)
    }
    if !strings.Contains(out, "[a.bot]") || !strings.Contains(out, " b.bot ") {
        t.Fatalf("unexpected tab rendering: %q", out)
    }
}

func TestViewEmptyGroup(t *testing.T) {
    out := NewTabBar(true).View(state.Secondary, state.NewTabGroup(), false, 0)
    if out != "secondary: (empty)" {
        t.Fatalf("got %q", out)
    }
}

func TestViewDirtyAndTruncation(t *testing.T) {
    g := group("a")
    d := g.Documents["a"]
    d.Dirty = true
    d.FileName = strings.Repeat("x", 40) + ".bot"
    g.Documents["a"] = d
    bar := NewTabBar(true)
    bar.MaxTitle = 10
    out := bar.View(state.Primary, g, false, 0)
    if !strings.Contains(out, "…") || !strings.Contains(out, "●") {
        t.Fatalf("expected truncated dirty title: %q", out)
    }
    if narrow := bar.View(state.Primary, g, false, 12); len([]rune(narrow)) > 12 {
        t.Fatalf("line exceeds width: %q", narrow)
    }
}
