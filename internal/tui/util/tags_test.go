package util

import (
    "testing"

    "tabgroups/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func TestTypeAlwaysPresent(t *testing.T) {
    tags := ComputeTags(state.Document{DocumentID: "x", FileName: "/tmp/echo.bot"}, false)
    idx, ok := findKind(tags, state.TYPE)
    if !ok {
        t.Fatalf("expected TYPE tag present")
    }
    if tags[idx].Label != "bot" {
        t.Fatalf("expected extension fallback, got %q", tags[idx].Label)
    }
    if _, ok := findKind(tags, state.ACTIVE); ok {
        t.Fatalf("did not expect ACTIVE on an inactive tab")
    }
}

func TestShortTypeFromContentType(t *testing.T) {
    d := state.Document{ContentType: "application/vnd.microsoft.bfemulator.document.transcript"}
    if got := ShortType(d); got != "transcript" {
        t.Fatalf("got %q", got)
    }
    if got := ShortType(state.Document{}); got != "text" {
        t.Fatalf("expected text fallback, got %q", got)
    }
}

func TestStableOrder(t *testing.T) {
    d := state.Document{DocumentID: "x", Dirty: true, IsGlobal: true}
    tags := ComputeTags(d, true)
    // Expected order: ACTIVE, DIRTY, GLOBAL, TYPE
    order := []state.TagKind{state.ACTIVE, state.DIRTY, state.GLOBAL, state.TYPE}
    if len(tags) != len(order) {
        t.Fatalf("expected %d tags, got %d", len(order), len(tags))
    }
    for i, k := range order {
        if tags[i].Kind != k {
            t.Fatalf("tag %d is %v, want %v", i, tags[i].Kind, k)
        }
    }
}

func TestTitle(t *testing.T) {
    if got := Title(state.Document{DocumentID: "id-1", FileName: "/a/b/c.bot"}); got != "c.bot" {
        t.Fatalf("got %q", got)
    }
    if got := Title(state.Document{DocumentID: "id-1"}); got != "id-1" {
        t.Fatalf("got %q", got)
    }
}
