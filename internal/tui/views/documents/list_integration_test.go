package documents

import (
    "strings"
    "testing"

    "tabgroups/internal/tui/state"
    utiltags "tabgroups/internal/tui/util"
)

func TestRenderTagsIntegration(t *testing.T) {
    d := state.Document{DocumentID: "a", FileName: "/tmp/echo.bot", Dirty: true, IsGlobal: true}
    out := RenderTags(utiltags.ComputeTags(d, true), true) // noColor

    wants := []string{"[Active]", "[Modified]", "[Pinned]", "[bot]"}
    for _, w := range wants {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in output: %s", w, out)
        }
    }
}

func sample() state.EditorState {
    s := state.InitialState()
    for _, f := range []string{"echo.bot", "weather.transcript", "notes.md"} {
        s = state.Reduce(s, state.Open{Document: state.Document{DocumentID: f, FileName: f}})
    }
    return state.Reduce(s, state.SplitTab{
        DocumentID: "notes.md",
        Src:        state.Primary,
        Dest:       state.Secondary,
    })
}

func TestRankPrefersPrefix(t *testing.T) {
    ms := Rank(sample(), "wea")
    if len(ms) != 3 { t.Fatalf("want all 3 documents ranked, got %d", len(ms)) }
    if ms[0].Document.DocumentID != "weather.transcript" {
        t.Fatalf("prefix match should rank first, got %s", ms[0].Document.DocumentID)
    }
}

func TestRankAcrossGroups(t *testing.T) {
    ms := Rank(sample(), "notes")
    if ms[0].Document.DocumentID != "notes.md" || ms[0].Group != state.Secondary {
        t.Fatalf("unexpected best match: %+v", ms[0])
    }
}

func TestRankEmptyQueryKeepsTabOrder(t *testing.T) {
    ms := Rank(sample(), "")
    if ms[0].Document.DocumentID != "echo.bot" || ms[1].Document.DocumentID != "weather.transcript" {
        t.Fatalf("unexpected order: %v, %v", ms[0].Document.DocumentID, ms[1].Document.DocumentID)
    }
}

func TestRenderMatchesMarksSelection(t *testing.T) {
    out := RenderMatches(Rank(sample(), ""), 1, 2, true)
    lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
    if len(lines) != 3 { t.Fatalf("want 2 items + overflow line, got %q", out) }
    if !strings.HasPrefix(lines[1], "> ") { t.Fatalf("second line should be selected: %q", lines[1]) }
    if !strings.Contains(lines[2], "1 more") { t.Fatalf("missing overflow: %q", lines[2]) }
}
