package state

import (
    "errors"
    "fmt"
    "strings"
    "testing"
)

func TestStoreDispatchAndSubscribe(t *testing.T) {
    var lines []string
    st := NewStore(EditorState{}, func(f string, a ...any) { lines = append(lines, fmt.Sprintf(f, a...)) })
    calls := 0
    unsub := st.Subscribe(func(prev, next EditorState) {
        calls++
        if HasDocuments(prev.Editors[Primary]) {
            t.Fatalf("prev snapshot should still be empty")
        }
    })
    next, err := st.Dispatch(Open{Document: doc("a")})
    if err != nil {
        t.Fatalf("dispatch: %v", err)
    }
    if next.Editors[Primary].ActiveDocumentID != "a" || st.State().ActiveEditor != Primary {
        t.Fatalf("unexpected state after dispatch")
    }
    if calls != 1 {
        t.Fatalf("expected one notification, got %d", calls)
    }
    if len(lines) != 1 || !strings.HasPrefix(lines[0], "OPEN a") {
        t.Fatalf("expected log line for OPEN, got %v", lines)
    }
    unsub()
    st.Dispatch(ToggleDraggingTab{Dragging: true})
    if calls != 1 {
        t.Fatalf("unsubscribed func still called")
    }
}

func TestStoreRejectsUnknownGroup(t *testing.T) {
    st := NewStore(InitialState(), nil)
    _, err := st.Dispatch(Close{Group: "left", DocumentID: "a"})
    if !errors.Is(err, ErrUnknownGroup) {
        t.Fatalf("expected ErrUnknownGroup, got %v", err)
    }
    if len(st.History()) != 0 {
        t.Fatalf("rejected action should not be recorded")
    }
}

func TestStoreRejectsUnknownAction(t *testing.T) {
    st := NewStore(InitialState(), nil)
    if _, err := st.Dispatch(42); !errors.Is(err, ErrUnknownAction) {
        t.Fatalf("expected ErrUnknownAction, got %v", err)
    }
}

func TestStoreUndoAndHistoryLimit(t *testing.T) {
    st := NewStore(InitialState(), nil)
    st.SetHistoryLimit(2)
    for _, id := range []string{"a", "b", "c"} {
        if _, err := st.Dispatch(Open{Document: doc(id)}); err != nil {
            t.Fatalf("dispatch %s: %v", id, err)
        }
    }
    if n := len(st.History()); n != 2 {
        t.Fatalf("expected history trimmed to 2, got %d", n)
    }
    if !st.Undo() {
        t.Fatalf("expected undo to succeed")
    }
    if _, ok := st.State().Editors[Primary].Documents["c"]; ok {
        t.Fatalf("undo should drop c")
    }
    st.Undo()
    if st.Undo() {
        t.Fatalf("history should be exhausted")
    }
    if got := st.State().Editors[Primary].TabOrder; len(got) != 1 || got[0] != "a" {
        t.Fatalf("expected only a after two undos, got %v", got)
    }
}
