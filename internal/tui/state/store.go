package state

import (
    "errors"
    "fmt"
    "sync"
)

// ErrUnknownGroup is returned by Dispatch when an action names a group key
// other than Primary or Secondary.
var ErrUnknownGroup = errors.New("unknown tab group")

// DefaultHistory is the number of snapshots a Store keeps for Undo.
const DefaultHistory = 50

// Store holds the canonical EditorState and threads actions through Reduce.
type Store struct {
    mu      sync.Mutex
    cur     EditorState
    history []EditorState
    limit   int
    subs    map[int]func(prev, next EditorState)
    nextSub int
    log     func(format string, args ...any)
}

// NewStore returns a Store seeded with initial (InitialState if zero).
// logger may be nil.
func NewStore(initial EditorState, logger func(string, ...any)) *Store {
    if initial.Editors == nil {
        initial = InitialState()
    }
    if logger == nil {
        logger = func(string, ...any) {}
    }
    return &Store{
        cur:   initial,
        limit: DefaultHistory,
        subs:  map[int]func(prev, next EditorState){},
        log:   logger,
    }
}

// SetHistoryLimit bounds how many snapshots Undo can walk back through.
func (s *Store) SetHistoryLimit(n int) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if n < 0 {
        n = 0
    }
    s.limit = n
    s.trim()
}

// State returns the current snapshot.
func (s *Store) State() EditorState {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.cur
}

// Dispatch validates a, reduces it into the current state and notifies
// subscribers. Actions referencing unknown groups are rejected.
func (s *Store) Dispatch(a Action) (EditorState, error) {
    typ := TypeOf(a)
    if typ == "" {
        return s.State(), fmt.Errorf("dispatch %T: %w", a, ErrUnknownAction)
    }
    for _, k := range groupsOf(a) {
        if !k.Valid() {
            return s.State(), fmt.Errorf("dispatch %s: %q: %w", typ, k, ErrUnknownGroup)
        }
    }

    s.mu.Lock()
    prev := s.cur
    next := Reduce(prev, a)
    s.cur = next
    s.history = append(s.history, prev)
    s.trim()
    subs := make([]func(prev, next EditorState), 0, len(s.subs))
    for _, fn := range s.subs {
        subs = append(subs, fn)
    }
    s.mu.Unlock()

    s.log("%s %s", typ, describe(a))
    for _, fn := range subs {
        fn(prev, next)
    }
    return next, nil
}

// Undo restores the snapshot taken before the most recent Dispatch.
func (s *Store) Undo() bool {
    s.mu.Lock()
    if len(s.history) == 0 {
        s.mu.Unlock()
        return false
    }
    prev := s.cur
    next := s.history[len(s.history)-1]
    s.history = s.history[:len(s.history)-1]
    s.cur = next
    subs := make([]func(prev, next EditorState), 0, len(s.subs))
    for _, fn := range s.subs {
        subs = append(subs, fn)
    }
    s.mu.Unlock()

    s.log("undo")
    for _, fn := range subs {
        fn(prev, next)
    }
    return true
}

// History returns the retained snapshots, oldest first.
func (s *Store) History() []EditorState {
    s.mu.Lock()
    defer s.mu.Unlock()
    return append([]EditorState(nil), s.history...)
}

// Subscribe registers fn to run after every state change. The returned
// func removes it again.
func (s *Store) Subscribe(fn func(prev, next EditorState)) func() {
    s.mu.Lock()
    defer s.mu.Unlock()
    id := s.nextSub
    s.nextSub++
    s.subs[id] = fn
    return func() {
        s.mu.Lock()
        defer s.mu.Unlock()
        delete(s.subs, id)
    }
}

func (s *Store) trim() {
    if over := len(s.history) - s.limit; over > 0 {
        s.history = append([]EditorState(nil), s.history[over:]...)
    }
}

// describe renders the interesting payload fields of a for log lines.
func describe(a Action) string {
    switch a := a.(type) {
    case AppendTab:
        return fmt.Sprintf("%s %s->%s", a.DocumentID, a.Src, a.Dest)
    case SplitTab:
        return fmt.Sprintf("%s %s->%s", a.DocumentID, a.Src, a.Dest)
    case SwapTabs:
        return fmt.Sprintf("%s@%s before %s@%s", a.SrcTabID, a.Src, a.DestTabID, a.Dest)
    case Close:
        return fmt.Sprintf("%s in %s", a.DocumentID, a.Group)
    case CloseAll:
        return fmt.Sprintf("includeGlobal=%t", a.IncludeGlobal)
    case Open:
        return fmt.Sprintf("%s (%s)", a.Document.DocumentID, a.Document.FileName)
    case UpdateDocument:
        return a.Patch.DocumentID
    case SetActiveEditor:
        return string(a.Group)
    case SetActiveTab:
        return a.DocumentID
    case SetDirtyFlag:
        return fmt.Sprintf("%s dirty=%t", a.DocumentID, a.Dirty)
    case ToggleDraggingTab:
        return fmt.Sprintf("dragging=%t", a.Dragging)
    }
    return ""
}
