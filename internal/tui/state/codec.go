package state

import (
    "bufio"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "strings"
)

// Wire names of the action kinds.
const (
    TypeAppendTab         = "APPEND_TAB"
    TypeClose             = "CLOSE"
    TypeCloseAll          = "CLOSE_ALL"
    TypeOpen              = "OPEN"
    TypeUpdateDocument    = "UPDATE_DOCUMENT"
    TypeSetActiveEditor   = "SET_ACTIVE_EDITOR"
    TypeSetActiveTab      = "SET_ACTIVE_TAB"
    TypeSetDirtyFlag      = "SET_DIRTY_FLAG"
    TypeSplitTab          = "SPLIT_TAB"
    TypeSwapTabs          = "SWAP_TABS"
    TypeToggleDraggingTab = "TOGGLE_DRAGGING_TAB"
)

// ErrUnknownAction is returned when an encoded action has an unrecognized type.
var ErrUnknownAction = errors.New("unknown action type")

type envelope struct {
    Type    string          `json:"type"`
    Payload json.RawMessage `json:"payload,omitempty"`
}

// TypeOf returns the wire name of a, or "" if a is not a known action.
func TypeOf(a Action) string {
    switch a.(type) {
    case AppendTab:
        return TypeAppendTab
    case Close:
        return TypeClose
    case CloseAll:
        return TypeCloseAll
    case Open:
        return TypeOpen
    case UpdateDocument:
        return TypeUpdateDocument
    case SetActiveEditor:
        return TypeSetActiveEditor
    case SetActiveTab:
        return TypeSetActiveTab
    case SetDirtyFlag:
        return TypeSetDirtyFlag
    case SplitTab:
        return TypeSplitTab
    case SwapTabs:
        return TypeSwapTabs
    case ToggleDraggingTab:
        return TypeToggleDraggingTab
    }
    return ""
}

// EncodeAction renders a as {"type": ..., "payload": ...}.
func EncodeAction(a Action) ([]byte, error) {
    typ := TypeOf(a)
    if typ == "" {
        return nil, fmt.Errorf("encode %T: %w", a, ErrUnknownAction)
    }
    var payload any = a
    switch v := a.(type) {
    case Open:
        payload = v.Document
    case UpdateDocument:
        payload = v.Patch
    }
    raw, err := json.Marshal(payload)
    if err != nil {
        return nil, fmt.Errorf("encode %s payload: %w", typ, err)
    }
    return json.Marshal(envelope{Type: typ, Payload: raw})
}

// DecodeAction parses one encoded action.
func DecodeAction(data []byte) (Action, error) {
    var env envelope
    if err := json.Unmarshal(data, &env); err != nil {
        return nil, fmt.Errorf("parse action JSON: %w", err)
    }
    payload := env.Payload
    if len(payload) == 0 {
        payload = json.RawMessage("{}")
    }
    var (
        a   Action
        err error
    )
    switch env.Type {
    case TypeAppendTab:
        a, err = decodeInto[AppendTab](payload)
    case TypeClose:
        a, err = decodeInto[Close](payload)
    case TypeCloseAll:
        a, err = decodeInto[CloseAll](payload)
    case TypeOpen:
        var d Document
        d, err = decodeInto[Document](payload)
        a = Open{Document: d}
    case TypeUpdateDocument:
        var p DocumentPatch
        p, err = decodeInto[DocumentPatch](payload)
        a = UpdateDocument{Patch: p}
    case TypeSetActiveEditor:
        a, err = decodeInto[SetActiveEditor](payload)
    case TypeSetActiveTab:
        a, err = decodeInto[SetActiveTab](payload)
    case TypeSetDirtyFlag:
        a, err = decodeInto[SetDirtyFlag](payload)
    case TypeSplitTab:
        a, err = decodeInto[SplitTab](payload)
    case TypeSwapTabs:
        a, err = decodeInto[SwapTabs](payload)
    case TypeToggleDraggingTab:
        a, err = decodeInto[ToggleDraggingTab](payload)
    default:
        return nil, fmt.Errorf("%q: %w", env.Type, ErrUnknownAction)
    }
    if err != nil {
        return nil, fmt.Errorf("parse %s payload: %w", env.Type, err)
    }
    return a, nil
}

func decodeInto[T any](raw json.RawMessage) (T, error) {
    var v T
    err := json.Unmarshal(raw, &v)
    return v, err
}

// ReadActions reads a JSON-lines action script. Blank lines and lines
// starting with '#' are skipped.
func ReadActions(r io.Reader) ([]Action, error) {
    var out []Action
    sc := bufio.NewScanner(r)
    sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
    line := 0
    for sc.Scan() {
        line++
        text := strings.TrimSpace(sc.Text())
        if text == "" || strings.HasPrefix(text, "#") {
            continue
        }
        a, err := DecodeAction([]byte(text))
        if err != nil {
            return nil, fmt.Errorf("line %d: %w", line, err)
        }
        out = append(out, a)
    }
    if err := sc.Err(); err != nil {
        return nil, fmt.Errorf("read actions: %w", err)
    }
    return out, nil
}
