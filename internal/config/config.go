package config

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"

    "tabgroups/internal/tui/state"
)

// Workspace lists the documents to open at start-up and where they go:
// {"activeEditor": "primary", "documents": [{"group": "primary", "documentId": "...", ...}]}
type Workspace struct {
    ActiveEditor state.GroupKey `json:"activeEditor,omitempty"`
    Documents    []Entry        `json:"documents"`
}

// Entry is one open tab. Documents are listed in tab order per group.
type Entry struct {
    Group  state.GroupKey `json:"group,omitempty"` // defaults to primary
    Active bool           `json:"active,omitempty"`
    state.Document
}

func Load(path string) (*Workspace, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read workspace: %w", err)
    }
    var ws Workspace
    if err := json.Unmarshal(data, &ws); err != nil {
        return nil, fmt.Errorf("parse workspace JSON: %w", err)
    }
    if err := ws.normalize(); err != nil {
        return nil, err
    }
    return &ws, nil
}

func (ws *Workspace) normalize() error {
    if ws.ActiveEditor == "" {
        ws.ActiveEditor = state.Primary
    }
    if !ws.ActiveEditor.Valid() {
        return fmt.Errorf("workspace activeEditor: %w: %q", state.ErrUnknownGroup, ws.ActiveEditor)
    }
    for i := range ws.Documents {
        e := &ws.Documents[i]
        if e.DocumentID == "" {
            return fmt.Errorf("workspace entry %d: missing documentId", i)
        }
        if e.Group == "" {
            e.Group = state.Primary
        }
        if !e.Group.Valid() {
            return fmt.Errorf("workspace entry %d: %w: %q", i, state.ErrUnknownGroup, e.Group)
        }
    }
    return nil
}

// FromState captures the open tabs of s in tab order.
func FromState(s state.EditorState) *Workspace {
    ws := &Workspace{ActiveEditor: s.ActiveEditor, Documents: []Entry{}}
    for _, k := range state.GroupKeys {
        g := s.Group(k)
        for _, id := range g.TabOrder {
            d, ok := g.Documents[id]
            if !ok {
                continue
            }
            ws.Documents = append(ws.Documents, Entry{
                Group:    k,
                Active:   id == g.ActiveDocumentID,
                Document: d.Clone(),
            })
        }
    }
    return ws
}

// Actions returns the action sequence that rebuilds the workspace layout
// from InitialState. Secondary documents are only placed once the primary
// group has something in it; a workspace listing secondary documents only
// opens them in the primary group.
func (ws *Workspace) Actions() []state.Action {
    var primary, secondary []Entry
    for _, e := range ws.Documents {
        if e.Group == state.Secondary {
            secondary = append(secondary, e)
        } else {
            primary = append(primary, e)
        }
    }
    if len(primary) == 0 {
        primary, secondary = secondary, nil
    }

    var out []state.Action
    open := func(k state.GroupKey, es []Entry) {
        if len(es) == 0 {
            return
        }
        out = append(out, state.SetActiveEditor{Group: k})
        for _, e := range es {
            out = append(out, state.Open{Document: e.Document.Clone()})
        }
    }
    open(state.Primary, primary)
    open(state.Secondary, secondary)

    for _, es := range [][]Entry{primary, secondary} {
        for _, e := range es {
            if e.Active {
                out = append(out, state.SetActiveTab{DocumentID: e.DocumentID})
            }
        }
    }
    focus := ws.ActiveEditor
    if focus == state.Secondary && len(secondary) == 0 {
        focus = state.Primary
    }
    out = append(out, state.SetActiveEditor{Group: focus})
    return out
}

// Clone returns a deep copy.
func Clone(ws *Workspace) *Workspace {
    out := &Workspace{ActiveEditor: ws.ActiveEditor, Documents: make([]Entry, len(ws.Documents))}
    for i, e := range ws.Documents {
        cp := e
        cp.Document = e.Document.Clone()
        out.Documents[i] = cp
    }
    return out
}

func Save(path string, ws *Workspace) error {
    data, err := json.MarshalIndent(ws, "", "  ")
    if err != nil {
        return err
    }
    if dir := filepath.Dir(path); dir != "." {
        if err := os.MkdirAll(dir, 0o755); err != nil {
            return fmt.Errorf("mkdir workspace dir: %w", err)
        }
    }
    return os.WriteFile(path, data, 0644)
}
