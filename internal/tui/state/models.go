package state

import "encoding/json"

// GroupKey identifies one of the two tab groups.
type GroupKey string

const (
    Primary   GroupKey = "primary"
    Secondary GroupKey = "secondary"
)

// GroupKeys lists every recognized group key in iteration order.
var GroupKeys = []GroupKey{Primary, Secondary}

// Valid reports whether k is one of the recognized group keys.
func (k GroupKey) Valid() bool {
    return k == Primary || k == Secondary
}

// EditorState is the root of the tab bookkeeping tree. A zero value (nil
// Editors) means "no state yet" and is replaced by InitialState in Reduce.
type EditorState struct {
    ActiveEditor GroupKey              `json:"activeEditor"`
    DraggingTab  bool                  `json:"draggingTab"`
    Editors      map[GroupKey]TabGroup `json:"editors"`
}

// TabGroup is one pane of tabs.
type TabGroup struct {
    ActiveDocumentID string              `json:"activeDocumentId,omitempty"` // "" when the group is empty
    Documents        map[string]Document `json:"documents"`
    // TabOrder is the left-to-right order in the tab bar.
    TabOrder []string `json:"tabOrder"`
    // RecentTabs is most-recently-activated first.
    RecentTabs []string `json:"recentTabs"`
}

// Document is a single open tab. Meta is opaque to the reducer.
type Document struct {
    DocumentID  string          `json:"documentId"`
    ContentType string          `json:"contentType,omitempty"`
    FileName    string          `json:"fileName,omitempty"`
    Dirty       bool            `json:"dirty,omitempty"`
    IsGlobal    bool            `json:"isGlobal,omitempty"`
    Meta        json.RawMessage `json:"meta,omitempty"`
}

// DocumentPatch carries the fields to merge onto an existing document.
// Nil fields are left unchanged.
type DocumentPatch struct {
    DocumentID  string          `json:"documentId"`
    ContentType *string         `json:"contentType,omitempty"`
    FileName    *string         `json:"fileName,omitempty"`
    Dirty       *bool           `json:"dirty,omitempty"`
    IsGlobal    *bool           `json:"isGlobal,omitempty"`
    Meta        json.RawMessage `json:"meta,omitempty"`
}

// NewTabGroup returns the canonical empty group.
func NewTabGroup() TabGroup {
    return TabGroup{
        Documents:  map[string]Document{},
        TabOrder:   []string{},
        RecentTabs: []string{},
    }
}

// InitialState returns the start-of-session state: two empty groups with
// the primary group focused.
func InitialState() EditorState {
    return EditorState{
        ActiveEditor: Primary,
        DraggingTab:  false,
        Editors: map[GroupKey]TabGroup{
            Primary:   NewTabGroup(),
            Secondary: NewTabGroup(),
        },
    }
}

// Group returns the group stored under k, or an empty group if absent.
func (s EditorState) Group(k GroupKey) TabGroup {
    if g, ok := s.Editors[k]; ok {
        return g
    }
    return NewTabGroup()
}

// ActiveGroup returns the focused group.
func (s EditorState) ActiveGroup() TabGroup {
    return s.Group(s.ActiveEditor)
}

// ActiveDocument returns the focused document of the focused group.
func (s EditorState) ActiveDocument() (Document, bool) {
    g := s.ActiveGroup()
    if g.ActiveDocumentID == "" {
        return Document{}, false
    }
    d, ok := g.Documents[g.ActiveDocumentID]
    return d, ok
}

// FindDocument looks up id across groups in GroupKeys order.
func (s EditorState) FindDocument(id string) (GroupKey, Document, bool) {
    for _, k := range GroupKeys {
        if d, ok := s.Editors[k].Documents[id]; ok {
            return k, d, true
        }
    }
    return "", Document{}, false
}

// Clone returns a fully independent deep copy of s.
func (s EditorState) Clone() EditorState {
    out := EditorState{ActiveEditor: s.ActiveEditor, DraggingTab: s.DraggingTab}
    if s.Editors == nil {
        return out
    }
    out.Editors = make(map[GroupKey]TabGroup, len(s.Editors))
    for k, g := range s.Editors {
        out.Editors[k] = g.Clone()
    }
    return out
}

// Clone returns a deep copy of g.
func (g TabGroup) Clone() TabGroup {
    out := TabGroup{
        ActiveDocumentID: g.ActiveDocumentID,
        Documents:        make(map[string]Document, len(g.Documents)),
        TabOrder:         append([]string{}, g.TabOrder...),
        RecentTabs:       append([]string{}, g.RecentTabs...),
    }
    for id, d := range g.Documents {
        out.Documents[id] = d.Clone()
    }
    return out
}

// Clone returns a copy of d that shares no memory with it.
func (d Document) Clone() Document {
    if d.Meta != nil {
        d.Meta = append(json.RawMessage(nil), d.Meta...)
    }
    return d
}

// Apply merges the set fields of p onto d.
func (p DocumentPatch) Apply(d Document) Document {
    if p.ContentType != nil {
        d.ContentType = *p.ContentType
    }
    if p.FileName != nil {
        d.FileName = *p.FileName
    }
    if p.Dirty != nil {
        d.Dirty = *p.Dirty
    }
    if p.IsGlobal != nil {
        d.IsGlobal = *p.IsGlobal
    }
    if p.Meta != nil {
        d.Meta = append(json.RawMessage(nil), p.Meta...)
    }
    return d
}
