package state

// Action is any value accepted by Reduce. Unknown types pass through.
type Action interface{}

// AppendTab moves a tab to the end of Dest's tab order.
type AppendTab struct {
    Src        GroupKey `json:"srcEditorKey"`
    Dest       GroupKey `json:"destEditorKey"`
    DocumentID string   `json:"documentId"`
}

// Close removes a document from a group.
type Close struct {
    Group      GroupKey `json:"editorKey"`
    DocumentID string   `json:"documentId"`
}

// CloseAll closes every non-global document, or everything when IncludeGlobal is set.
type CloseAll struct {
    IncludeGlobal bool `json:"includeGlobal"`
}

// Open opens or focuses Document in the active group.
type Open struct {
    Document Document
}

// UpdateDocument merges Patch onto the document with the same id.
type UpdateDocument struct {
    Patch DocumentPatch
}

// SetActiveEditor focuses a group.
type SetActiveEditor struct {
    Group GroupKey `json:"editorKey"`
}

// SetActiveTab focuses a document in whichever group holds it.
type SetActiveTab struct {
    DocumentID string `json:"documentId"`
}

// SetDirtyFlag marks a document as having (or not having) unsaved changes.
type SetDirtyFlag struct {
    DocumentID string `json:"documentId"`
    Dirty      bool   `json:"dirty"`
}

// SplitTab moves a document into Dest and focuses it there.
type SplitTab struct {
    Src        GroupKey `json:"srcEditorKey"`
    Dest       GroupKey `json:"destEditorKey"`
    DocumentID string   `json:"documentId"`
}

// SwapTabs reorders a tab within a group or moves it before DestTabID in another group.
type SwapTabs struct {
    Src       GroupKey `json:"srcEditorKey"`
    SrcTabID  string   `json:"srcTabId"`
    Dest      GroupKey `json:"destEditorKey"`
    DestTabID string   `json:"destTabId"`
}

// ToggleDraggingTab records whether a tab drag is in progress.
type ToggleDraggingTab struct {
    Dragging bool `json:"draggingTab"`
}

// groupsOf returns the group keys an action refers to.
func groupsOf(a Action) []GroupKey {
    switch a := a.(type) {
    case AppendTab:
        return []GroupKey{a.Src, a.Dest}
    case Close:
        return []GroupKey{a.Group}
    case SetActiveEditor:
        return []GroupKey{a.Group}
    case SplitTab:
        return []GroupKey{a.Src, a.Dest}
    case SwapTabs:
        return []GroupKey{a.Src, a.Dest}
    }
    return nil
}
