package state

// Reduce applies a to s and returns the next state. s is never modified:
// every path that changes something works on a deep clone, so snapshots
// handed out earlier stay valid. A zero s is treated as InitialState().
// Unknown actions, and actions naming an unknown group, return s unchanged.
func Reduce(s EditorState, a Action) EditorState {
    if s.Editors == nil {
        s = InitialState()
    }
    for _, k := range groupsOf(a) {
        if !k.Valid() {
            return s
        }
    }

    switch a := a.(type) {

    // ===== MOVING TABS =====

    case AppendTab:
        id := a.DocumentID
        doc, ok := s.Editors[a.Src].Documents[id]
        if !ok {
            return s
        }
        next := s.Clone()

        // appending within the same group only re-adjusts tab order
        if a.Src == a.Dest {
            g := next.Editors[a.Src]
            g.TabOrder = append(without(g.TabOrder, id), id)
            setEditorState(&next, a.Src, g)
            return next
        }

        src := removeDocument(next.Editors[a.Src], id)
        dest := next.Group(a.Dest)
        dest.TabOrder = append(dest.TabOrder, id)
        dest.RecentTabs = append(dest.RecentTabs, id)
        dest.Documents[id] = doc.Clone()

        if !HasDocuments(src) && a.Src == Primary {
            setNewPrimaryEditor(&next, dest)
        } else {
            if !HasDocuments(src) {
                setActiveEditor(&next, a.Dest)
            }
            setEditorState(&next, a.Src, src)
            setEditorState(&next, a.Dest, dest)
        }
        setDraggingTab(&next, false)
        return next

    case SplitTab:
        id := a.DocumentID
        doc, ok := s.Editors[a.Src].Documents[id]
        if !ok {
            return s
        }
        next := s.Clone()

        if a.Src == a.Dest {
            g := next.Editors[a.Src]
            g.TabOrder = append(without(g.TabOrder, id), id)
            g.RecentTabs = bumpFront(g.RecentTabs, id)
            g.ActiveDocumentID = id
            setEditorState(&next, a.Src, g)
        } else {
            src := removeDocument(next.Editors[a.Src], id)
            dest, ok := next.Editors[a.Dest]
            if !ok {
                dest = NewTabGroup()
            }
            dest.TabOrder = append(dest.TabOrder, id)
            dest.RecentTabs = bumpFront(dest.RecentTabs, id)
            dest.Documents[id] = doc.Clone()
            dest.ActiveDocumentID = id
            setEditorState(&next, a.Src, src)
            setEditorState(&next, a.Dest, dest)
        }
        setActiveEditor(&next, a.Dest)
        setDraggingTab(&next, false)
        return next

    case SwapTabs:
        if a.Src == a.Dest {
            g := s.Editors[a.Src]
            i := indexOf(g.TabOrder, a.SrcTabID)
            j := indexOf(g.TabOrder, a.DestTabID)
            if i < 0 || j < 0 {
                return s
            }
            next := s.Clone()
            ng := next.Editors[a.Src]
            ng.TabOrder[i], ng.TabOrder[j] = ng.TabOrder[j], ng.TabOrder[i]
            setEditorState(&next, a.Src, ng)
            return next
        }

        id := a.SrcTabID
        doc, ok := s.Editors[a.Src].Documents[id]
        if !ok {
            return s
        }
        next := s.Clone()
        src := removeDocument(next.Editors[a.Src], id)
        dest := next.Group(a.Dest)
        dest.Documents[id] = doc.Clone()
        dest.RecentTabs = append(dest.RecentTabs, id)
        // lands before the destination tab; a missing destination tab
        // yields index -1, which puts it first
        dest.TabOrder = insertAt(dest.TabOrder, indexOf(dest.TabOrder, a.DestTabID), id)

        if !HasDocuments(src) && a.Src == Primary {
            setNewPrimaryEditor(&next, dest)
        } else {
            if !HasDocuments(src) {
                setActiveEditor(&next, a.Dest)
            }
            setEditorState(&next, a.Src, src)
            setEditorState(&next, a.Dest, dest)
        }
        return next

    // ===== OPENING / CLOSING =====

    case Close:
        g, ok := s.Editors[a.Group]
        if !ok {
            return s
        }
        if _, ok := g.Documents[a.DocumentID]; !ok {
            return s
        }
        next := s.Clone()
        g = removeDocument(next.Editors[a.Group], a.DocumentID)

        // an emptied group collapses into the other one
        other := OtherGroup(a.Group)
        if og, ok := next.Editors[other]; !HasDocuments(g) && ok {
            setNewPrimaryEditor(&next, og)
        } else {
            setEditorState(&next, a.Group, g)
        }
        return next

    case CloseAll:
        if a.IncludeGlobal {
            return InitialState()
        }
        next := s.Clone()
        for _, k := range GroupKeys {
            g, ok := next.Editors[k]
            if !ok {
                continue
            }
            kept := make(map[string]Document, len(g.Documents))
            for id, d := range g.Documents {
                if d.IsGlobal {
                    kept[id] = d
                }
            }
            ng := TabGroup{
                Documents:  kept,
                TabOrder:   keepOnly(g.TabOrder, kept),
                RecentTabs: keepOnly(g.RecentTabs, kept),
            }
            ng.ActiveDocumentID = firstOrEmpty(ng.RecentTabs)
            setEditorState(&next, k, ng)
        }
        fixupTabGroups(&next)
        return next

    case Open:
        id := a.Document.DocumentID
        if id == "" {
            return s
        }
        key := s.ActiveEditor
        other := OtherGroup(key)

        // already open next door: focus it there instead of duplicating
        if og := s.Editors[other]; HasDocuments(og) {
            if _, ok := og.Documents[id]; ok {
                next := s.Clone()
                og = next.Editors[other]
                og.RecentTabs = bumpFront(og.RecentTabs, id)
                og.ActiveDocumentID = id
                setEditorState(&next, other, og)
                setActiveEditor(&next, other)
                return next
            }
        }

        next := s.Clone()
        g := next.Group(key)
        if _, ok := g.Documents[id]; !ok {
            // new documents go right after the active tab
            if i := indexOf(g.TabOrder, g.ActiveDocumentID); g.ActiveDocumentID != "" && i >= 0 {
                g.TabOrder = insertAt(g.TabOrder, i+1, id)
            } else {
                g.TabOrder = append(g.TabOrder, id)
            }
        }
        g.RecentTabs = bumpFront(g.RecentTabs, id)
        g.Documents[id] = a.Document.Clone()
        g.ActiveDocumentID = id
        setEditorState(&next, key, g)
        setActiveEditor(&next, key)
        return next

    // ===== DOCUMENT FLAGS =====

    case UpdateDocument:
        id := a.Patch.DocumentID
        for _, k := range GroupKeys {
            d, ok := s.Editors[k].Documents[id]
            if !ok {
                continue
            }
            next := s.Clone()
            g := next.Editors[k]
            g.Documents[id] = a.Patch.Apply(d.Clone())
            setEditorState(&next, k, g)
            return next
        }
        return s

    case SetDirtyFlag:
        next, changed := s, false
        for _, k := range GroupKeys {
            d, ok := s.Editors[k].Documents[a.DocumentID]
            if !ok {
                continue
            }
            if !changed {
                next, changed = s.Clone(), true
            }
            g := next.Editors[k]
            d = d.Clone()
            d.Dirty = a.Dirty
            g.Documents[a.DocumentID] = d
            setEditorState(&next, k, g)
        }
        return next

    // ===== FOCUS =====

    case SetActiveEditor:
        next := s.Clone()
        setActiveEditor(&next, a.Group)
        return next

    case SetActiveTab:
        next, changed := s, false
        for _, k := range GroupKeys {
            if _, ok := s.Editors[k].Documents[a.DocumentID]; !ok {
                continue
            }
            if !changed {
                next, changed = s.Clone(), true
            }
            g := next.Editors[k]
            g.RecentTabs = bumpFront(g.RecentTabs, a.DocumentID)
            g.ActiveDocumentID = a.DocumentID
            setEditorState(&next, k, g)
            setActiveEditor(&next, k)
        }
        return next

    case ToggleDraggingTab:
        next := s.Clone()
        setDraggingTab(&next, a.Dragging)
        return next
    }

    return s
}

// removeDocument drops every trace of id from g. A group left without
// documents comes back as a fresh NewTabGroup.
func removeDocument(g TabGroup, id string) TabGroup {
    docs := make(map[string]Document, len(g.Documents))
    for k, d := range g.Documents {
        if k != id {
            docs[k] = d
        }
    }
    if len(docs) == 0 {
        return NewTabGroup()
    }
    recent := without(g.RecentTabs, id)
    return TabGroup{
        ActiveDocumentID: firstOrEmpty(recent),
        Documents:        docs,
        TabOrder:         without(g.TabOrder, id),
        RecentTabs:       recent,
    }
}

// keepOnly filters ids down to those present in docs, preserving order.
func keepOnly(ids []string, docs map[string]Document) []string {
    out := make([]string, 0, len(docs))
    for _, id := range ids {
        if _, ok := docs[id]; ok {
            out = append(out, id)
        }
    }
    return out
}

// The set* helpers patch a working copy that Reduce has already cloned.

func setEditorState(s *EditorState, k GroupKey, g TabGroup) {
    s.Editors[k] = g
}

func setActiveEditor(s *EditorState, k GroupKey) {
    s.ActiveEditor = k
}

// setNewPrimaryEditor makes g the primary group and clears the secondary.
func setNewPrimaryEditor(s *EditorState, g TabGroup) {
    s.Editors[Secondary] = NewTabGroup()
    s.Editors[Primary] = g
    s.ActiveEditor = Primary
}

func setDraggingTab(s *EditorState, dragging bool) {
    s.DraggingTab = dragging
}

// fixupTabGroups promotes the secondary group when the primary is empty and
// moves focus off an empty secondary.
func fixupTabGroups(s *EditorState) {
    if !HasDocuments(s.Editors[Primary]) && HasDocuments(s.Editors[Secondary]) {
        setNewPrimaryEditor(s, s.Editors[Secondary])
    }
    if s.ActiveEditor == Secondary && !HasDocuments(s.Editors[Secondary]) {
        setActiveEditor(s, Primary)
    }
}
