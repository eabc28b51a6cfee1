package state

// OtherGroup returns the sibling of k. There are exactly two groups, so every
// group has exactly one sibling.
func OtherGroup(k GroupKey) GroupKey {
    if k == Primary {
        return Secondary
    }
    return Primary
}

// HasDocuments reports whether g holds at least one document.
func HasDocuments(g TabGroup) bool {
    return len(g.Documents) > 0
}

// without returns a copy of ids with every occurrence of id removed.
func without(ids []string, id string) []string {
    out := make([]string, 0, len(ids))
    for _, v := range ids {
        if v != id {
            out = append(out, v)
        }
    }
    return out
}

// bumpFront moves id to the front of ids, dropping any earlier occurrence.
func bumpFront(ids []string, id string) []string {
    return append([]string{id}, without(ids, id)...)
}

func indexOf(ids []string, id string) int {
    for i, v := range ids {
        if v == id {
            return i
        }
    }
    return -1
}

// insertAt returns a copy of ids with id inserted at position i.
func insertAt(ids []string, i int, id string) []string {
    if i < 0 {
        i = 0
    }
    if i > len(ids) {
        i = len(ids)
    }
    out := make([]string, 0, len(ids)+1)
    out = append(out, ids[:i]...)
    out = append(out, id)
    return append(out, ids[i:]...)
}

func firstOrEmpty(ids []string) string {
    if len(ids) == 0 {
        return ""
    }
    return ids[0]
}
