package util

import (
    "path/filepath"
    "strings"

    "tabgroups/internal/tui/state"
)

// ComputeTags calculates the status chips for a tab.
//
// The returned slice preserves a stable order:
//   Active, Dirty, Global, Type
//
// Rules:
// - Active is set for the focused document of its group.
// - Dirty reflects unsaved changes.
// - Global marks documents that survive "close all".
// - Type is always included; it falls back to the file extension when the
//   document carries no content type.
func ComputeTags(d state.Document, active bool) []state.Tag {
    tags := make([]state.Tag, 0, 4)
    if active {
        tags = append(tags, state.Tag{Kind: state.ACTIVE})
    }
    if d.Dirty {
        tags = append(tags, state.Tag{Kind: state.DIRTY})
    }
    if d.IsGlobal {
        tags = append(tags, state.Tag{Kind: state.GLOBAL})
    }
    tags = append(tags, state.Tag{Kind: state.TYPE, Label: ShortType(d)})
    return tags
}

// ShortType returns a compact label for the document's content type.
func ShortType(d state.Document) string {
    ct := strings.TrimSpace(d.ContentType)
    if ct != "" {
        // application/vnd.microsoft.bfemulator.document.transcript -> transcript
        if i := strings.LastIndexAny(ct, "/."); i >= 0 && i < len(ct)-1 {
            return ct[i+1:]
        }
        return ct
    }
    if ext := strings.TrimPrefix(filepath.Ext(d.FileName), "."); ext != "" {
        return ext
    }
    return "text"
}

// Title returns the label shown on a tab.
func Title(d state.Document) string {
    if d.FileName != "" {
        return filepath.Base(d.FileName)
    }
    return d.DocumentID
}
