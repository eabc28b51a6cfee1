package editor

import (
    "bytes"
    "encoding/json"
    "fmt"
    "strings"

    "tabgroups/internal/tui/state"
    "tabgroups/internal/tui/util"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View renders the focused document's header and its metadata. Document
// contents are owned by the host application and are not shown here.
func (Editor) View(s state.EditorState) string {
    d, ok := s.ActiveDocument()
    if !ok {
        return "No document open. Press o to open a path or n for a new one.\n"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "%s  (%s)\n", util.Title(d), util.ShortType(d))
    fmt.Fprintf(&b, "  id:    %s\n", d.DocumentID)
    if d.FileName != "" {
        fmt.Fprintf(&b, "  path:  %s\n", d.FileName)
    }
    flags := []string{}
    if d.Dirty {
        flags = append(flags, "modified")
    }
    if d.IsGlobal {
        flags = append(flags, "pinned")
    }
    if len(flags) > 0 {
        fmt.Fprintf(&b, "  flags: %s\n", strings.Join(flags, ", "))
    }
    if len(d.Meta) > 0 {
        var pretty bytes.Buffer
        if err := json.Indent(&pretty, d.Meta, "  ", "  "); err == nil {
            fmt.Fprintf(&b, "  meta:  %s\n", pretty.String())
        } else {
            fmt.Fprintf(&b, "  meta:  %s\n", string(d.Meta))
        }
    }
    return b.String()
}
