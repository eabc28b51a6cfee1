package state

// TagKind enumerates the status chips shown on a tab.
type TagKind int

const (
    // Stable ordering for display: Active, Dirty, Global, Type
    ACTIVE TagKind = iota
    DIRTY
    GLOBAL
    TYPE
)

// Tag represents a single status chip. Label is used by TYPE (the content
// type); the other kinds leave it empty.
type Tag struct {
    Kind  TagKind
    Label string
}
