package buffer

import "fmt"

// Position addresses a character inside the buffer.
// Both fields are 0-indexed; Index is a byte offset within the line.
type Position struct {
	Line  int
	Index int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Index)
}

// Match is a single search hit.
type Match = Position
