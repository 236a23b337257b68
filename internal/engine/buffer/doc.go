// Package buffer provides the line store at the bottom of the editor engine.
//
// A Buffer is an ordered list of lines addressed by 0-based position. Lines
// hold raw bytes; every index is a byte index, not a rune index.
//
// The buffer knows nothing about undo. It exposes bounds-checked primitives
// that either succeed completely or fail without touching any line:
//
//	buf := buffer.NewBuffer()
//	buf.Append("hello")
//	buf.Insert(0, 5, " there")       // "hello there"
//	removed, _ := buf.DeleteRange(0, 0, 6) // "hello "
//
// Position rules:
//
//   - A line index is valid in [0, LineCount()). Anything else is
//     ErrInvalidLine; indices are never clamped.
//   - A character index is valid in [0, len(line)]. Inserting at len(line)
//     appends to the end of that line.
//   - A range (index, length) is valid when index+length <= len(line).
//
// Search returns a lazy iterator of matches that is recomputed every time it
// is ranged over.
//
// A Buffer is not safe for concurrent use. The owning session serializes
// access.
package buffer
