// Package engine provides the editing session for linedit.
//
// A Session composes the sub-packages into the operations a front end
// calls:
//
//   - buffer: ordered lines with bounds-checked splice primitives
//   - clipboard: single-slot clipboard shared by cut, copy and paste
//   - history: reversible commands and the undo/redo stacks
//
// Persistence goes through a persist.Store.
//
// # Basic Usage
//
//	s := engine.New()
//	s.Append("hello")
//	s.Append("world")
//	s.InsertAt(0, 5, " there") // line 0 is "hello there"
//	s.Undo()                   // line 0 is "hello"
//
// # Clipboard
//
//	s.Append("abcdef")
//	s.Cut(0, 1, 3)  // line 0 "aef", clipboard "bcd"
//	s.Paste(0, 1)   // line 0 "abcdef"
//
// Copy fills the clipboard without touching history: there is nothing to
// undo, and a pending redo stays available.
//
// # History
//
// Every successful mutating call pushes one entry and discards the redo
// stack. Undoing every entry returns the buffer to its base state: empty,
// or the content of the last LoadFromFile. Search, LoadFromFile and
// SaveToFile are not recorded.
//
// # Errors
//
// Errors from the sub-packages surface unchanged and are matched with
// errors.Is against ErrInvalidLine, ErrInvalidIndex, ErrInvalidRange,
// ErrNothingToUndo, ErrNothingToRedo and ErrIO. A failed call never leaves a
// partial edit behind.
//
// # Concurrency
//
// A Session is single-threaded. It does no locking; a caller sharing one
// across goroutines must serialize every call.
package engine
