// Package history provides undo/redo for the line editor engine.
//
// Every buffer mutation is a Command with Execute and Undo. The variant set
// is closed and tagged by Kind:
//
//   - AppendCommand, NewLineCommand: add a last line
//   - InsertCommand: splice text into a line
//   - DeleteCommand, CutCommand: remove a range (cut also fills the clipboard)
//   - CopyCommand: fill the clipboard, no buffer effect
//   - PasteCommand: insert the clipboard content
//   - InsertReplaceCommand: insert, undone by restoring the whole line
//   - ReplaceCommand: swap a range for new text
//   - CompoundCommand: several commands as one undo unit
//
// A command captures what its Undo needs during its first successful
// Execute. Redo calls Execute again and replays the captured data.
//
// # History Stack
//
// History keeps two stacks. Executing a command pushes it on the undo stack
// and drops the redo stack; Undo and Redo move commands between them:
//
//	h := NewHistory(0) // unbounded
//	h.Execute(NewInsertCommand(0, 5, " there"), buf, clip)
//	h.Undo(buf, clip)
//	h.Redo(buf, clip)
//
// # Command Grouping
//
// Commands executed between BeginGroup and EndGroup undo together:
//
//	h.Transaction("script", func() error {
//	    // ... multiple edits ...
//	    return nil
//	})
//
// History is not safe for concurrent use.
package history
