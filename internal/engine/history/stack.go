package history

import (
	"errors"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/clipboard"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrNotGrouping   = errors.New("no group in progress")
)

// History manages undo/redo state for a buffer.
type History struct {
	undoStack []*entry
	redoStack []*entry

	// Grouping state; groupStarts holds the offset into groupCmds of each
	// open level, outermost first
	groupStarts []int
	groupName   string
	groupCmds   []Command

	// Configuration; zero means unbounded
	maxEntries int
}

// NewHistory creates a new history manager.
// A maxEntries of zero or less keeps every entry.
func NewHistory(maxEntries int) *History {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Execute runs a command and adds it to the undo stack.
// If the command fails nothing is recorded and the redo stack survives.
// Commands of a non-mutating kind run without being recorded.
func (h *History) Execute(cmd Command, buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	if err := cmd.Execute(buf, clip); err != nil {
		return err
	}
	if !cmd.Kind().Mutating() {
		return nil
	}

	h.Push(cmd)
	return nil
}

// Push adds an already executed command to the undo stack.
// Clears the redo stack. While a group is open the command is held by the
// group and redo is left alone until the group is recorded.
func (h *History) Push(cmd Command) {
	if h.IsGrouping() {
		h.groupCmds = append(h.groupCmds, cmd)
		return
	}

	// Clear redo stack
	clear(h.redoStack)
	h.redoStack = h.redoStack[:0]

	h.undoStack = append(h.undoStack, newEntry(cmd))
	h.trim()
}

// trim enforces max entries by dropping the oldest.
func (h *History) trim() {
	if h.maxEntries == 0 || len(h.undoStack) <= h.maxEntries {
		return
	}
	excess := len(h.undoStack) - h.maxEntries
	clear(h.undoStack[:excess])
	h.undoStack = h.undoStack[excess:]
}

// Undo undoes the last command. While a group is open it retracts the last
// command of the group instead, and that command cannot be redone.
func (h *History) Undo(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	if h.IsGrouping() {
		return h.undoInGroup(buf, clip)
	}
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}

	top := len(h.undoStack) - 1
	e := h.undoStack[top]

	// On failure the entry stays where it was
	if err := e.command.Undo(buf, clip); err != nil {
		return err
	}

	h.undoStack[top] = nil
	h.undoStack = h.undoStack[:top]
	h.redoStack = append(h.redoStack, e)
	return nil
}

// undoInGroup drops the newest command of the innermost open group.
func (h *History) undoInGroup(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	n := len(h.groupCmds)
	if n == h.groupStarts[len(h.groupStarts)-1] {
		return ErrNothingToUndo
	}
	if err := h.groupCmds[n-1].Undo(buf, clip); err != nil {
		return err
	}
	h.groupCmds[n-1] = nil
	h.groupCmds = h.groupCmds[:n-1]
	return nil
}

// Redo redoes the last undone command. Nothing can be redone while a group
// is open.
func (h *History) Redo(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	if h.IsGrouping() || len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}

	top := len(h.redoStack) - 1
	e := h.redoStack[top]

	if err := e.command.Execute(buf, clip); err != nil {
		return err
	}

	h.redoStack[top] = nil
	h.redoStack = h.redoStack[:top]
	h.undoStack = append(h.undoStack, e)
	h.trim()
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Commands returns the undo stack bottom to top.
func (h *History) Commands() []Command {
	out := make([]Command, len(h.undoStack))
	for i, e := range h.undoStack {
		out[i] = e.command
	}
	return out
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.groupStarts = nil
	h.groupName = ""
	h.groupCmds = nil
}

// UndoInfo returns info about available undo operations, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.undoStack))
	for i, e := range h.undoStack {
		result[i] = e.info()
	}
	return result
}

// RedoInfo returns info about available redo operations, oldest undo last.
func (h *History) RedoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.redoStack))
	for i, e := range h.redoStack {
		result[i] = e.info()
	}
	return result
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max < 0 {
		max = 0
	}
	h.maxEntries = max
	h.trim()
}

// MaxEntries returns the maximum number of undo entries, zero if unbounded.
func (h *History) MaxEntries() int {
	return h.maxEntries
}
