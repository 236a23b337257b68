package history

import (
	"errors"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/clipboard"
)

// BeginGroup starts a command group.
// Commands pushed while grouping will be combined into a single undo unit.
// Groups nest: an inner group only marks where its commands start, and the
// outermost group's name describes the recorded entry.
func (h *History) BeginGroup(name string) {
	if !h.IsGrouping() {
		h.groupName = name
		h.groupCmds = nil
	}
	h.groupStarts = append(h.groupStarts, len(h.groupCmds))
}

// EndGroup finishes the innermost command group.
// When the outermost group ends, all commands since its BeginGroup are
// combined into a CompoundCommand.
func (h *History) EndGroup() {
	if !h.IsGrouping() {
		return
	}

	h.groupStarts = h.groupStarts[:len(h.groupStarts)-1]
	if h.IsGrouping() {
		return
	}

	if len(h.groupCmds) == 0 {
		h.groupCmds = nil
		return
	}

	compound := NewCompoundCommand(h.groupName, h.groupCmds...)
	h.groupCmds = nil
	h.Push(compound)
}

// AbortGroup ends the innermost command group by undoing every command
// executed since its BeginGroup, newest first. Nothing is recorded and the
// redo stack is untouched.
func (h *History) AbortGroup(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	if !h.IsGrouping() {
		return ErrNotGrouping
	}

	last := len(h.groupStarts) - 1
	start := h.groupStarts[last]
	cmds := append([]Command(nil), h.groupCmds[start:]...)
	clear(h.groupCmds[start:])
	h.groupCmds = h.groupCmds[:start]
	h.groupStarts = h.groupStarts[:last]
	if !h.IsGrouping() {
		h.groupCmds = nil
	}

	return NewCompoundCommand(h.groupName, cmds...).Undo(buf, clip)
}

// IsGrouping returns true if currently in a command group.
func (h *History) IsGrouping() bool {
	return len(h.groupStarts) > 0
}

// Pending returns the number of commands held by open groups.
func (h *History) Pending() int {
	return len(h.groupCmds)
}

// GroupScope provides a convenient way to group commands using defer.
// Usage:
//
//	func doComplexEdit(h *History, buf *buffer.Buffer, clip *clipboard.Clipboard) {
//	    defer h.GroupScope("Complex Edit").End()
//	    // ... multiple edits ...
//	}
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{
		history: h,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Abort rolls back the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) Abort(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	if !g.active {
		return nil
	}
	g.active = false
	return g.history.AbortGroup(buf, clip)
}

// Transaction executes a function within a grouped undo context.
// If the function returns an error, the group's edits are rolled back and
// the function's error is returned. Otherwise, the group is ended normally.
func (h *History) Transaction(name string, buf *buffer.Buffer, clip *clipboard.Clipboard, fn func() error) error {
	h.BeginGroup(name)

	if err := fn(); err != nil {
		if rbErr := h.AbortGroup(buf, clip); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	h.EndGroup()
	return nil
}

// ExecuteGrouped executes multiple commands as a single undo unit.
func (h *History) ExecuteGrouped(name string, buf *buffer.Buffer, clip *clipboard.Clipboard, cmds ...Command) error {
	if len(cmds) == 0 {
		return nil
	}

	if len(cmds) == 1 {
		// Single command doesn't need grouping
		return h.Execute(cmds[0], buf, clip)
	}

	return h.Transaction(name, buf, clip, func() error {
		for _, cmd := range cmds {
			if err := h.Execute(cmd, buf, clip); err != nil {
				return err
			}
		}
		return nil
	})
}

// Checkpoint represents a point in history that can be returned to.
type Checkpoint struct {
	undoDepth int
}

// CreateCheckpoint creates a checkpoint at the current history position.
func (h *History) CreateCheckpoint() Checkpoint {
	return Checkpoint{undoDepth: len(h.undoStack)}
}

// UndoToCheckpoint undoes all operations since the checkpoint.
func (h *History) UndoToCheckpoint(cp Checkpoint, buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	for h.UndoCount() > cp.undoDepth {
		if err := h.Undo(buf, clip); err != nil {
			return err
		}
	}
	return nil
}

// RedoToCheckpoint redoes all operations up to the checkpoint depth.
// Note: This only works if the redo stack has the operations.
func (h *History) RedoToCheckpoint(cp Checkpoint, buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	for h.UndoCount() < cp.undoDepth && h.CanRedo() {
		if err := h.Redo(buf, clip); err != nil {
			return err
		}
	}
	return nil
}
