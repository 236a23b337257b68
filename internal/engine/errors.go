package engine

import (
	"errors"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/history"
	"github.com/dshills/linedit/internal/persist"
)

// Errors returned by session operations. They are the sub-package sentinels
// re-exported, so errors.Is works with either name.
var (
	// ErrInvalidLine indicates a line index outside the buffer.
	ErrInvalidLine = buffer.ErrInvalidLine

	// ErrInvalidIndex indicates a character index outside the target line.
	ErrInvalidIndex = buffer.ErrInvalidIndex

	// ErrInvalidRange indicates index+length runs past the end of the line.
	ErrInvalidRange = buffer.ErrInvalidRange

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrIO indicates a persistence failure.
	ErrIO = persist.ErrIO

	// ErrNoPath indicates a save was requested before any file was named.
	ErrNoPath = errors.New("no file path")
)
