package engine

import (
	"errors"
	"iter"

	"github.com/google/uuid"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/clipboard"
	"github.com/dshills/linedit/internal/engine/history"
	"github.com/dshills/linedit/internal/persist"
)

// Re-export commonly used types for convenience.
type (
	// Match is a search hit.
	Match = buffer.Match

	// Position addresses a character in the buffer.
	Position = buffer.Position

	// Command is an undoable edit command.
	Command = history.Command

	// OperationInfo describes a history entry.
	OperationInfo = history.OperationInfo
)

// Session is the editing facade. It owns a line buffer, a clipboard and an
// undo/redo history, and turns every mutating call into a Command recorded
// in that history.
//
// A Session is not safe for concurrent use. Callers that share one must
// serialize every call, reads included.
type Session struct {
	id uuid.UUID

	// Core components
	buf     *buffer.Buffer
	clip    *clipboard.Clipboard
	history *history.History
	store   persist.Store

	// File state. clean is the ID of the top undo entry when the buffer
	// last matched the file; dirty marks a change history can no longer see.
	path  string
	clean string
	dirty bool

	// Configuration
	maxUndoEntries int
	initLines      []string
}

// New creates a new Session with the given options.
func New(opts ...Option) *Session {
	s := &Session{
		id:             uuid.New(),
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.buf = buffer.NewBufferFromLines(s.initLines)
	s.initLines = nil
	if s.clip == nil {
		s.clip = clipboard.New()
	}
	if s.store == nil {
		s.store = persist.NewFileStore()
	}
	s.history = history.NewHistory(s.maxUndoEntries)

	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// ============================================================================
// Read Operations
// ============================================================================

// Get returns the content of a line.
func (s *Session) Get(line int) (string, error) {
	return s.buf.Get(line)
}

// Lines returns a copy of every line.
func (s *Session) Lines() []string {
	return s.buf.Lines()
}

// LineCount returns the number of lines.
func (s *Session) LineCount() int {
	return s.buf.LineCount()
}

// Text returns the lines joined with "\n".
func (s *Session) Text() string {
	return s.buf.Text()
}

// Search returns every non-overlapping occurrence of needle in document
// order. It is not a command and is not recorded.
func (s *Session) Search(needle string) iter.Seq[Match] {
	return s.buf.Search(needle)
}

// ClipboardText returns the clipboard content.
func (s *Session) ClipboardText() string {
	return s.clip.Text()
}

// ============================================================================
// Edit Operations
// ============================================================================

// Append adds text as a new last line.
func (s *Session) Append(text string) error {
	return s.perform(history.NewAppendCommand(text))
}

// NewLine adds an empty last line.
func (s *Session) NewLine() error {
	return s.perform(history.NewNewLineCommand())
}

// InsertAt splices text into a line. index may equal the line length.
func (s *Session) InsertAt(line, index int, text string) error {
	return s.perform(history.NewInsertCommand(line, index, text))
}

// DeleteRange removes length bytes of a line starting at index.
func (s *Session) DeleteRange(line, index, length int) error {
	return s.perform(history.NewDeleteCommand(line, index, length))
}

// Cut removes a range of a line and places it in the clipboard.
func (s *Session) Cut(line, index, length int) error {
	return s.perform(history.NewCutCommand(line, index, length))
}

// Copy places a range of a line in the clipboard. Copy is not recorded in
// history and leaves redo available.
func (s *Session) Copy(line, index, length int) error {
	return s.perform(history.NewCopyCommand(line, index, length))
}

// Paste inserts the clipboard content into a line at index.
func (s *Session) Paste(line, index int) error {
	return s.perform(history.NewPasteCommand(line, index))
}

// InsertReplace inserts text into a line; undoing it restores the whole line
// as it was.
func (s *Session) InsertReplace(line, index int, text string) error {
	return s.perform(history.NewInsertReplaceCommand(line, index, text))
}

// Replace swaps length bytes at index for text.
func (s *Session) Replace(line, index, length int, text string) error {
	return s.perform(history.NewReplaceCommand(line, index, length, text))
}

// perform executes a command through the history.
func (s *Session) perform(cmd Command) error {
	return s.history.Execute(cmd, s.buf, s.clip)
}

// ============================================================================
// Undo/Redo Operations
// ============================================================================

// Undo undoes the last command.
func (s *Session) Undo() error {
	return s.history.Undo(s.buf, s.clip)
}

// Redo redoes the last undone command.
func (s *Session) Redo() error {
	return s.history.Redo(s.buf, s.clip)
}

// CanUndo returns true if undo is available.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// UndoInfo returns the undo stack, oldest first.
func (s *Session) UndoInfo() []OperationInfo {
	return s.history.UndoInfo()
}

// RedoInfo returns the redo stack, next redo last.
func (s *Session) RedoInfo() []OperationInfo {
	return s.history.RedoInfo()
}

// PeekUndo returns the entry the next Undo reverts.
func (s *Session) PeekUndo() (OperationInfo, bool) {
	return s.history.PeekUndo()
}

// PeekRedo returns the entry the next Redo reapplies.
func (s *Session) PeekRedo() (OperationInfo, bool) {
	return s.history.PeekRedo()
}

// Transaction runs fn with every edit it makes grouped into one undo entry.
// If fn returns an error its edits are rolled back and nothing is recorded.
func (s *Session) Transaction(name string, fn func() error) error {
	return s.history.Transaction(name, s.buf, s.clip, fn)
}

// ClearHistory drops all undo and redo entries. The buffer is unchanged, and
// so is Modified.
func (s *Session) ClearHistory() {
	s.dirty = s.Modified()
	s.history.Clear()
	s.clean = ""
}

// ============================================================================
// Persistence
// ============================================================================

// LoadFromFile replaces the buffer with the lines of path. The loaded
// content becomes the new base state: history is cleared, the clipboard is
// kept. On error the session is unchanged.
func (s *Session) LoadFromFile(path string) error {
	lines, err := s.store.LoadLines(path)
	if err != nil {
		return err
	}
	s.buf.Reset(lines)
	s.history.Clear()
	s.path = path
	s.markClean()
	return nil
}

// SaveToFile writes every line to path. An empty path saves to the last
// loaded or saved file.
func (s *Session) SaveToFile(path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return ErrNoPath
	}
	if err := s.store.SaveLines(path, s.buf.Lines()); err != nil {
		return err
	}
	s.path = path
	s.markClean()
	return nil
}

// Path returns the file last loaded or saved, or "".
func (s *Session) Path() string {
	return s.path
}

// Modified returns true if the buffer differs from the last load or save.
// Undoing back to that point makes the session unmodified again.
func (s *Session) Modified() bool {
	if s.dirty || s.history.Pending() > 0 {
		return true
	}
	return s.topID() != s.clean
}

// markClean records the current history position as matching the file.
func (s *Session) markClean() {
	s.clean = s.topID()
	s.dirty = false
}

// topID returns the ID of the entry the next Undo reverts, or "".
func (s *Session) topID() string {
	info, _ := s.history.PeekUndo()
	return info.ID
}

// IsIOError reports whether err came from persistence.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}
