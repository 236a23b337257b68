package engine

import (
	"github.com/dshills/linedit/internal/engine/clipboard"
	"github.com/dshills/linedit/internal/persist"
)

// Default configuration values.
const (
	// DefaultMaxUndoEntries keeps every entry.
	DefaultMaxUndoEntries = 0
)

// Option configures a Session during creation.
type Option func(*Session)

// WithLines sets the initial content. It is the base state undo returns to
// and is not itself undoable.
func WithLines(lines []string) Option {
	return func(s *Session) {
		s.initLines = lines
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
// Zero keeps every entry.
func WithMaxUndoEntries(max int) Option {
	return func(s *Session) {
		if max >= 0 {
			s.maxUndoEntries = max
		}
	}
}

// WithClipboard replaces the default clipboard, e.g. with one that mirrors
// to the OS clipboard.
func WithClipboard(c *clipboard.Clipboard) Option {
	return func(s *Session) {
		if c != nil {
			s.clip = c
		}
	}
}

// WithStore sets the persistence backend used by LoadFromFile and
// SaveToFile.
func WithStore(store persist.Store) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}
