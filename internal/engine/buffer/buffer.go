package buffer

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrInvalidLine  = errors.New("invalid line")
	ErrInvalidIndex = errors.New("invalid index")
	ErrInvalidRange = errors.New("invalid range")
	ErrEmpty        = errors.New("buffer is empty")
)

// Buffer is an ordered, growable sequence of text lines.
type Buffer struct {
	lines []string
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromLines creates a buffer holding a copy of lines.
func NewBufferFromLines(lines []string, opts ...Option) *Buffer {
	return NewBuffer(append([]Option{WithLines(lines)}, opts...)...)
}

// Read Operations

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// IsEmpty returns true if the buffer holds no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Get returns the content of a line.
func (b *Buffer) Get(line int) (string, error) {
	if err := b.checkLine(line); err != nil {
		return "", err
	}
	return b.lines[line], nil
}

// LineLen returns the byte length of a line.
func (b *Buffer) LineLen(line int) (int, error) {
	if err := b.checkLine(line); err != nil {
		return 0, err
	}
	return len(b.lines[line]), nil
}

// Read returns length bytes of a line starting at index without modifying it.
func (b *Buffer) Read(line, index, length int) (string, error) {
	if err := b.checkRange(line, index, length); err != nil {
		return "", err
	}
	return b.lines[line][index : index+length], nil
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the lines joined with "\n".
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Write Operations

// Append adds text as a new last line.
func (b *Buffer) Append(text string) {
	b.lines = append(b.lines, text)
}

// NewLine adds a new empty last line.
func (b *Buffer) NewLine() {
	b.Append("")
}

// RemoveLast drops the last line and returns its content.
// It exists so that Append and NewLine can be reversed.
func (b *Buffer) RemoveLast() (string, error) {
	if len(b.lines) == 0 {
		return "", ErrEmpty
	}
	last := b.lines[len(b.lines)-1]
	b.lines[len(b.lines)-1] = ""
	b.lines = b.lines[:len(b.lines)-1]
	return last, nil
}

// Insert splices text into a line at index.
func (b *Buffer) Insert(line, index int, text string) error {
	if err := b.checkIndex(line, index); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	s := b.lines[line]
	b.lines[line] = s[:index] + text + s[index:]
	return nil
}

// DeleteRange removes length bytes of a line starting at index and returns
// the removed text.
func (b *Buffer) DeleteRange(line, index, length int) (string, error) {
	if err := b.checkRange(line, index, length); err != nil {
		return "", err
	}
	s := b.lines[line]
	removed := s[index : index+length]
	b.lines[line] = s[:index] + s[index+length:]
	return removed, nil
}

// ReplaceRange swaps length bytes at index for text and returns the bytes
// that were replaced.
func (b *Buffer) ReplaceRange(line, index, length int, text string) (string, error) {
	if err := b.checkRange(line, index, length); err != nil {
		return "", err
	}
	s := b.lines[line]
	old := s[index : index+length]
	b.lines[line] = s[:index] + text + s[index+length:]
	return old, nil
}

// ReplaceLine overwrites the full content of a line.
func (b *Buffer) ReplaceLine(line int, text string) error {
	if err := b.checkLine(line); err != nil {
		return err
	}
	b.lines[line] = text
	return nil
}

// Reset replaces every line with a copy of lines.
func (b *Buffer) Reset(lines []string) {
	b.lines = append(make([]string, 0, len(lines)), lines...)
}

// Validation

func (b *Buffer) checkLine(line int) error {
	if line < 0 || line >= len(b.lines) {
		return fmt.Errorf("line %d of %d: %w", line, len(b.lines), ErrInvalidLine)
	}
	return nil
}

func (b *Buffer) checkIndex(line, index int) error {
	if err := b.checkLine(line); err != nil {
		return err
	}
	if n := len(b.lines[line]); index < 0 || index > n {
		return fmt.Errorf("index %d on line %d (length %d): %w", index, line, n, ErrInvalidIndex)
	}
	return nil
}

func (b *Buffer) checkRange(line, index, length int) error {
	if err := b.checkIndex(line, index); err != nil {
		return err
	}
	if n := len(b.lines[line]); length < 0 || index+length > n {
		return fmt.Errorf("range [%d,%d) on line %d (length %d): %w", index, index+length, line, n, ErrInvalidRange)
	}
	return nil
}
