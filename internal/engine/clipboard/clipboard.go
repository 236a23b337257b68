// Package clipboard holds the single-slot clipboard shared by cut, copy and
// paste.
//
// The slot is owned by the editing session and handed to commands by
// pointer. It is not versioned: undoing a cut does not bring back what the
// clipboard held before.
//
// When a system mirror is enabled every Set is also written to the OS
// clipboard. The session slot stays authoritative; paste never reads back
// from the OS.
package clipboard

import (
	sysclip "github.com/atotto/clipboard"
)

// Writer writes text to an external clipboard.
type Writer interface {
	WriteAll(text string) error
}

// SystemWriter writes to the OS clipboard.
type SystemWriter struct{}

// WriteAll implements Writer.
func (SystemWriter) WriteAll(text string) error {
	return sysclip.WriteAll(text)
}

// SystemAvailable reports whether an OS clipboard utility was found.
func SystemAvailable() bool {
	return !sysclip.Unsupported
}

// Clipboard is a single slot holding the most recently cut or copied text.
// An empty slot means nothing has been copied.
type Clipboard struct {
	text    string
	mirror  Writer
	onError func(error)
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithMirror mirrors every Set to w.
func WithMirror(w Writer) Option {
	return func(c *Clipboard) {
		c.mirror = w
	}
}

// WithSystemMirror mirrors every Set to the OS clipboard.
func WithSystemMirror() Option {
	return WithMirror(SystemWriter{})
}

// WithErrorHandler is called when mirroring fails.
func WithErrorHandler(fn func(error)) Option {
	return func(c *Clipboard) {
		c.onError = fn
	}
}

// New creates an empty clipboard.
func New(opts ...Option) *Clipboard {
	c := &Clipboard{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set overwrites the slot.
func (c *Clipboard) Set(text string) {
	c.text = text
	if c.mirror == nil {
		return
	}
	if err := c.mirror.WriteAll(text); err != nil && c.onError != nil {
		c.onError(err)
	}
}

// Text returns the slot content.
func (c *Clipboard) Text() string {
	return c.text
}

// IsEmpty returns true if nothing has been cut or copied.
func (c *Clipboard) IsEmpty() bool {
	return c.text == ""
}

// Clear empties the slot. The mirror is left alone.
func (c *Clipboard) Clear() {
	c.text = ""
}
