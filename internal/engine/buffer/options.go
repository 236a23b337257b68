package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLines seeds the buffer with initial content.
// The slice is copied.
func WithLines(lines []string) Option {
	return func(b *Buffer) {
		b.lines = append(b.lines[:0], lines...)
	}
}

