// Package persist loads and saves buffer lines as newline-delimited text.
//
// One buffer line is one file line. Every line is written with a trailing
// "\n"; on load a trailing "\r" is dropped so CRLF files read cleanly. There
// is no escaping, so a line holding "\n" is refused on save.
package persist

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Store reads and writes line sequences.
type Store interface {
	LoadLines(path string) ([]string, error)
	SaveLines(path string, lines []string) error
}

// FileStore implements Store on the local file system.
type FileStore struct {
	perm os.FileMode
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithPerm sets the mode used when creating files.
func WithPerm(perm os.FileMode) Option {
	return func(s *FileStore) {
		s.perm = perm
	}
}

// NewFileStore creates a file store.
func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{perm: 0o644}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadLines reads path and returns its lines.
func (s *FileStore) LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewIOError("load", path, errors.Join(ErrNotFound, err))
		}
		return nil, NewIOError("load", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, NewIOError("load", path, err)
	}
	return lines, nil
}

// SaveLines writes lines to path, replacing any existing content.
func (s *FileStore) SaveLines(path string, lines []string) error {
	if err := checkLines(lines); err != nil {
		return NewIOError("save", path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.perm)
	if err != nil {
		return NewIOError("save", path, err)
	}

	if err := WriteLines(f, lines); err != nil {
		f.Close()
		return NewIOError("save", path, err)
	}
	if err := f.Close(); err != nil {
		return NewIOError("save", path, err)
	}
	return nil
}

// ReadLines splits r into lines. Lines may be arbitrarily long.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteLines writes each line followed by "\n".
func WriteLines(w io.Writer, lines []string) error {
	if err := checkLines(lines); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func checkLines(lines []string) error {
	for _, line := range lines {
		if strings.ContainsRune(line, '\n') {
			return ErrLineContainsSeparator
		}
	}
	return nil
}

// MemStore keeps lines in memory.
type MemStore struct {
	files map[string][]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{files: make(map[string][]string)}
}

// LoadLines returns a copy of the lines stored under path.
func (m *MemStore) LoadLines(path string) ([]string, error) {
	lines, ok := m.files[path]
	if !ok {
		return nil, NewIOError("load", path, ErrNotFound)
	}
	return append([]string(nil), lines...), nil
}

// SaveLines stores a copy of lines under path.
func (m *MemStore) SaveLines(path string, lines []string) error {
	if err := checkLines(lines); err != nil {
		return NewIOError("save", path, err)
	}
	m.files[path] = append([]string(nil), lines...)
	return nil
}
