package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/clipboard"
)

// ============================================================================
// Property-Based Tests
// ============================================================================

func snapshot(s *Session) []string {
	return append([]string{}, s.Lines()...)
}

// drawOp applies one random operation to s. Positions are drawn slightly
// outside the valid range so that failing calls are exercised too.
func drawOp(t *rapid.T, s *Session) error {
	text := rapid.StringMatching(`[a-z ]{0,6}`).Draw(t, "text")
	line := rapid.IntRange(-1, s.LineCount()).Draw(t, "line")
	lineLen := 0
	if l, err := s.Get(line); err == nil {
		lineLen = len(l)
	}
	index := rapid.IntRange(-1, lineLen+1).Draw(t, "index")
	length := rapid.IntRange(-1, lineLen+1).Draw(t, "length")

	switch rapid.IntRange(0, 8).Draw(t, "op") {
	case 0:
		return s.Append(text)
	case 1:
		return s.NewLine()
	case 2:
		return s.InsertAt(line, index, text)
	case 3:
		return s.DeleteRange(line, index, length)
	case 4:
		return s.Cut(line, index, length)
	case 5:
		return s.Copy(line, index, length)
	case 6:
		return s.Paste(line, index)
	case 7:
		return s.InsertReplace(line, index, text)
	default:
		return s.Replace(line, index, length, text)
	}
}

// TestProperty_UndoAllRestoresBase verifies that undoing every recorded
// command returns the buffer to its initial content.
func TestProperty_UndoAllRestoresBase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,10}`), 0, 4).Draw(t, "base")
		s := New(WithLines(base))
		want := snapshot(s)

		n := rapid.IntRange(1, 25).Draw(t, "numOps")
		for range n {
			_ = drawOp(t, s)
		}

		for s.CanUndo() {
			require.NoError(t, s.Undo())
		}
		assert.Equal(t, want, snapshot(s))
	})
}

// TestProperty_UndoRedoRoundTrip verifies that undo restores the state before
// a command and redo restores the state after it.
func TestProperty_UndoRedoRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New()

		n := rapid.IntRange(1, 25).Draw(t, "numOps")
		for range n {
			before := snapshot(s)
			undoDepth := len(s.UndoInfo())
			err := drawOp(t, s)
			after := snapshot(s)

			if err != nil {
				assert.Equal(t, before, after, "failed command changed the buffer")
				continue
			}
			if len(s.UndoInfo()) == undoDepth {
				// copy: nothing recorded
				assert.Equal(t, before, after)
				continue
			}

			require.NoError(t, s.Undo())
			assert.Equal(t, before, snapshot(s))
			require.NoError(t, s.Redo())
			assert.Equal(t, after, snapshot(s))
		}
	})
}

// TestProperty_ReplayMatchesBuffer verifies that executing the undo stack in
// order from the base state reproduces the current buffer.
func TestProperty_ReplayMatchesBuffer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New()

		n := rapid.IntRange(1, 25).Draw(t, "numOps")
		for range n {
			if rapid.IntRange(0, 4).Draw(t, "undo") == 0 {
				_ = s.Undo()
				continue
			}
			_ = drawOp(t, s)
		}

		buf := buffer.NewBuffer()
		clip := clipboard.New()
		for _, cmd := range s.history.Commands() {
			require.NoError(t, cmd.Execute(buf, clip))
		}
		assert.Equal(t, snapshot(s), append([]string{}, buf.Lines()...))
	})
}
