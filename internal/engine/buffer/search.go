package buffer

import (
	"iter"
	"strings"
)

// Search returns every non-overlapping occurrence of needle, scanning lines
// in order and each line left to right. The sequence is computed lazily on
// each range and reflects the buffer at that moment. An empty needle matches
// nothing.
func (b *Buffer) Search(needle string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if needle == "" {
			return
		}
		for line := 0; line < len(b.lines); line++ {
			s := b.lines[line]
			offset := 0
			for {
				i := strings.Index(s[offset:], needle)
				if i < 0 {
					break
				}
				if !yield(Match{Line: line, Index: offset + i}) {
					return
				}
				offset += i + len(needle)
			}
		}
	}
}

// Count returns the number of matches Search would yield.
func (b *Buffer) Count(needle string) int {
	n := 0
	for range b.Search(needle) {
		n++
	}
	return n
}
