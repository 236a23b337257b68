package engine

import (
	"strings"
	"testing"
)

func setupLargeSession(b *testing.B, lines int) *Session {
	b.Helper()
	content := make([]string, lines)
	for i := range content {
		content[i] = strings.Repeat("x", 80)
	}
	return New(WithLines(content))
}

func BenchmarkSessionInsertUndo(b *testing.B) {
	s := setupLargeSession(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.InsertAt(5000, 40, "hello")
		_ = s.Undo()
	}
}

func BenchmarkSessionAppend(b *testing.B) {
	s := New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Append("line")
	}
}

func BenchmarkSessionCutPaste(b *testing.B) {
	s := setupLargeSession(b, 1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Cut(500, 10, 20)
		_ = s.Paste(500, 10)
	}
}

func BenchmarkSessionSearch(b *testing.B) {
	s := setupLargeSession(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range s.Search("xxxx") {
		}
	}
}

func BenchmarkSessionText(b *testing.B) {
	s := setupLargeSession(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Text()
	}
}
