package app

import (
	"errors"
	"testing"
)

func TestOperationError(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", NewOperationError("undo", "", nil), "undo"},
		{"op and target", NewOperationError("save", "a.txt", nil), "save a.txt"},
		{"full", NewOperationError("insert", "0:5", base), "insert 0:5: boom"},
		{"no target", NewOperationError("append", "", base), "append: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := error(NewOperationError("load", "x", base))

	if !errors.Is(err, base) {
		t.Error("errors.Is should find the wrapped error")
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "load" {
		t.Errorf("errors.As failed: %v", err)
	}
}

func TestOperationErrorNil(t *testing.T) {
	var e *OperationError
	if e.Error() != "" || e.Unwrap() != nil {
		t.Error("nil OperationError should be empty")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ctx") != nil {
		t.Error("WrapError(nil) should be nil")
	}

	base := errors.New("base")
	err := WrapError(base, "loading %s", "a.txt")
	if err.Error() != "loading a.txt: base" || !errors.Is(err, base) {
		t.Errorf("got %v", err)
	}
}
