package history

import (
	"time"

	"github.com/google/uuid"
)

// entry wraps a command held on the undo or redo stack.
type entry struct {
	id        uuid.UUID
	command   Command
	timestamp time.Time
}

func newEntry(cmd Command) *entry {
	return &entry{
		id:        uuid.New(),
		command:   cmd,
		timestamp: time.Now(),
	}
}

func (e *entry) info() OperationInfo {
	return OperationInfo{
		ID:          e.id.String(),
		Kind:        e.command.Kind(),
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}
}

// OperationInfo provides read-only info about a history entry.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	ID          string    // Stable across undo and redo
	Kind        Kind      // Command variant
	Description string    // Human-readable description
	Timestamp   time.Time // When the command was first recorded
}
