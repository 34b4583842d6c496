package secondary

import (
	"context"

	"github.com/example/bg3planner/internal/core/character"
)

// Character log actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionCopy   = "copy"
)

// LogWriter defines the interface for writing audit log entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogCreate logs a newly appended character.
	LogCreate(ctx context.Context, entityID string, rec character.Record) error

	// LogUpdate logs an overwritten character. Only the new state is kept.
	LogUpdate(ctx context.Context, entityID string, rec character.Record) error

	// LogDelete logs a removed character.
	LogDelete(ctx context.Context, entityID string, rec character.Record) error

	// LogCopy logs a character cloned from sourceID into entityID.
	LogCopy(ctx context.Context, sourceID, entityID string, rec character.Record) error
}

// CharacterLogRepository defines the secondary port for audit log persistence.
type CharacterLogRepository interface {
	// Create persists a new log entry.
	Create(ctx context.Context, log *CharacterLogRecord) error

	// List retrieves log entries matching the given filters, newest first.
	List(ctx context.Context, filters CharacterLogFilters) ([]*CharacterLogRecord, error)

	// GetNextID returns the next available log ID.
	GetNextID(ctx context.Context) (string, error)

	// PruneOlderThan deletes entries older than the given number of days.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// CharacterLogRecord represents an audit entry as stored in persistence.
type CharacterLogRecord struct {
	ID            string
	Timestamp     string
	ActorID       string // Empty string means null
	Action        string // 'create', 'update', 'delete', 'copy'
	EntityID      string // CHAR-xxx at the time of the action
	SourceID      string // Empty string means null - for copies only
	CharacterName string
	Payload       string // JSON of the record
	CreatedAt     string
}

// CharacterLogFilters contains filter options for querying logs.
type CharacterLogFilters struct {
	Action string
	Name   string
	Limit  int
}
