package primary

import "context"

// HistoryService defines the primary port for the character audit log.
type HistoryService interface {
	// ListHistory retrieves log entries matching the given filters.
	ListHistory(ctx context.Context, filters HistoryFilters) ([]*HistoryEntry, error)

	// PruneHistory deletes log entries older than the specified number of days.
	PruneHistory(ctx context.Context, olderThanDays int) (int, error)
}

// HistoryEntry represents an audit log entry at the port boundary.
type HistoryEntry struct {
	ID            string
	Timestamp     string
	ActorID       string
	Action        string // 'create', 'update', 'delete', 'copy'
	EntityID      string
	SourceID      string // For copies only
	CharacterName string
}

// HistoryFilters contains filter options for querying the audit log.
type HistoryFilters struct {
	Action string
	Name   string
	Limit  int
}
