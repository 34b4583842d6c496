package app

import (
	"context"
	"fmt"

	"github.com/example/bg3planner/internal/ports/primary"
	"github.com/example/bg3planner/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	logRepo secondary.CharacterLogRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(logRepo secondary.CharacterLogRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		logRepo: logRepo,
	}
}

// ListHistory retrieves log entries matching the given filters.
func (s *HistoryServiceImpl) ListHistory(ctx context.Context, filters primary.HistoryFilters) ([]*primary.HistoryEntry, error) {
	records, err := s.logRepo.List(ctx, secondary.CharacterLogFilters{
		Action: filters.Action,
		Name:   filters.Name,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToHistoryEntry(r)
	}
	return entries, nil
}

// PruneHistory deletes log entries older than the specified number of days.
func (s *HistoryServiceImpl) PruneHistory(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays < 1 {
		return 0, fmt.Errorf("days must be at least 1, got %d", olderThanDays)
	}
	return s.logRepo.PruneOlderThan(ctx, olderThanDays)
}

// Helper methods

func (s *HistoryServiceImpl) recordToHistoryEntry(r *secondary.CharacterLogRecord) *primary.HistoryEntry {
	return &primary.HistoryEntry{
		ID:            r.ID,
		Timestamp:     r.Timestamp,
		ActorID:       r.ActorID,
		Action:        r.Action,
		EntityID:      r.EntityID,
		SourceID:      r.SourceID,
		CharacterName: r.CharacterName,
	}
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
