package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/bg3planner/internal/core/character"
	"github.com/example/bg3planner/internal/ctxutil"
	"github.com/example/bg3planner/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter using CharacterLogRepository.
type LogWriterAdapter struct {
	logRepo secondary.CharacterLogRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(logRepo secondary.CharacterLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{logRepo: logRepo}
}

// LogCreate logs a newly appended character.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityID string, rec character.Record) error {
	return w.writeLog(ctx, secondary.ActionCreate, entityID, "", rec)
}

// LogUpdate logs an overwritten character.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityID string, rec character.Record) error {
	return w.writeLog(ctx, secondary.ActionUpdate, entityID, "", rec)
}

// LogDelete logs a removed character.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, entityID string, rec character.Record) error {
	return w.writeLog(ctx, secondary.ActionDelete, entityID, "", rec)
}

// LogCopy logs a character cloned from sourceID.
func (w *LogWriterAdapter) LogCopy(ctx context.Context, sourceID, entityID string, rec character.Record) error {
	return w.writeLog(ctx, secondary.ActionCopy, entityID, sourceID, rec)
}

// writeLog writes a log entry with common logic.
func (w *LogWriterAdapter) writeLog(ctx context.Context, action, entityID, sourceID string, rec character.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal log payload: %w", err)
	}

	id, err := w.logRepo.GetNextID(ctx)
	if err != nil {
		return err
	}

	return w.logRepo.Create(ctx, &secondary.CharacterLogRecord{
		ID:            id,
		ActorID:       ctxutil.ActorFromContext(ctx),
		Action:        action,
		EntityID:      entityID,
		SourceID:      sourceID,
		CharacterName: rec.Name,
		Payload:       string(payload),
	})
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
