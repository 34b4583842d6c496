// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bg3planner/internal/ports/secondary"
)

const logIDPrefix = "LOG-"

// CharacterLogRepository implements secondary.CharacterLogRepository with SQLite.
type CharacterLogRepository struct {
	db *sql.DB
}

// NewCharacterLogRepository creates a new SQLite character log repository.
func NewCharacterLogRepository(db *sql.DB) *CharacterLogRepository {
	return &CharacterLogRepository{db: db}
}

// Create persists a new log entry.
func (r *CharacterLogRepository) Create(ctx context.Context, log *secondary.CharacterLogRecord) error {
	var actorID, sourceID sql.NullString
	if log.ActorID != "" {
		actorID = sql.NullString{String: log.ActorID, Valid: true}
	}
	if log.SourceID != "" {
		sourceID = sql.NullString{String: log.SourceID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO character_logs (id, actor_id, action, entity_id, source_id, character_name, payload) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.ID,
		actorID,
		log.Action,
		log.EntityID,
		sourceID,
		log.CharacterName,
		log.Payload,
	)
	if err != nil {
		return fmt.Errorf("failed to create character log: %w", err)
	}

	return nil
}

// List retrieves log entries matching the given filters, newest first.
func (r *CharacterLogRepository) List(ctx context.Context, filters secondary.CharacterLogFilters) ([]*secondary.CharacterLogRecord, error) {
	query := `SELECT id, timestamp, actor_id, action, entity_id, source_id, character_name, payload, created_at FROM character_logs WHERE 1=1`
	args := []any{}

	if filters.Action != "" {
		query += " AND action = ?"
		args = append(args, filters.Action)
	}

	if filters.Name != "" {
		query += " AND character_name = ?"
		args = append(args, filters.Name)
	}

	// IDs grow past four digits, so compare their numeric part.
	query += fmt.Sprintf(" ORDER BY timestamp DESC, CAST(SUBSTR(id, %d) AS INTEGER) DESC", len(logIDPrefix)+1)

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list character logs: %w", err)
	}
	defer rows.Close()

	var logs []*secondary.CharacterLogRecord
	for rows.Next() {
		var (
			actorID   sql.NullString
			sourceID  sql.NullString
			timestamp time.Time
			createdAt time.Time
		)

		record := &secondary.CharacterLogRecord{}
		err := rows.Scan(&record.ID,
			&timestamp,
			&actorID,
			&record.Action,
			&record.EntityID,
			&sourceID,
			&record.CharacterName,
			&record.Payload,
			&createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan character log: %w", err)
		}
		record.Timestamp = timestamp.Format(time.RFC3339)
		record.ActorID = actorID.String
		record.SourceID = sourceID.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		logs = append(logs, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate character logs: %w", err)
	}

	return logs, nil
}

// GetNextID returns the next available log ID.
func (r *CharacterLogRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	prefixLen := len(logIDPrefix) + 1
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM character_logs", prefixLen),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next character log ID: %w", err)
	}

	return fmt.Sprintf("%s%04d", logIDPrefix, maxID+1), nil
}

// PruneOlderThan deletes log entries older than the given number of days.
func (r *CharacterLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM character_logs WHERE timestamp < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune character logs: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

// Ensure CharacterLogRepository implements the interface
var _ secondary.CharacterLogRepository = (*CharacterLogRepository)(nil)
