package db

import "database/sql"

// SchemaSQL is the complete schema of the history database.
//
// This is the SINGLE SOURCE OF TRUTH for the schema. Tests load it through
// GetSchemaSQL() instead of declaring their own tables.
const SchemaSQL = `
-- Character audit log (one row per successful store mutation)
CREATE TABLE IF NOT EXISTS character_logs (
	id TEXT PRIMARY KEY,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	actor_id TEXT,
	action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete', 'copy')),
	entity_id TEXT NOT NULL,
	source_id TEXT,
	character_name TEXT NOT NULL,
	payload TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_character_logs_timestamp ON character_logs(timestamp);
CREATE INDEX IF NOT EXISTS idx_character_logs_name ON character_logs(character_name);
`

// InitSchema creates the database schema. It is idempotent.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
