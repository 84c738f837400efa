package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for a fresh minic database.
// It reflects the state after all migrations have run.
//
// Tests build their databases from GetSchemaSQL() so repository code that
// references a missing column fails with "no such column" right away.
// When adding columns, add a migration and update SchemaSQL together.
const SchemaSQL = `
-- Runs (history of reverse, armstrong, tokenize, compile and run invocations)
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL CHECK (kind IN ('reverse', 'armstrong', 'tokenize', 'compile', 'run')),
	input TEXT NOT NULL,
	output TEXT,
	status TEXT NOT NULL DEFAULT 'ok' CHECK (status IN ('ok', 'failed')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
`

// GetSchemaSQL returns the schema used for fresh installs and tests.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates the database schema
func InitSchema(conn *sql.DB) error {
	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(conn)
	}

	// Fresh install: create the modern schema directly and mark every
	// migration as applied.
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(conn); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := conn.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

func createVersionTable(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}
