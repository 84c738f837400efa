package db

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_runs_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_runs_kind_index",
		Up:      migrationV2,
	},
}

// CurrentVersion returns the schema version after all migrations.
func CurrentVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations executes all pending migrations
func RunMigrations(conn *sql.DB) error {
	if err := createVersionTable(conn); err != nil {
		return err
	}

	// Get current schema version
	var currentVersion int
	err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logrus.WithField("version", migration.Version).Infof("running migration %s", migration.Name)

		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the runs table
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL CHECK (kind IN ('reverse', 'armstrong', 'tokenize', 'compile', 'run')),
			input TEXT NOT NULL,
			output TEXT,
			status TEXT NOT NULL DEFAULT 'ok' CHECK (status IN ('ok', 'failed')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

// migrationV2 indexes runs by kind for `history list --kind`
func migrationV2(tx *sql.Tx) error {
	if _, err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind)"); err != nil {
		return fmt.Errorf("failed to create idx_runs_kind: %w", err)
	}
	return nil
}
