// Package sqlite_test contains integration tests for SQLite repositories.
//
// Every test database is built from db.GetSchemaSQL() so tests run against
// the same schema as production. Do not hardcode CREATE TABLE statements in
// test files; use setupTestDB() and the seed helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/minic/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRun inserts a test run and returns its ID.
func seedRun(t *testing.T, db *sql.DB, id, kind, input string) string {
	t.Helper()
	if id == "" {
		id = "RUN-001"
	}
	if kind == "" {
		kind = "reverse"
	}
	if input == "" {
		input = "1234"
	}
	_, err := db.Exec("INSERT INTO runs (id, kind, input, output, status) VALUES (?, ?, ?, 'out', 'ok')", id, kind, input)
	if err != nil {
		t.Fatalf("failed to seed run: %v", err)
	}
	return id
}
