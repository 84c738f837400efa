// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	corerun "github.com/example/minic/internal/core/run"
	"github.com/example/minic/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create persists a new run.
func (r *RunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	var output sql.NullString
	if run.Output != "" {
		output = sql.NullString{String: run.Output, Valid: true}
	}

	status := run.Status
	if status == "" {
		status = corerun.StatusOK
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (id, kind, input, output, status) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.Kind, run.Input, output, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetByID retrieves a run by its ID.
func (r *RunRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, kind, input, output, status, created_at FROM runs WHERE id = ?",
		id,
	)

	record, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return record, nil
}

// List retrieves runs matching the given filters, newest first.
func (r *RunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	query := "SELECT id, kind, input, output, status, created_at FROM runs WHERE 1=1"
	args := []any{}

	if filters.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filters.Kind)
	}

	query += " ORDER BY CAST(SUBSTR(id, 5) AS INTEGER) DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, record)
	}

	return runs, rows.Err()
}

// DeleteAll removes every run and returns the number removed.
func (r *RunRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("failed to delete runs: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// GetNextID returns the next available run ID.
func (r *RunRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM runs",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next run ID: %w", err)
	}

	return corerun.GenerateRunID(maxID), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*secondary.RunRecord, error) {
	var (
		output    sql.NullString
		createdAt time.Time
	)

	record := &secondary.RunRecord{}
	if err := row.Scan(&record.ID, &record.Kind, &record.Input, &output, &record.Status, &createdAt); err != nil {
		return nil, err
	}

	record.Output = output.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

var _ secondary.RunRepository = (*RunRepository)(nil)
