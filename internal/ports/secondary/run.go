// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// RunRepository defines the secondary port for run history persistence.
type RunRepository interface {
	// Create persists a new run.
	Create(ctx context.Context, run *RunRecord) error

	// GetByID retrieves a run by its ID.
	GetByID(ctx context.Context, id string) (*RunRecord, error)

	// List retrieves runs matching the given filters, newest first.
	List(ctx context.Context, filters RunFilters) ([]*RunRecord, error)

	// DeleteAll removes every run and returns the number removed.
	DeleteAll(ctx context.Context) (int, error)

	// GetNextID returns the next available run ID.
	GetNextID(ctx context.Context) (string, error)
}

// RunRecord represents a run as stored in persistence.
type RunRecord struct {
	ID        string
	Kind      string
	Input     string
	Output    string
	Status    string
	CreatedAt string
}

// RunFilters contains filter options for querying runs.
type RunFilters struct {
	Kind  string
	Limit int
}
