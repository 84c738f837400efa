package primary

import "context"

// HistoryService defines the primary port for recorded runs.
type HistoryService interface {
	// ListRuns lists recorded runs, newest first.
	ListRuns(ctx context.Context, filters RunFilters) ([]*Run, error)

	// GetRun retrieves a run by ID.
	GetRun(ctx context.Context, runID string) (*Run, error)

	// ClearRuns deletes every recorded run and returns how many were removed.
	ClearRuns(ctx context.Context) (int, error)
}

// Run represents a recorded run at the port boundary.
type Run struct {
	ID        string
	Kind      string
	Input     string
	Output    string
	Status    string
	CreatedAt string
}

// RunFilters contains filter options for listing runs.
type RunFilters struct {
	Kind  string
	Limit int
}
