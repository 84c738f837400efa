package app

import (
	"context"
	"fmt"

	corerun "github.com/example/minic/internal/core/run"
	"github.com/example/minic/internal/ports/primary"
	"github.com/example/minic/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	runRepo secondary.RunRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(runRepo secondary.RunRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{runRepo: runRepo}
}

// ListRuns lists recorded runs, newest first.
func (s *HistoryServiceImpl) ListRuns(ctx context.Context, filters primary.RunFilters) ([]*primary.Run, error) {
	if result := corerun.CanFilterByKind(filters.Kind); !result.Allowed {
		return nil, result.Error()
	}
	if filters.Limit < 0 {
		return nil, fmt.Errorf("limit must be non-negative (got %d)", filters.Limit)
	}

	records, err := s.runRepo.List(ctx, secondary.RunFilters{
		Kind:  filters.Kind,
		Limit: filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*primary.Run, len(records))
	for i, r := range records {
		runs[i] = recordToRun(r)
	}
	return runs, nil
}

// GetRun retrieves a run by ID.
func (s *HistoryServiceImpl) GetRun(ctx context.Context, runID string) (*primary.Run, error) {
	if corerun.ParseRunNumber(runID) < 0 {
		return nil, fmt.Errorf("invalid run ID %q (expected RUN-XXX)", runID)
	}

	record, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	return recordToRun(record), nil
}

// ClearRuns deletes every recorded run.
func (s *HistoryServiceImpl) ClearRuns(ctx context.Context) (int, error) {
	n, err := s.runRepo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear runs: %w", err)
	}
	return n, nil
}

func recordToRun(r *secondary.RunRecord) *primary.Run {
	return &primary.Run{
		ID:        r.ID,
		Kind:      r.Kind,
		Input:     r.Input,
		Output:    r.Output,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
