package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/minic/internal/ports/primary"
)

// maxInputWidth truncates long inputs in list output.
const maxInputWidth = 40

// HistoryAdapter translates CLI operations to HistoryService calls.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List lists recorded runs with optional kind filter.
func (a *HistoryAdapter) List(ctx context.Context, kind string, limit int) ([]*primary.Run, error) {
	runs, err := a.service.ListRuns(ctx, primary.RunFilters{
		Kind:  kind,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No runs found")
		return runs, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSTATUS\tINPUT\tCREATED")
	fmt.Fprintln(w, "--\t----\t------\t-----\t-------")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Kind,
			statusLabel(run.Status),
			truncate(run.Input, maxInputWidth),
			run.CreatedAt,
		)
	}

	w.Flush()
	return runs, nil
}

// Show displays details for a single run.
func (a *HistoryAdapter) Show(ctx context.Context, runID string) (*primary.Run, error) {
	run, err := a.service.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	fmt.Fprintf(a.out, "\nRun:     %s\n", run.ID)
	fmt.Fprintf(a.out, "Kind:    %s\n", run.Kind)
	fmt.Fprintf(a.out, "Input:   %s\n", run.Input)
	fmt.Fprintf(a.out, "Status:  %s\n", statusLabel(run.Status))
	fmt.Fprintf(a.out, "Created: %s\n", run.CreatedAt)
	if run.Output != "" {
		fmt.Fprintln(a.out, "Output:")
		for _, line := range strings.Split(strings.TrimRight(run.Output, "\n"), "\n") {
			fmt.Fprintf(a.out, "  %s\n", line)
		}
	}
	fmt.Fprintln(a.out)

	return run, nil
}

// Clear deletes every recorded run.
func (a *HistoryAdapter) Clear(ctx context.Context) (int, error) {
	n, err := a.service.ClearRuns(ctx)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(a.out, "%s Cleared %d runs\n", color.New(color.FgGreen).Sprint("✓"), n)
	return n, nil
}

func statusLabel(status string) string {
	if status == "failed" {
		return color.New(color.FgRed).Sprint(status)
	}
	return status
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
