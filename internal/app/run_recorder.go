package app

import (
	"context"

	"github.com/sirupsen/logrus"

	corerun "github.com/example/minic/internal/core/run"
	"github.com/example/minic/internal/ports/secondary"
)

// runRecorder writes finished runs to history. Recording is best effort:
// failures are logged and never surface to the caller.
type runRecorder struct {
	repo   secondary.RunRepository // nil disables recording
	logger logrus.FieldLogger
}

func newRunRecorder(repo secondary.RunRepository, logger logrus.FieldLogger) runRecorder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return runRecorder{repo: repo, logger: logger}
}

// record stores a run and returns its ID, or "" if nothing was stored.
func (r runRecorder) record(ctx context.Context, kind, input, output string, runErr error) string {
	if r.repo == nil {
		return ""
	}

	if result := corerun.CanRecordRun(kind, input); !result.Allowed {
		r.logger.WithField("kind", kind).Warnf("not recording run: %s", result.Reason)
		return ""
	}

	status := corerun.StatusOK
	if runErr != nil {
		status = corerun.StatusFailed
		if output != "" {
			output += "\n"
		}
		output += runErr.Error()
	}

	id, err := r.repo.GetNextID(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("failed to allocate run ID; history not recorded")
		return ""
	}

	record := &secondary.RunRecord{
		ID:     id,
		Kind:   kind,
		Input:  input,
		Output: output,
		Status: status,
	}
	if err := r.repo.Create(ctx, record); err != nil {
		r.logger.WithError(err).WithField("run_id", id).Warn("failed to record run")
		return ""
	}

	r.logger.WithFields(logrus.Fields{"run_id": id, "kind": kind, "status": status}).Debug("recorded run")
	return id
}
