package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/example/minic/internal/core/digits"
	corerun "github.com/example/minic/internal/core/run"
	"github.com/example/minic/internal/ports/primary"
	"github.com/example/minic/internal/ports/secondary"
)

// NumberServiceImpl implements the NumberService interface.
type NumberServiceImpl struct {
	recorder runRecorder
	logger   logrus.FieldLogger
}

// NewNumberService creates a new NumberService with injected dependencies.
// A nil runRepo disables history recording.
func NewNumberService(runRepo secondary.RunRepository, logger logrus.FieldLogger) *NumberServiceImpl {
	recorder := newRunRecorder(runRepo, logger)
	return &NumberServiceImpl{
		recorder: recorder,
		logger:   recorder.logger,
	}
}

// Reverse reverses the decimal digits of a number.
func (s *NumberServiceImpl) Reverse(ctx context.Context, req primary.ReverseRequest) (*primary.ReverseResponse, error) {
	if result := digits.CanReverse(req.Number); !result.Allowed {
		return nil, result.Error()
	}

	reversed := digits.Reverse(req.Number)
	s.logger.WithFields(logrus.Fields{"number": req.Number, "reversed": reversed}).Debug("reversed digits")

	runID := s.recorder.record(ctx, corerun.KindReverse, strconv.Itoa(req.Number),
		fmt.Sprintf("Reversed Digits: %d", reversed), nil)

	return &primary.ReverseResponse{
		Number:   req.Number,
		Reversed: reversed,
		RunID:    runID,
	}, nil
}

// CheckArmstrong classifies a number as Armstrong or not.
func (s *NumberServiceImpl) CheckArmstrong(ctx context.Context, req primary.ArmstrongRequest) (*primary.ArmstrongResponse, error) {
	if result := digits.CanClassify(req.Number); !result.Allowed {
		return nil, result.Error()
	}

	sum := digits.CubeSum(req.Number)
	isArmstrong := digits.IsArmstrong(req.Number)
	if req.Narcissistic {
		sum = digits.PowerSum(req.Number, digits.CountDigits(req.Number))
		isArmstrong = digits.IsNarcissistic(req.Number)
	}
	verdict := digits.Verdict(isArmstrong)

	s.logger.WithFields(logrus.Fields{
		"number":       req.Number,
		"sum":          sum,
		"narcissistic": req.Narcissistic,
	}).Debug("classified number")

	input := strconv.Itoa(req.Number)
	if req.Narcissistic {
		input += " --narcissistic"
	}
	runID := s.recorder.record(ctx, corerun.KindArmstrong, input, verdict, nil)

	return &primary.ArmstrongResponse{
		Number:      req.Number,
		Sum:         sum,
		IsArmstrong: isArmstrong,
		Verdict:     verdict,
		RunID:       runID,
	}, nil
}

var _ primary.NumberService = (*NumberServiceImpl)(nil)
