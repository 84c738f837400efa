package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/example/minic/internal/ports/primary"
)

func init() {
	// Keep assertions independent of the terminal running the tests.
	color.NoColor = true
}

// mockNumberService implements primary.NumberService for testing.
type mockNumberService struct {
	reverseFn        func(ctx context.Context, req primary.ReverseRequest) (*primary.ReverseResponse, error)
	checkArmstrongFn func(ctx context.Context, req primary.ArmstrongRequest) (*primary.ArmstrongResponse, error)

	lastArmstrongReq primary.ArmstrongRequest
}

func (m *mockNumberService) Reverse(ctx context.Context, req primary.ReverseRequest) (*primary.ReverseResponse, error) {
	if m.reverseFn != nil {
		return m.reverseFn(ctx, req)
	}
	return &primary.ReverseResponse{Number: req.Number, Reversed: 4321, RunID: "RUN-001"}, nil
}

func (m *mockNumberService) CheckArmstrong(ctx context.Context, req primary.ArmstrongRequest) (*primary.ArmstrongResponse, error) {
	m.lastArmstrongReq = req
	if m.checkArmstrongFn != nil {
		return m.checkArmstrongFn(ctx, req)
	}
	return &primary.ArmstrongResponse{Number: req.Number, Sum: req.Number, IsArmstrong: true, Verdict: "Armstrong"}, nil
}

// mockCompileService implements primary.CompileService for testing.
type mockCompileService struct {
	tokenizeFn func(ctx context.Context, req primary.TokenizeRequest) (*primary.TokenizeResponse, error)
	compileFn  func(ctx context.Context, req primary.CompileRequest) (*primary.CompileResponse, error)
	runFn      func(ctx context.Context, req primary.RunProgramRequest) (*primary.RunProgramResponse, error)

	lastCompileReq primary.CompileRequest
	lastRunReq     primary.RunProgramRequest
}

func (m *mockCompileService) Tokenize(ctx context.Context, req primary.TokenizeRequest) (*primary.TokenizeResponse, error) {
	if m.tokenizeFn != nil {
		return m.tokenizeFn(ctx, req)
	}
	return &primary.TokenizeResponse{}, nil
}

func (m *mockCompileService) Compile(ctx context.Context, req primary.CompileRequest) (*primary.CompileResponse, error) {
	m.lastCompileReq = req
	if m.compileFn != nil {
		return m.compileFn(ctx, req)
	}
	out := req.OutputPath
	if out == "" && !req.NoWrite {
		out = "intermediate_code.txt"
	}
	return &primary.CompileResponse{
		Instructions: []string{"func main:", "return 0"},
		Symbols:      []primary.Symbol{{Name: "main", Kind: "function"}},
		OutputPath:   out,
	}, nil
}

func (m *mockCompileService) Run(ctx context.Context, req primary.RunProgramRequest) (*primary.RunProgramResponse, error) {
	m.lastRunReq = req
	if m.runFn != nil {
		return m.runFn(ctx, req)
	}
	if req.Stdout != nil {
		fmt.Fprint(req.Stdout, "Armstrong\n")
	}
	return &primary.RunProgramResponse{Output: "Armstrong\n"}, nil
}

// mockHistoryService implements primary.HistoryService for testing.
type mockHistoryService struct {
	runs     []*primary.Run
	clearErr error

	lastFilters primary.RunFilters
}

func (m *mockHistoryService) ListRuns(ctx context.Context, filters primary.RunFilters) ([]*primary.Run, error) {
	m.lastFilters = filters
	return m.runs, nil
}

func (m *mockHistoryService) GetRun(ctx context.Context, runID string) (*primary.Run, error) {
	for _, r := range m.runs {
		if r.ID == runID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("run %s not found", runID)
}

func (m *mockHistoryService) ClearRuns(ctx context.Context) (int, error) {
	if m.clearErr != nil {
		return 0, m.clearErr
	}
	n := len(m.runs)
	m.runs = nil
	return n, nil
}
