package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/minic/internal/core/interp"
	"github.com/example/minic/internal/core/irgen"
	"github.com/example/minic/internal/core/lexer"
	corerun "github.com/example/minic/internal/core/run"
	"github.com/example/minic/internal/ports/primary"
	"github.com/example/minic/internal/ports/secondary"
)

// CompileSettings carries the configured defaults for compile and run.
type CompileSettings struct {
	IROutput string // default path for intermediate code
	MaxSteps int    // default interpreter step limit; 0 uses interp.DefaultMaxSteps
}

// CompileServiceImpl implements the CompileService interface.
type CompileServiceImpl struct {
	sources   secondary.SourceReader
	artifacts secondary.ArtifactWriter
	recorder  runRecorder
	logger    logrus.FieldLogger
	settings  CompileSettings
}

// NewCompileService creates a new CompileService with injected dependencies.
// A nil runRepo disables history recording.
func NewCompileService(
	sources secondary.SourceReader,
	artifacts secondary.ArtifactWriter,
	runRepo secondary.RunRepository,
	logger logrus.FieldLogger,
	settings CompileSettings,
) *CompileServiceImpl {
	recorder := newRunRecorder(runRepo, logger)
	return &CompileServiceImpl{
		sources:   sources,
		artifacts: artifacts,
		recorder:  recorder,
		logger:    recorder.logger,
		settings:  settings,
	}
}

// Tokenize lexes a source file line by line.
func (s *CompileServiceImpl) Tokenize(ctx context.Context, req primary.TokenizeRequest) (*primary.TokenizeResponse, error) {
	src, err := s.sources.ReadSource(ctx, req.Path)
	if err != nil {
		return nil, err
	}

	var tokens []primary.TokenLine
	for i, line := range splitLines(src) {
		lineNo := i + 1
		lineTokens, err := lexer.Tokenize(line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			s.recorder.record(ctx, corerun.KindTokenize, req.Path, "", err)
			return nil, err
		}
		if len(lineTokens) == 0 {
			continue
		}
		s.logger.WithField("line", lineNo).Debugf("tokens: %v", lexer.Values(lineTokens))
		for _, tok := range lineTokens {
			tokens = append(tokens, primary.TokenLine{
				Line:  lineNo,
				Kind:  string(tok.Kind),
				Value: tok.Value,
			})
		}
	}

	runID := s.recorder.record(ctx, corerun.KindTokenize, req.Path,
		fmt.Sprintf("%d tokens", len(tokens)), nil)

	return &primary.TokenizeResponse{
		Tokens: tokens,
		RunID:  runID,
	}, nil
}

// Compile parses a source file and writes its intermediate code.
func (s *CompileServiceImpl) Compile(ctx context.Context, req primary.CompileRequest) (*primary.CompileResponse, error) {
	prog, err := s.compile(ctx, corerun.KindCompile, req.Path)
	if err != nil {
		return nil, err
	}

	outputPath := ""
	if !req.NoWrite {
		outputPath = req.OutputPath
		if outputPath == "" {
			outputPath = s.settings.IROutput
		}
		if outputPath == "" {
			return nil, errors.New("no output path for intermediate code")
		}
		if err := s.artifacts.WriteArtifact(ctx, outputPath, []byte(prog.Text())); err != nil {
			err = fmt.Errorf("failed to write intermediate code: %w", err)
			s.recorder.record(ctx, corerun.KindCompile, req.Path, "", err)
			return nil, err
		}
		s.logger.WithField("path", outputPath).Debug("wrote intermediate code")
	}

	symbols := make([]primary.Symbol, 0, len(prog.Symbols))
	for _, sym := range prog.Symbols {
		symbols = append(symbols, primary.Symbol{Name: sym.Name, Kind: string(sym.Kind)})
	}

	runID := s.recorder.record(ctx, corerun.KindCompile, req.Path, prog.Text(), nil)

	return &primary.CompileResponse{
		Instructions: prog.Lines(),
		Symbols:      symbols,
		OutputPath:   outputPath,
		RunID:        runID,
	}, nil
}

// Run compiles a source file and executes its main function.
func (s *CompileServiceImpl) Run(ctx context.Context, req primary.RunProgramRequest) (*primary.RunProgramResponse, error) {
	prog, err := s.compile(ctx, corerun.KindExecute, req.Path)
	if err != nil {
		return nil, err
	}

	maxSteps := req.MaxSteps
	if maxSteps <= 0 {
		maxSteps = s.settings.MaxSteps
	}
	if maxSteps < 0 {
		return nil, fmt.Errorf("max steps must be non-negative (got %d)", maxSteps)
	}

	var buf bytes.Buffer
	var out io.Writer = &buf
	if req.Stdout != nil {
		out = io.MultiWriter(&buf, req.Stdout)
	}

	in := interp.New(prog, out, interp.WithMaxSteps(maxSteps))
	exitValue, runErr := in.Run(ctx)

	s.logger.WithFields(logrus.Fields{
		"path":  req.Path,
		"steps": in.Steps(),
		"exit":  exitValue,
	}).Debug("program finished")

	runID := s.recorder.record(ctx, corerun.KindExecute, req.Path, strings.TrimSuffix(buf.String(), "\n"), runErr)
	if runErr != nil {
		return nil, runErr
	}

	return &primary.RunProgramResponse{
		Output:    buf.String(),
		ExitValue: exitValue,
		Steps:     in.Steps(),
		RunID:     runID,
	}, nil
}

// compile reads and parses a source file, recording a failed run of kind
// when either step fails.
func (s *CompileServiceImpl) compile(ctx context.Context, kind, path string) (*irgen.Program, error) {
	src, err := s.sources.ReadSource(ctx, path)
	if err != nil {
		return nil, err
	}

	prog, err := irgen.ParseSource(src)
	if err != nil {
		s.recorder.record(ctx, kind, path, "", err)
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"path":         path,
		"instructions": len(prog.Code),
		"symbols":      len(prog.Symbols),
	}).Debug("compiled source")

	return prog, nil
}

func splitLines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

var _ primary.CompileService = (*CompileServiceImpl)(nil)
