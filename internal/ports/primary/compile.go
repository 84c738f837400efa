package primary

import (
	"context"
	"io"
)

// CompileService defines the primary port for the mini-C toolchain.
type CompileService interface {
	// Tokenize lexes a source file line by line.
	Tokenize(ctx context.Context, req TokenizeRequest) (*TokenizeResponse, error)

	// Compile parses a source file and writes its intermediate code.
	Compile(ctx context.Context, req CompileRequest) (*CompileResponse, error)

	// Run compiles a source file and executes its main function.
	Run(ctx context.Context, req RunProgramRequest) (*RunProgramResponse, error)
}

// TokenizeRequest contains parameters for tokenizing a source file.
type TokenizeRequest struct {
	Path string
}

// TokenLine is a token tagged with its source line.
type TokenLine struct {
	Line  int
	Kind  string
	Value string
}

// TokenizeResponse contains the tokens of a source file.
type TokenizeResponse struct {
	Tokens []TokenLine
	RunID  string
}

// CompileRequest contains parameters for compiling a source file.
type CompileRequest struct {
	Path string
	// OutputPath overrides the configured intermediate code destination.
	OutputPath string
	// NoWrite skips writing the intermediate code file.
	NoWrite bool
}

// Symbol is a symbol table entry at the port boundary.
type Symbol struct {
	Name string
	Kind string
}

// CompileResponse contains the result of compiling a source file.
type CompileResponse struct {
	Instructions []string
	Symbols      []Symbol
	OutputPath   string // empty when nothing was written
	RunID        string
}

// RunProgramRequest contains parameters for running a source file.
type RunProgramRequest struct {
	Path     string
	MaxSteps int // 0 uses the configured limit
	// Stdout receives program output as it is printed. May be nil.
	Stdout io.Writer
}

// RunProgramResponse contains the result of running a program.
type RunProgramResponse struct {
	Output    string
	ExitValue int64
	Steps     int
	RunID     string
}
