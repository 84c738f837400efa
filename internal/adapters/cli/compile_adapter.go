package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/minic/internal/ports/primary"
)

// CompileAdapter translates CLI operations to CompileService calls.
type CompileAdapter struct {
	service primary.CompileService
	out     io.Writer
}

// NewCompileAdapter creates a new CompileAdapter with the given service.
func NewCompileAdapter(service primary.CompileService, out io.Writer) *CompileAdapter {
	return &CompileAdapter{
		service: service,
		out:     out,
	}
}

// Tokens prints the tokens of a source file, grouped by line.
func (a *CompileAdapter) Tokens(ctx context.Context, path string) error {
	resp, err := a.service.Tokenize(ctx, primary.TokenizeRequest{Path: path})
	if err != nil {
		return fmt.Errorf("failed to tokenize %s: %w", path, err)
	}

	if len(resp.Tokens) == 0 {
		fmt.Fprintln(a.out, "No tokens found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "LINE\tKIND\tVALUE")
	fmt.Fprintln(w, "----\t----\t-----")
	for _, tok := range resp.Tokens {
		fmt.Fprintf(w, "%d\t%s\t%s\n", tok.Line, tok.Kind, tok.Value)
	}
	return w.Flush()
}

// CompileOptions controls what Compile prints and writes.
type CompileOptions struct {
	OutputPath  string
	ShowSymbols bool
	// Stdout prints the intermediate code instead of writing a file.
	Stdout bool
}

// Compile compiles a source file and reports where the IR went.
func (a *CompileAdapter) Compile(ctx context.Context, path string, opts CompileOptions) (*primary.CompileResponse, error) {
	resp, err := a.service.Compile(ctx, primary.CompileRequest{
		Path:       path,
		OutputPath: opts.OutputPath,
		NoWrite:    opts.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", path, err)
	}

	if opts.Stdout {
		for _, line := range resp.Instructions {
			fmt.Fprintln(a.out, line)
		}
	} else {
		fmt.Fprintf(a.out, "%s Compiled %s: %d instructions written to %s\n",
			color.New(color.FgGreen).Sprint("✓"), path, len(resp.Instructions), resp.OutputPath)
	}

	if opts.ShowSymbols {
		fmt.Fprintln(a.out)
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tKIND")
		fmt.Fprintln(w, "------\t----")
		for _, sym := range resp.Symbols {
			fmt.Fprintf(w, "%s\t%s\n", sym.Name, sym.Kind)
		}
		if err := w.Flush(); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// Run executes a source file, streaming program output.
func (a *CompileAdapter) Run(ctx context.Context, path string, maxSteps int) (*primary.RunProgramResponse, error) {
	resp, err := a.service.Run(ctx, primary.RunProgramRequest{
		Path:     path,
		MaxSteps: maxSteps,
		Stdout:   a.out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", path, err)
	}
	return resp, nil
}
