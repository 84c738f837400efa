// Package cli provides CLI commands for the minic application.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/minic/internal/wire"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	Verbose   bool
	NoHistory bool
}

// Register adds the global flags to the root command and configures
// wire before any subcommand runs.
func (g *GlobalFlags) Register(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().BoolVar(&g.NoHistory, "no-history", false, "Do not record this run in history")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		wire.Configure(wire.Options{
			Verbose:   g.Verbose,
			NoHistory: g.NoHistory,
		})
	}
}

// NewContext creates the base context for a CLI invocation.
// CLI commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	return context.Background()
}

// parseNumber parses a non-negative decimal command argument.
// Sign checks are left to the services so the error text stays consistent.
func parseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: expected a decimal integer", arg)
	}
	return n, nil
}
