package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/minic/internal/adapters/cli"
	"github.com/example/minic/internal/wire"
)

// TokensCmd returns the tokens command
func TokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Show the tokens of a source file by line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CompileAdapterWithOutput(cmd.OutOrStdout()).Tokens(NewContext(), args[0])
		},
	}
}

// CompileCmd returns the compile command
func CompileCmd() *cobra.Command {
	var opts cliadapter.CompileOptions

	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a source file to three-address code",
		Long: `Compile a source file to three-address code.

The intermediate code is written to the configured ir_output
(intermediate_code.txt by default) unless --output or --stdout is given.

Examples:
  minic compile program2.c
  minic compile program3.c -o build/program3.tac --symbols
  minic compile program3.c --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Stdout && opts.OutputPath != "" {
				return fmt.Errorf("--output and --stdout are mutually exclusive")
			}
			_, err := wire.CompileAdapterWithOutput(cmd.OutOrStdout()).Compile(NewContext(), args[0], opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write intermediate code to this path")
	cmd.Flags().BoolVarP(&opts.ShowSymbols, "symbols", "s", false, "Print the symbol table")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print intermediate code instead of writing a file")

	return cmd
}

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Compile and execute a source file",
		Long: `Compile a source file and execute its main function.

Program output is printed as it is produced. Execution stops with an error
once --max-steps instructions have run (default from config).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxSteps < 0 {
				return fmt.Errorf("--max-steps must be non-negative (got %d)", maxSteps)
			}

			ctx, cancel := signal.NotifyContext(NewContext(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			resp, err := wire.CompileAdapterWithOutput(cmd.OutOrStdout()).Run(ctx, args[0], maxSteps)
			if err != nil {
				return err
			}
			wire.Logger().WithField("exit", resp.ExitValue).Debugf("main returned after %d steps", resp.Steps)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Instruction limit (0 uses the configured max_steps)")

	return cmd
}
