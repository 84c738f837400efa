package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/minic/internal/cli"
	"github.com/example/minic/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "minic",
		Short:   "minic - digit utilities and a toy C front end",
		Version: version.String(),
		Long: `minic reverses digits, checks Armstrong numbers, and compiles a small
C subset to three-address code which it can also execute.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var globals cli.GlobalFlags
	globals.Register(rootCmd)

	// Numeric procedures
	rootCmd.AddCommand(cli.ReverseCmd())
	rootCmd.AddCommand(cli.ArmstrongCmd())

	// Compiler front end
	rootCmd.AddCommand(cli.TokensCmd())
	rootCmd.AddCommand(cli.CompileCmd())
	rootCmd.AddCommand(cli.RunCmd())

	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.InitCmd())

	rootCmd.SetArgs(cli.SeparateNumberOperands(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
