package cli

import (
	"regexp"

	"github.com/spf13/cobra"

	"github.com/example/minic/internal/wire"
)

// numberOperand annotates commands whose operand may be a negative number.
const numberOperand = "minic/number-operand"

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// SeparateNumberOperands rewrites args so a negative operand of a number
// command reaches the command instead of being parsed as a shorthand flag:
// "reverse -5" becomes "reverse -- -5". Other commands are left alone.
func SeparateNumberOperands(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd.Annotations[numberOperand] == "" {
		return args
	}

	var rest, operands, tail []string
	for i, arg := range args {
		if arg == "--" {
			tail = args[i+1:]
			break
		}
		if negativeNumber.MatchString(arg) {
			operands = append(operands, arg)
			continue
		}
		rest = append(rest, arg)
	}
	if len(operands) == 0 {
		return args
	}

	out := append(rest, "--")
	out = append(out, operands...)
	return append(out, tail...)
}

// ReverseCmd returns the reverse command
func ReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [number]",
		Short: "Reverse the decimal digits of a number",
		Long: `Reverse the decimal digits of a non-negative number.

Examples:
  minic reverse 1234    # Reversed Digits: 4321
  minic reverse 120     # Reversed Digits: 21
  minic reverse -5      # error: number must be non-negative (got -5)`,
		Annotations: map[string]string{numberOperand: "true"},
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			_, err = wire.NumberAdapterWithOutput(cmd.OutOrStdout()).Reverse(NewContext(), n)
			return err
		},
	}
}

// ArmstrongCmd returns the armstrong command
func ArmstrongCmd() *cobra.Command {
	var narcissistic bool

	cmd := &cobra.Command{
		Use:   "armstrong [number]",
		Short: "Check whether a number is an Armstrong number",
		Long: `Check whether a number equals the sum of the cubes of its digits.

With --narcissistic each digit is raised to the number of digits instead,
which also accepts wider numbers such as 9474.

Examples:
  minic armstrong 153                   # Armstrong
  minic armstrong 154                   # Not a Armstrong
  minic armstrong 9474 --narcissistic   # Armstrong`,
		Annotations: map[string]string{numberOperand: "true"},
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			_, err = wire.NumberAdapterWithOutput(cmd.OutOrStdout()).CheckArmstrong(NewContext(), n, narcissistic)
			return err
		},
	}

	cmd.Flags().BoolVarP(&narcissistic, "narcissistic", "n", false, "Raise digits to the digit count instead of 3")

	return cmd
}
