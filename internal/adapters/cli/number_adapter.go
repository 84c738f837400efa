// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/minic/internal/ports/primary"
)

// NumberAdapter translates CLI operations to NumberService calls.
type NumberAdapter struct {
	service primary.NumberService
	out     io.Writer
}

// NewNumberAdapter creates a new NumberAdapter with the given service.
func NewNumberAdapter(service primary.NumberService, out io.Writer) *NumberAdapter {
	return &NumberAdapter{
		service: service,
		out:     out,
	}
}

// Reverse prints the digit reversal of n.
func (a *NumberAdapter) Reverse(ctx context.Context, n int) (*primary.ReverseResponse, error) {
	resp, err := a.service.Reverse(ctx, primary.ReverseRequest{Number: n})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Reversed Digits: %d\n", resp.Reversed)
	return resp, nil
}

// CheckArmstrong prints whether n is an Armstrong number.
func (a *NumberAdapter) CheckArmstrong(ctx context.Context, n int, narcissistic bool) (*primary.ArmstrongResponse, error) {
	resp, err := a.service.CheckArmstrong(ctx, primary.ArmstrongRequest{
		Number:       n,
		Narcissistic: narcissistic,
	})
	if err != nil {
		return nil, err
	}

	verdictColor := color.New(color.FgYellow)
	if resp.IsArmstrong {
		verdictColor = color.New(color.FgGreen)
	}
	fmt.Fprintln(a.out, verdictColor.Sprint(resp.Verdict))
	return resp, nil
}
