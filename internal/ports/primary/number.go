package primary

import "context"

// NumberService defines the primary port for the numeric procedures.
type NumberService interface {
	// Reverse reverses the decimal digits of a non-negative number.
	Reverse(ctx context.Context, req ReverseRequest) (*ReverseResponse, error)

	// CheckArmstrong classifies a non-negative number as Armstrong or not.
	CheckArmstrong(ctx context.Context, req ArmstrongRequest) (*ArmstrongResponse, error)
}

// ReverseRequest contains parameters for reversing a number.
type ReverseRequest struct {
	Number int
}

// ReverseResponse contains the result of reversing a number.
type ReverseResponse struct {
	Number   int
	Reversed int
	RunID    string // empty when history is disabled
}

// ArmstrongRequest contains parameters for an Armstrong check.
type ArmstrongRequest struct {
	Number int
	// Narcissistic raises each digit to the digit count instead of 3.
	Narcissistic bool
}

// ArmstrongResponse contains the result of an Armstrong check.
type ArmstrongResponse struct {
	Number      int
	Sum         int
	IsArmstrong bool
	Verdict     string
	RunID       string
}
