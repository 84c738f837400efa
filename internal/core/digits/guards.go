package digits

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanReverse evaluates whether a number can be digit-reversed.
// Rules:
// - Number must be non-negative
func CanReverse(n int) GuardResult {
	return requireNonNegative(n)
}

// CanClassify evaluates whether a number can be checked for the Armstrong property.
// Rules:
// - Number must be non-negative
func CanClassify(n int) GuardResult {
	return requireNonNegative(n)
}

func requireNonNegative(n int) GuardResult {
	if n < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("number must be non-negative (got %d)", n),
		}
	}
	return GuardResult{Allowed: true}
}
