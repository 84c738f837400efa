package run

import (
	"fmt"
	"strings"
)

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

var validKinds = []string{KindReverse, KindArmstrong, KindTokenize, KindCompile, KindExecute}

// IsValidKind reports whether kind names a known run kind.
func IsValidKind(kind string) bool {
	for _, k := range validKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// CanRecordRun evaluates whether a run can be written to history.
// Rules:
// - Kind must be known
// - Input must not be empty
func CanRecordRun(kind, input string) GuardResult {
	if !IsValidKind(kind) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown run kind %q (valid: %s)", kind, strings.Join(validKinds, ", ")),
		}
	}
	if strings.TrimSpace(input) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "run input cannot be empty",
		}
	}
	return GuardResult{Allowed: true}
}

// CanFilterByKind evaluates whether a history filter is usable.
// An empty kind means no filter.
func CanFilterByKind(kind string) GuardResult {
	if kind == "" || IsValidKind(kind) {
		return GuardResult{Allowed: true}
	}
	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("unknown run kind %q (valid: %s)", kind, strings.Join(validKinds, ", ")),
	}
}
