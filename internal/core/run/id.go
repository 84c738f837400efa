// Package run contains the pure business logic for recorded runs.
// This is part of the Functional Core - no I/O, only pure functions.
package run

import (
	"fmt"
	"strconv"
	"strings"
)

// Run kinds
const (
	KindReverse   = "reverse"
	KindArmstrong = "armstrong"
	KindTokenize  = "tokenize"
	KindCompile   = "compile"
	KindExecute   = "run"
)

// Run status constants
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// GenerateRunID generates a run ID from the current max number.
// The format is RUN-XXX where XXX is a zero-padded 3-digit number.
func GenerateRunID(currentMax int) string {
	return fmt.Sprintf("RUN-%03d", currentMax+1)
}

// ParseRunNumber extracts the numeric portion from a run ID.
// Returns -1 if the ID format is invalid.
func ParseRunNumber(id string) int {
	digits, ok := strings.CutPrefix(id, "RUN-")
	if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return -1
	}
	num, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return num
}
