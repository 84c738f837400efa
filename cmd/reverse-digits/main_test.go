package main

import (
	"bytes"
	"testing"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	run(&out)

	if out.String() != "Reversed Digits: 4321\n" {
		t.Errorf("expected %q, got %q", "Reversed Digits: 4321\n", out.String())
	}
}
