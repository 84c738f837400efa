package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/example/minic/internal/ports/primary"
)

func TestNumberAdapter_Reverse(t *testing.T) {
	var out bytes.Buffer
	adapter := NewNumberAdapter(&mockNumberService{}, &out)

	if _, err := adapter.Reverse(context.Background(), 1234); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "Reversed Digits: 4321\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestNumberAdapter_Reverse_Error(t *testing.T) {
	var out bytes.Buffer
	service := &mockNumberService{
		reverseFn: func(ctx context.Context, req primary.ReverseRequest) (*primary.ReverseResponse, error) {
			return nil, errors.New("number must be non-negative (got -1)")
		},
	}
	adapter := NewNumberAdapter(service, &out)

	if _, err := adapter.Reverse(context.Background(), -1); err == nil {
		t.Fatal("expected error")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on error, got %q", out.String())
	}
}

func TestNumberAdapter_CheckArmstrong(t *testing.T) {
	tests := []struct {
		name         string
		narcissistic bool
		resp         *primary.ArmstrongResponse
		want         string
	}{
		{"armstrong", false, &primary.ArmstrongResponse{IsArmstrong: true, Verdict: "Armstrong"}, "Armstrong\n"},
		{"not armstrong", false, &primary.ArmstrongResponse{IsArmstrong: false, Verdict: "Not a Armstrong"}, "Not a Armstrong\n"},
		{"narcissistic flag passed through", true, &primary.ArmstrongResponse{IsArmstrong: true, Verdict: "Armstrong"}, "Armstrong\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			service := &mockNumberService{
				checkArmstrongFn: func(ctx context.Context, req primary.ArmstrongRequest) (*primary.ArmstrongResponse, error) {
					return tt.resp, nil
				},
			}
			adapter := NewNumberAdapter(service, &out)

			if _, err := adapter.CheckArmstrong(context.Background(), 153, tt.narcissistic); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, out.String())
			}
			if service.lastArmstrongReq.Narcissistic != tt.narcissistic {
				t.Errorf("expected Narcissistic=%v in request", tt.narcissistic)
			}
		})
	}
}
