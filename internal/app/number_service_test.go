package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/minic/internal/ports/primary"
)

func TestNumberService_Reverse(t *testing.T) {
	tests := []struct {
		name     string
		number   int
		want     int
		wantErr  bool
		errorMsg string
	}{
		{name: "four digits", number: 1234, want: 4321},
		{name: "trailing zero dropped", number: 120, want: 21},
		{name: "zero", number: 0, want: 0},
		{name: "single digit", number: 7, want: 7},
		{name: "negative rejected", number: -5, wantErr: true, errorMsg: "number must be non-negative (got -5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRunRepository()
			service := NewNumberService(repo, testLogger)

			resp, err := service.Reverse(context.Background(), primary.ReverseRequest{Number: tt.number})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if err.Error() != tt.errorMsg {
					t.Errorf("expected error %q, got %q", tt.errorMsg, err.Error())
				}
				if len(repo.runs) != 0 {
					t.Errorf("expected no run recorded for rejected input, got %d", len(repo.runs))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Reversed != tt.want {
				t.Errorf("expected %d, got %d", tt.want, resp.Reversed)
			}
			if resp.RunID != "RUN-001" {
				t.Errorf("expected RUN-001, got %q", resp.RunID)
			}
		})
	}
}

func TestNumberService_Reverse_RecordsRun(t *testing.T) {
	repo := newMockRunRepository()
	service := NewNumberService(repo, testLogger)

	if _, err := service.Reverse(context.Background(), primary.ReverseRequest{Number: 1234}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	run, err := repo.only()
	if err != nil {
		t.Fatal(err)
	}
	if run.Kind != "reverse" || run.Input != "1234" {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.Output != "Reversed Digits: 4321" {
		t.Errorf("expected output 'Reversed Digits: 4321', got %q", run.Output)
	}
	if run.Status != "ok" {
		t.Errorf("expected status ok, got %q", run.Status)
	}
}

func TestNumberService_HistoryDisabled(t *testing.T) {
	service := NewNumberService(nil, testLogger)

	resp, err := service.Reverse(context.Background(), primary.ReverseRequest{Number: 1234})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RunID != "" {
		t.Errorf("expected no run ID when history is disabled, got %q", resp.RunID)
	}
}

func TestNumberService_HistoryFailureDoesNotFailCommand(t *testing.T) {
	repo := newMockRunRepository()
	repo.createErr = errors.New("disk full")
	service := NewNumberService(repo, testLogger)

	resp, err := service.CheckArmstrong(context.Background(), primary.ArmstrongRequest{Number: 153})
	if err != nil {
		t.Fatalf("history failure should not fail the command: %v", err)
	}
	if resp.Verdict != "Armstrong" {
		t.Errorf("expected Armstrong, got %q", resp.Verdict)
	}
	if resp.RunID != "" {
		t.Errorf("expected empty run ID on history failure, got %q", resp.RunID)
	}
}

func TestNumberService_CheckArmstrong(t *testing.T) {
	tests := []struct {
		name          string
		number        int
		narcissistic  bool
		wantSum       int
		wantArmstrong bool
		wantVerdict   string
	}{
		{"153 is Armstrong", 153, false, 153, true, "Armstrong"},
		{"154 is not", 154, false, 190, false, "Not a Armstrong"},
		{"zero", 0, false, 0, true, "Armstrong"},
		{"370", 370, false, 370, true, "Armstrong"},
		{"9474 fails cube rule", 9474, false, 1200, false, "Not a Armstrong"},
		{"9474 passes digit-count rule", 9474, true, 9474, true, "Armstrong"},
		{"153 under digit-count rule", 153, true, 153, true, "Armstrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRunRepository()
			service := NewNumberService(repo, testLogger)

			resp, err := service.CheckArmstrong(context.Background(), primary.ArmstrongRequest{
				Number:       tt.number,
				Narcissistic: tt.narcissistic,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Sum != tt.wantSum {
				t.Errorf("expected sum %d, got %d", tt.wantSum, resp.Sum)
			}
			if resp.IsArmstrong != tt.wantArmstrong {
				t.Errorf("expected IsArmstrong %v, got %v", tt.wantArmstrong, resp.IsArmstrong)
			}
			if resp.Verdict != tt.wantVerdict {
				t.Errorf("expected verdict %q, got %q", tt.wantVerdict, resp.Verdict)
			}

			run, err := repo.only()
			if err != nil {
				t.Fatal(err)
			}
			if run.Output != tt.wantVerdict {
				t.Errorf("expected recorded output %q, got %q", tt.wantVerdict, run.Output)
			}
		})
	}
}

func TestNumberService_CheckArmstrong_Negative(t *testing.T) {
	service := NewNumberService(newMockRunRepository(), testLogger)

	_, err := service.CheckArmstrong(context.Background(), primary.ArmstrongRequest{Number: -153})
	if err == nil {
		t.Fatal("expected error for negative input")
	}
	if err.Error() != "number must be non-negative (got -153)" {
		t.Errorf("unexpected error: %v", err)
	}
}
