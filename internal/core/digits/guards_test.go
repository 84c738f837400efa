package digits

import "testing"

func TestCanReverse(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "zero is allowed",
			n:           0,
			wantAllowed: true,
		},
		{
			name:        "positive is allowed",
			n:           1234,
			wantAllowed: true,
		},
		{
			name:        "negative is rejected",
			n:           -5,
			wantAllowed: false,
			wantReason:  "number must be non-negative (got -5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanReverse(tt.n)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanClassify(t *testing.T) {
	if err := CanClassify(153).Error(); err != nil {
		t.Errorf("expected 153 to be allowed, got %v", err)
	}
	err := CanClassify(-153).Error()
	if err == nil {
		t.Fatal("expected error for negative input")
	}
	if err.Error() != "number must be non-negative (got -153)" {
		t.Errorf("error = %q", err.Error())
	}
}
