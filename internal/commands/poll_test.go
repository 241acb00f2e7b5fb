package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/hay-kot/discli/internal/core/config"
)

func TestPollInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   PollInput
		wantErr string
	}{
		{
			name:  "valid",
			input: PollInput{Limit: 10, Interval: 5 * time.Second},
		},
		{
			name:  "max limit",
			input: PollInput{Limit: 100, Interval: time.Second},
		},
		{
			name:    "limit too large",
			input:   PollInput{Limit: 500, Interval: 5 * time.Second},
			wantErr: "limit",
		},
		{
			name:    "negative limit",
			input:   PollInput{Limit: -1, Interval: 5 * time.Second},
			wantErr: "limit",
		},
		{
			name:    "negative interval",
			input:   PollInput{Limit: 10, Interval: -time.Second},
			wantErr: "interval",
		},
		{
			name:    "zero interval",
			input:   PollInput{Limit: 10},
			wantErr: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Errorf("expected error containing %q, got nil", tt.wantErr)
				return
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestFlags_PollInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FetchLimit = 25
	cfg.Watch.Interval = 7 * time.Second
	flags := &Flags{Config: &cfg}

	got := flags.pollInput(0, 0)
	if got.Limit != 25 || got.Interval != 7*time.Second {
		t.Errorf("expected config defaults, got %+v", got)
	}

	got = flags.pollInput(500, -time.Second)
	if got.Limit != 500 || got.Interval != -time.Second {
		t.Errorf("expected explicit values to be kept, got %+v", got)
	}
	if err := got.Validate(); err == nil {
		t.Error("expected explicit out-of-range values to fail validation")
	}
}
