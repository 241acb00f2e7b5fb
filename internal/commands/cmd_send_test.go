package commands

import (
	"strings"
	"testing"
)

func TestSendInput_Validate(t *testing.T) {
	files := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "file.png"
		}
		return out
	}

	tests := []struct {
		name    string
		input   SendInput
		wantErr string
	}{
		{
			name:    "missing channel",
			input:   SendInput{Content: "hi"},
			wantErr: "channel",
		},
		{
			name:    "non numeric channel",
			input:   SendInput{ChannelID: "general", Content: "hi"},
			wantErr: "snowflake",
		},
		{
			name:    "nothing to send",
			input:   SendInput{ChannelID: "1100000000000000000", Content: "  "},
			wantErr: "content",
		},
		{
			name:    "content too long",
			input:   SendInput{ChannelID: "1100000000000000000", Content: strings.Repeat("x", 2001)},
			wantErr: "limit is 2000",
		},
		{
			name:    "too many attachments",
			input:   SendInput{ChannelID: "1100000000000000000", Attachments: files(11)},
			wantErr: "at most 10",
		},
		{
			name:  "attachments without content",
			input: SendInput{ChannelID: "1100000000000000000", Attachments: files(10)},
		},
		{
			name:  "text only",
			input: SendInput{ChannelID: "1100000000000000000", Content: "hello"},
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
