package validate

import (
	"strings"
	"testing"
	"time"
)

func TestChannelID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"snowflake", "1100000000000000000", false},
		{"small number", "42", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"channel name", "general", true},
		{"negative", "-5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ChannelID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ChannelID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestAPIURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"discord", "https://discord.com/api/v9", false},
		{"local", "http://127.0.0.1:8080", false},
		{"empty", "", true},
		{"relative", "/api/v9", true},
		{"ftp", "ftp://discord.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := APIURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("APIURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestMessageContent(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		attachments int
		wantErr     bool
	}{
		{"text only", "hello", 0, false},
		{"attachments only", "", 2, false},
		{"nothing", "", 0, true},
		{"whitespace", "  \n", 0, true},
		{"at limit", strings.Repeat("a", MaxContentLength), 0, false},
		{"over limit", strings.Repeat("a", MaxContentLength+1), 0, true},
		{"multibyte at limit", strings.Repeat("é", MaxContentLength), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MessageContent(tt.content, tt.attachments)
			if (err != nil) != tt.wantErr {
				t.Errorf("MessageContent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchLimit(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"default", 10, false},
		{"max", MaxFetchLimit, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"over max", 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FetchLimit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("FetchLimit(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestPollInterval(t *testing.T) {
	tests := []struct {
		name    string
		input   time.Duration
		wantErr bool
	}{
		{"seconds", 5 * time.Second, false},
		{"millisecond", time.Millisecond, false},
		{"zero", 0, true},
		{"negative", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PollInterval(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("PollInterval(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
