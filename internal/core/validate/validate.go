// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxContentLength is the most characters Discord accepts in message content.
const MaxContentLength = 2000

// MaxFetchLimit is the most messages Discord returns for one request.
const MaxFetchLimit = 100

// ChannelID validates a channel ID is a snowflake.
func ChannelID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("channel id is required")
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return fmt.Errorf("channel id %q is not a numeric snowflake", id)
	}
	return nil
}

// APIURL validates a REST base URL is absolute http(s).
func APIURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

// MessageContent validates a message has something to send and fits the
// content limit.
func MessageContent(content string, attachments int) error {
	if strings.TrimSpace(content) == "" && attachments == 0 {
		return fmt.Errorf("message needs content or at least one attachment")
	}
	if n := utf8.RuneCountInString(content); n > MaxContentLength {
		return fmt.Errorf("content is %d characters, limit is %d", n, MaxContentLength)
	}
	return nil
}

// FetchLimit validates a per-request message limit is within 1..100.
func FetchLimit(n int) error {
	if n < 1 || n > MaxFetchLimit {
		return fmt.Errorf("must be between 1 and %d, got %d", MaxFetchLimit, n)
	}
	return nil
}

// PollInterval validates a poll interval is positive.
func PollInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	return nil
}
