// Package history defines the send history domain types and interfaces.
package history

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a history entry is not found.
var ErrNotFound = errors.New("history entry not found")

// Entry records one send attempt.
type Entry struct {
	ID          string    `json:"id"`
	ChannelID   string    `json:"channel_id"`
	Content     string    `json:"content,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
	Nonce       string    `json:"nonce"`
	MessageID   string    `json:"message_id,omitempty"` // set when the send succeeded
	Error       string    `json:"error,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Failed returns true if the send did not succeed.
func (e *Entry) Failed() bool {
	return e.Error != ""
}

// Summary returns a single-line description of what was sent.
func (e *Entry) Summary() string {
	summary := strings.Join(strings.Fields(e.Content), " ")
	if len(e.Attachments) > 0 {
		if summary != "" {
			summary += " "
		}
		summary += "[" + strings.Join(e.Attachments, ", ") + "]"
	}
	return summary
}

// Store defines persistence operations for send history.
type Store interface {
	// List returns all history entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	// Get returns a history entry by ID. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (Entry, error)
	// Save adds a new history entry, pruning oldest entries if count exceeds the configured maximum.
	Save(ctx context.Context, entry Entry) error
	// Clear removes all history entries.
	Clear(ctx context.Context) error
	// LastFailed returns the most recent failed entry that no later entry with
	// the same nonce delivered. Returns ErrNotFound if none.
	LastFailed(ctx context.Context) (Entry, error)
}
