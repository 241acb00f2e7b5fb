// Package watch polls a channel and dispatches new messages.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/discli/internal/core/discord"
)

// Fetcher is the part of discord.Client the watcher needs.
type Fetcher interface {
	Fetch(ctx context.Context, channelID string, limit int) ([]discord.Message, error)
}

// Handler is called for each new message, oldest first.
type Handler func(ctx context.Context, msg discord.Message) error

// Options configures a watch run.
type Options struct {
	ChannelID string
	Limit     int
	Interval  time.Duration
	// Timeout ends the run without error once elapsed. Zero runs until the
	// context is cancelled.
	Timeout time.Duration
	// Backfill delivers the messages from the first poll. Otherwise the
	// first poll only positions the cursor.
	Backfill bool
}

// Watcher polls a channel on a fixed interval.
type Watcher struct {
	client Fetcher
	log    zerolog.Logger
}

// New creates a Watcher.
func New(client Fetcher, log zerolog.Logger) *Watcher {
	return &Watcher{client: client, log: log}
}

// Run polls until the context is cancelled, the timeout elapses, a fetch
// fails, or the handler returns an error.
func (w *Watcher) Run(ctx context.Context, opts Options, handle Handler) error {
	if opts.Interval <= 0 {
		return fmt.Errorf("watch interval must be positive, got %s", opts.Interval)
	}

	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = time.Now().Add(opts.Timeout)
	}

	messages, err := w.client.Fetch(ctx, opts.ChannelID, opts.Limit)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	if opts.Backfill {
		if err := w.dispatch(ctx, messages, handle); err != nil {
			return err
		}
	} else {
		w.log.Debug().
			Int("skipped", len(messages)).
			Msg("cursor primed, waiting for new messages")
	}

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !deadline.IsZero() && time.Now().After(deadline) {
				return nil
			}

			messages, err := w.client.Fetch(ctx, opts.ChannelID, opts.Limit)
			if err != nil {
				return fmt.Errorf("fetch: %w", err)
			}

			if err := w.dispatch(ctx, messages, handle); err != nil {
				return err
			}
		}
	}
}

func (w *Watcher) dispatch(ctx context.Context, messages []discord.Message, handle Handler) error {
	for _, msg := range messages {
		w.log.Debug().
			Str("message_id", msg.ID).
			Str("author", msg.Author.Username).
			Msg("new message")

		if err := handle(ctx, msg); err != nil {
			return fmt.Errorf("handle message %s: %w", msg.ID, err)
		}
	}
	return nil
}
