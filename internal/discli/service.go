// Package discli orchestrates sending, resending, and watching on top of the
// Discord client, the send history, and the hook runner.
package discli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/discli/internal/core/config"
	"github.com/hay-kot/discli/internal/core/discord"
	"github.com/hay-kot/discli/internal/core/history"
	"github.com/hay-kot/discli/internal/watch"
	"github.com/hay-kot/discli/pkg/executil"
	"github.com/hay-kot/discli/pkg/randid"
)

// Client is the channel client the service drives. *discord.Client
// satisfies it.
type Client interface {
	Fetch(ctx context.Context, channelID string, limit int) ([]discord.Message, error)
	Send(ctx context.Context, channelID string, opts discord.SendOptions) (*discord.SentMessage, error)
	Reset()
}

// Service orchestrates discli operations.
type Service struct {
	client     Client
	history    history.Store
	config     *config.Config
	log        zerolog.Logger
	hookRunner *watch.HookRunner
	now        func() time.Time
}

// New creates a new Service. Hook command output goes to stdout and stderr.
func New(
	client Client,
	store history.Store,
	cfg *config.Config,
	exec executil.Executor,
	log zerolog.Logger,
	stdout, stderr io.Writer,
) *Service {
	return &Service{
		client:     client,
		history:    store,
		config:     cfg,
		log:        log,
		hookRunner: watch.NewHookRunner(log.With().Str("component", "hooks").Logger(), exec, stdout, stderr),
		now:        time.Now,
	}
}

// Fetch returns new messages for the channel.
func (s *Service) Fetch(ctx context.Context, channelID string, limit int) ([]discord.Message, error) {
	return s.client.Fetch(ctx, channelID, limit)
}

// Reset clears the fetch cursor.
func (s *Service) Reset() {
	s.client.Reset()
}

// Send posts a message and records the attempt in history. A missing nonce
// is generated here so that the recorded entry can be resent with the same
// nonce. History write failures are logged and do not fail the send.
func (s *Service) Send(ctx context.Context, channelID string, opts discord.SendOptions) (*discord.SentMessage, error) {
	if opts.Nonce == "" {
		opts.Nonce = randid.Nonce()
	}

	sent, err := s.client.Send(ctx, channelID, opts)

	entry := history.Entry{
		ID:          randid.Generate(8),
		ChannelID:   channelID,
		Content:     opts.Content,
		Attachments: opts.Attachments,
		Nonce:       opts.Nonce,
		Timestamp:   s.now(),
	}
	if err != nil {
		entry.Error = err.Error()
	} else {
		entry.MessageID = sent.ID
	}

	if saveErr := s.history.Save(ctx, entry); saveErr != nil {
		s.log.Warn().Err(saveErr).Str("entry_id", entry.ID).Msg("failed to record send history")
	}

	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("channel_id", channelID).
		Str("message_id", sent.ID).
		Int("attachments", len(opts.Attachments)).
		Msg("message sent")

	return sent, nil
}

// Resend repeats a recorded send with its original nonce, so a send that
// reached Discord despite a client-side error is not duplicated. An empty id
// selects the most recent failed entry.
func (s *Service) Resend(ctx context.Context, id string) (history.Entry, *discord.SentMessage, error) {
	var (
		entry history.Entry
		err   error
	)

	if id == "" {
		entry, err = s.history.LastFailed(ctx)
		if errors.Is(err, history.ErrNotFound) {
			return history.Entry{}, nil, fmt.Errorf("no failed sends in history")
		}
	} else {
		entry, err = s.history.Get(ctx, id)
	}
	if err != nil {
		return history.Entry{}, nil, fmt.Errorf("load history entry: %w", err)
	}

	s.log.Info().
		Str("entry_id", entry.ID).
		Str("channel_id", entry.ChannelID).
		Msg("resending message")

	sent, err := s.Send(ctx, entry.ChannelID, discord.SendOptions{
		Content:     entry.Content,
		Attachments: entry.Attachments,
		Nonce:       entry.Nonce,
	})
	return entry, sent, err
}

// Watch polls the channel, writes each new message to out using the
// configured format, and runs matching hooks. Hook failures are logged and
// the watch continues.
func (s *Service) Watch(ctx context.Context, opts watch.Options, out io.Writer) error {
	w := watch.New(s.client, s.log.With().Str("component", "watch").Logger())

	return w.Run(ctx, opts, func(ctx context.Context, msg discord.Message) error {
		data := watch.TemplateData(opts.ChannelID, msg)

		line, err := watch.Format(s.config.Watch.Format, data)
		if err != nil {
			return fmt.Errorf("format message: %w", err)
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}

		if len(s.config.Hooks) == 0 {
			return nil
		}

		if err := s.hookRunner.RunHooks(ctx, s.config.Hooks, data); err != nil {
			s.log.Error().Err(err).Str("message_id", msg.ID).Msg("hook failed")
		}
		return nil
	})
}
