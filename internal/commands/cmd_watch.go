package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/discli/internal/watch"
)

type WatchCmd struct {
	flags *Flags

	channel  string
	limit    int
	interval time.Duration
	timeout  time.Duration
	backfill bool
}

// NewWatchCmd creates a new watch command.
func NewWatchCmd(flags *Flags) *WatchCmd {
	return &WatchCmd{flags: flags}
}

// Register adds the watch command to the application.
func (cmd *WatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "watch",
		Usage:     "Stream new messages and run hooks",
		UsageText: "discli watch [--channel ID] [--interval 5s] [--timeout 1h] [--backfill]",
		Description: `Polls a channel and prints each new non-bot message using watch.format.

Hooks from the config file run for every message whose content matches their
pattern. Hook commands see the message as DISCLI_* environment variables and
template fields. A failing hook is logged and watching continues.

Without --backfill, messages already in the channel when watch starts are
skipped.

Examples:
  discli watch
  discli watch -C 1100000000000000000 --interval 10s
  discli watch --timeout 30m --backfill`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "channel",
				Aliases:     []string{"C"},
				Usage:       "channel ID (default: default_channel from config)",
				Sources:     cli.EnvVars("DISCLI_CHANNEL"),
				Destination: &cmd.channel,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "messages requested per poll (1-100, default: fetch_limit from config)",
				Destination: &cmd.limit,
			},
			&cli.DurationFlag{
				Name:        "interval",
				Aliases:     []string{"i"},
				Usage:       "poll interval (default: watch.interval from config)",
				Destination: &cmd.interval,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "stop after this long (0 runs until interrupted)",
				Destination: &cmd.timeout,
			},
			&cli.BoolFlag{
				Name:        "backfill",
				Usage:       "print the most recent messages before waiting for new ones",
				Destination: &cmd.backfill,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *WatchCmd) run(ctx context.Context, c *cli.Command) error {
	channel, err := cmd.flags.Channel(cmd.channel)
	if err != nil {
		return err
	}

	if cmd.timeout < 0 {
		return fmt.Errorf("--timeout cannot be negative, got %s", cmd.timeout)
	}

	poll := cmd.flags.pollInput(cmd.limit, cmd.interval)
	if err := poll.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	opts := watch.Options{
		ChannelID: channel,
		Limit:     poll.Limit,
		Interval:  poll.Interval,
		Timeout:   cmd.timeout,
		Backfill:  cmd.backfill,
	}

	// Hook output goes to stderr so stdout carries only messages.
	svc, err := cmd.flags.NewService(os.Stderr, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("channel_id", channel).
		Dur("interval", opts.Interval).
		Int("hooks", len(cmd.flags.Config.Hooks)).
		Msg("watching channel")

	err = svc.Watch(ctx, opts, c.Root().Writer)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
