package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/discli/internal/tui"
)

type ChatCmd struct {
	flags *Flags

	channel  string
	limit    int
	interval time.Duration
}

// NewChatCmd creates a new chat command.
func NewChatCmd(flags *Flags) *ChatCmd {
	return &ChatCmd{flags: flags}
}

// Register adds the chat command to the application.
func (cmd *ChatCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "chat",
		Usage:     "Open an interactive view of a channel",
		UsageText: "discli chat [--channel ID] [--interval 5s]",
		Description: `Opens a full-screen view that polls the channel and lets you send
messages. Message content is rendered as markdown.

Keys:
  enter    send the typed message
  ctrl+r   clear the cursor and reload the most recent messages
  pgup/dn  scroll
  esc      quit

Logs are buffered while the view is open and printed on exit.`,
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
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ChatCmd) run(ctx context.Context, c *cli.Command) error {
	channel, err := cmd.flags.Channel(cmd.channel)
	if err != nil {
		return err
	}

	poll := cmd.flags.pollInput(cmd.limit, cmd.interval)
	if err := poll.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	opts := tui.Options{
		ChannelID: channel,
		Limit:     poll.Limit,
		Interval:  poll.Interval,
	}

	// Hooks never run from chat, so their output is discarded.
	svc, err := cmd.flags.NewService(io.Discard, io.Discard)
	if err != nil {
		return err
	}

	model := tui.New(svc, opts, log.With().Str("component", "tui").Logger())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run chat: %w", err)
	}
	return nil
}
