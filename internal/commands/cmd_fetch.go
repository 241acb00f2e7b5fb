package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/discli/internal/core/discord"
	"github.com/hay-kot/discli/internal/core/validate"
	"github.com/hay-kot/discli/internal/watch"
)

type FetchCmd struct {
	flags *Flags

	channel string
	limit   int
	format  string
	json    bool
}

// NewFetchCmd creates a new fetch command.
func NewFetchCmd(flags *Flags) *FetchCmd {
	return &FetchCmd{flags: flags}
}

// Register adds the fetch command to the application.
func (cmd *FetchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fetch",
		Usage:     "Print recent messages from a channel",
		UsageText: "discli fetch [--channel ID] [--limit N] [--json]",
		Description: `Prints the most recent non-bot messages in a channel, oldest first.

Messages are rendered with the watch.format template from the config file
unless --format or --json is given.

Examples:
  discli fetch --channel 1100000000000000000
  discli fetch -n 50 --format '{{ .Timestamp }} {{ .DisplayName }}: {{ .Content }}'
  discli fetch --json | jq '.[].content'`,
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
				Usage:       "number of messages to request (1-100, default: fetch_limit from config)",
				Destination: &cmd.limit,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "message template (default: watch.format from config)",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print messages as a JSON array",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FetchCmd) run(ctx context.Context, c *cli.Command) error {
	channel, err := cmd.flags.Channel(cmd.channel)
	if err != nil {
		return err
	}

	limit := cmd.limit
	if limit == 0 {
		limit = cmd.flags.Config.FetchLimit
	}
	if err := validate.FetchLimit(limit); err != nil {
		return fmt.Errorf("--limit %w", err)
	}

	client, err := cmd.flags.NewClient()
	if err != nil {
		return err
	}

	messages, err := client.Fetch(ctx, channel, limit)
	if err != nil {
		return fmt.Errorf("fetch messages: %w", err)
	}

	if cmd.json {
		if messages == nil {
			messages = []discord.Message{}
		}
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(messages)
	}

	format := cmd.format
	if format == "" {
		format = cmd.flags.Config.Watch.Format
	}

	for _, msg := range messages {
		line, err := watch.Format(format, watch.TemplateData(channel, msg))
		if err != nil {
			return fmt.Errorf("format message: %w", err)
		}
		_, _ = fmt.Fprintln(c.Root().Writer, line)
	}

	return nil
}
