package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/discli/internal/attach"
	"github.com/hay-kot/discli/internal/core/discord"
	"github.com/hay-kot/discli/internal/core/validate"
	"github.com/hay-kot/discli/internal/printer"
	"github.com/hay-kot/discli/internal/templates"
)

// SendInput is a message ready to send.
type SendInput struct {
	ChannelID   string
	Content     string
	Attachments []string
}

// Validate checks the input before any request is made.
func (in SendInput) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if err := validate.ChannelID(in.ChannelID); err != nil {
		errs = errs.Append("channel", err)
	}

	if err := validate.MessageContent(in.Content, len(in.Attachments)); err != nil {
		errs = errs.Append("content", err)
	}

	if len(in.Attachments) > discord.MaxAttachments {
		errs = errs.Append("attach", fmt.Errorf("%d files given, at most %d allowed", len(in.Attachments), discord.MaxAttachments))
	}

	return errs.ToError()
}

type SendCmd struct {
	flags *Flags

	channel  string
	attach   []string
	file     string
	template string
	set      []string
	yes      bool
}

// NewSendCmd creates a new send command.
func NewSendCmd(flags *Flags) *SendCmd {
	return &SendCmd{flags: flags}
}

// Register adds the send command to the application.
func (cmd *SendCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "send",
		Usage:     "Send a message to a channel",
		UsageText: "discli send [--channel ID] [--attach PATTERN]... [message]",
		Description: `Sends a message, optionally with file attachments.

The message can be provided as:
- A command-line argument
- From a file with -f/--file
- From a configured template with -t/--template
- From stdin if no argument or attachment is provided

Template fields are taken from --set; missing fields are prompted for when
running in a terminal.

--attach accepts file paths and glob patterns (including **). Up to 10 files
can be attached. When attaching from a terminal you are asked to confirm
unless --yes is set.

Every send is recorded in history; failed sends can be retried with
'discli resend'.

Examples:
  discli send "deploy finished"
  discli send --attach 'screenshots/*.png' "before and after"
  discli send -t release --set version=1.4.0 --set env=production
  git log -1 --format=%B | discli send -C 1100000000000000000`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "channel",
				Aliases:     []string{"C"},
				Usage:       "channel ID (default: default_channel from config)",
				Sources:     cli.EnvVars("DISCLI_CHANNEL"),
				Destination: &cmd.channel,
			},
			&cli.StringSliceFlag{
				Name:        "attach",
				Aliases:     []string{"a"},
				Usage:       "file or glob pattern to attach (repeatable)",
				Destination: &cmd.attach,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "read message content from file",
				Destination: &cmd.file,
			},
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "render the message from a configured template",
				Destination: &cmd.template,
			},
			&cli.StringSliceFlag{
				Name:        "set",
				Usage:       "template field value as name=value (repeatable)",
				Destination: &cmd.set,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the attachment confirmation",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SendCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	channel, err := cmd.flags.Channel(cmd.channel)
	if err != nil {
		return err
	}

	files, err := attach.Resolve(cmd.attach)
	if err != nil {
		return err
	}

	var content string
	if cmd.template != "" {
		if c.NArg() > 0 || cmd.file != "" {
			return fmt.Errorf("--template cannot be combined with message text or --file")
		}
		content, err = cmd.renderTemplate()
	} else {
		content, err = cmd.readContent(c, len(files) > 0)
	}
	if err != nil {
		return err
	}

	input := SendInput{ChannelID: channel, Content: content, Attachments: files}
	if err := input.Validate(); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}

	if len(files) > 0 && !cmd.yes && term.IsTerminal(int(os.Stdin.Fd())) {
		confirmed, err := confirmAttachments(files)
		if err != nil {
			return err
		}
		if !confirmed {
			p.Infof("Send cancelled")
			return nil
		}
	}

	svc, err := cmd.flags.NewService(os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	sent, err := svc.Send(ctx, channel, discord.SendOptions{
		Content:     input.Content,
		Attachments: input.Attachments,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	p.Successf("Sent message %s", sent.ID)
	return nil
}

// readContent takes the message from the argument, --file, or stdin. Stdin
// is only read when nothing else was given.
func (cmd *SendCmd) readContent(c *cli.Command, hasAttachments bool) (string, error) {
	switch {
	case c.NArg() >= 1:
		return strings.Join(c.Args().Slice(), " "), nil
	case cmd.file != "":
		data, err := os.ReadFile(cmd.file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case hasAttachments:
		return "", nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no message provided (stdin is a terminal); pass text, use -f, or pipe input")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// renderTemplate fills the named template from --set, prompting for the
// remaining fields when stdin is a terminal.
func (cmd *SendCmd) renderTemplate() (string, error) {
	t, ok := cmd.flags.Config.Templates[cmd.template]
	if !ok {
		return "", fmt.Errorf("template %q not found; run 'discli templates' to list them", cmd.template)
	}

	values, err := templates.ParseSetValues(cmd.set)
	if err != nil {
		return "", err
	}

	if !templates.AllFieldsPrefilled(t, values) && term.IsTerminal(int(os.Stdin.Fd())) {
		values, err = templates.RunForm(t, values)
		if err != nil {
			return "", fmt.Errorf("template form: %w", err)
		}
	}

	if err := templates.Validate(t, values); err != nil {
		return "", fmt.Errorf("template %q: %w", cmd.template, err)
	}

	return templates.Render(t, values)
}

func confirmAttachments(files []string) (bool, error) {
	confirmed := true
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Upload %d file(s)?", len(files))).
		Description(strings.Join(files, "\n")).
		Affirmative("Send").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirm attachments: %w", err)
	}
	return confirmed, nil
}
