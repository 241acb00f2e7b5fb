package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/discli/internal/printer"
)

type ResendCmd struct {
	flags *Flags
}

// NewResendCmd creates a new resend command.
func NewResendCmd(flags *Flags) *ResendCmd {
	return &ResendCmd{flags: flags}
}

// Register adds the resend command to the application.
func (cmd *ResendCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "resend",
		Usage:     "Retry a send from history",
		UsageText: "discli resend [ID]",
		Description: `Sends a recorded message again with its original content, attachments,
and nonce. Reusing the nonce means Discord returns the existing message
instead of posting a duplicate if the original actually went through.

Without an ID, the most recent failed send is retried.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ResendCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	svc, err := cmd.flags.NewService(io.Discard, io.Discard)
	if err != nil {
		return err
	}

	entry, sent, err := svc.Resend(ctx, c.Args().First())
	if err != nil {
		if entry.ID != "" {
			return fmt.Errorf("resend %s: %w", entry.ID, err)
		}
		return err
	}

	p.Successf("Resent %s as message %s", entry.ID, sent.ID)
	return nil
}
