package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/discli/internal/commands/doctor"
	"github.com/hay-kot/discli/internal/printer"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Check configuration and Discord access",
		UsageText:   "discli doctor [options]",
		Description: "Validates the configuration, checks that a token is set, and probes read access to the default channel.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	var fetcher doctor.Fetcher
	if svc, err := cmd.flags.NewService(io.Discard, io.Discard); err == nil {
		fetcher = svc
	}

	checks := []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.Config, cmd.flags.ConfigPath),
		doctor.NewDiscordCheck(cmd.flags.Token, cmd.flags.Config.DefaultChannel, fetcher),
	}

	report := doctor.RunAll(ctx, checks)

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	return cmd.outputText(ctx, report)
}

func (cmd *DoctorCmd) outputText(ctx context.Context, report doctor.Report) error {
	p := printer.Ctx(ctx)

	for _, result := range report.Checks {
		p.Section(result.Name)

		for _, item := range result.Items {
			switch item.Status {
			case doctor.StatusPass:
				p.CheckItem(item.Label, item.Detail)
			case doctor.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			case doctor.StatusFail:
				p.FailItem(item.Label, item.Detail)
			}
		}

		p.Printf("")
	}

	p.Printf("Summary: %d passed, %d warnings, %d failed",
		report.Summary.Passed, report.Summary.Warned, report.Summary.Failed)

	if !report.Healthy {
		return cli.Exit("", 1)
	}

	return nil
}
