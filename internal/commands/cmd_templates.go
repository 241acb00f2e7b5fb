package commands

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/discli/internal/core/config"
	"github.com/hay-kot/discli/internal/printer"
)

type TemplatesCmd struct {
	flags *Flags
}

// NewTemplatesCmd creates a new templates command.
func NewTemplatesCmd(flags *Flags) *TemplatesCmd {
	return &TemplatesCmd{flags: flags}
}

// Register adds the templates command to the application.
func (cmd *TemplatesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "templates",
		Usage:     "List configured message templates",
		UsageText: "discli templates",
		Description: `Lists the message templates defined under 'templates' in the config file
with their fields. Send one with 'discli send -t NAME --set field=value'.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *TemplatesCmd) run(ctx context.Context, c *cli.Command) error {
	tmpls := cmd.flags.Config.Templates
	if len(tmpls) == 0 {
		printer.Ctx(ctx).Infof("No templates configured in %s", cmd.flags.ConfigPath)
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tFIELDS\tDESCRIPTION")

	for _, name := range slices.Sorted(maps.Keys(tmpls)) {
		t := tmpls[name]
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, describeFields(t.Fields), t.Description)
	}

	return w.Flush()
}

func describeFields(fields []config.TemplateField) string {
	if len(fields) == 0 {
		return "-"
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		part := f.Name
		if f.Type == config.FieldTypeSelect {
			part += "(" + strings.Join(f.Options, "|") + ")"
		}
		if f.Required {
			part += "*"
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}
