package watch

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hay-kot/discli/internal/core/config"
	"github.com/hay-kot/discli/internal/styles"
	"github.com/hay-kot/discli/pkg/executil"
	"github.com/hay-kot/discli/pkg/tmpl"
)

// HookRunner executes configured commands for matching messages.
type HookRunner struct {
	log      zerolog.Logger
	executor executil.Executor
	stdout   io.Writer
	stderr   io.Writer
}

// NewHookRunner creates a new HookRunner.
func NewHookRunner(log zerolog.Logger, executor executil.Executor, stdout, stderr io.Writer) *HookRunner {
	return &HookRunner{
		log:      log,
		executor: executor,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// RunHooks executes every hook whose pattern matches the message content.
// It stops at the first failing command.
func (h *HookRunner) RunHooks(ctx context.Context, hooks []config.Hook, data config.MessageTemplateData) error {
	h.log.Debug().
		Str("message_id", data.ID).
		Int("hook_count", len(hooks)).
		Msg("evaluating hooks")

	env := Env(data)

	hookNum := 0
	for _, hook := range hooks {
		matched, err := matchPattern(hook.Pattern, data.Content)
		if err != nil {
			return fmt.Errorf("match pattern %q: %w", hook.Pattern, err)
		}

		if !matched {
			continue
		}

		hookNum++

		h.log.Debug().
			Str("pattern", hook.Pattern).
			Str("message_id", data.ID).
			Strs("commands", hook.Commands).
			Msg("running hook")

		for i, cmdTmpl := range hook.Commands {
			cmd, err := tmpl.Render(cmdTmpl, data)
			if err != nil {
				return fmt.Errorf("render hook %q command %d: %w", hook.Pattern, i, err)
			}

			h.printCommandHeader(hookNum, i+1, len(hook.Commands), cmd)

			if err := h.executor.RunStream(ctx, env, h.stdout, h.stderr, "sh", "-c", cmd); err != nil {
				return fmt.Errorf("run hook %q command %q: %w", hook.Pattern, cmd, err)
			}
		}
	}

	return nil
}

// printCommandHeader prints a styled header for a hook command.
func (h *HookRunner) printCommandHeader(hookNum, cmdNum, totalCmds int, cmd string) {
	divider := styles.DividerStyle.Render(strings.Repeat("─", 50))
	header := styles.CommandHeaderStyle.Render(fmt.Sprintf("hook %d", hookNum))
	cmdLabel := styles.DividerStyle.Render(fmt.Sprintf("[%d/%d]", cmdNum, totalCmds))
	command := styles.CommandStyle.Render(cmd)

	_, _ = fmt.Fprintln(h.stdout, divider)
	_, _ = fmt.Fprintf(h.stdout, "%s %s %s\n", header, cmdLabel, command)
	_, _ = fmt.Fprintln(h.stdout, divider)
}

// matchPattern checks if content matches the regex pattern.
// Empty pattern matches everything.
func matchPattern(pattern, content string) (bool, error) {
	if pattern == "" {
		return true, nil
	}
	return regexp.MatchString(pattern, content)
}
