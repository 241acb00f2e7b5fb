package executil

import (
	"context"
	"io"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Env  []string
	Cmd  string
	Args []string
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps the last argument (the script for `sh -c`) to the
	// output written to stdout.
	Outputs map[string][]byte

	// Errors maps the last argument to the error returned.
	Errors map[string]error
}

// RunStream records the command and writes configured output to stdout.
func (e *RecordingExecutor) RunStream(ctx context.Context, env []string, stdout, stderr io.Writer, cmd string, args ...string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Env:  env,
		Cmd:  cmd,
		Args: args,
	})

	key := cmd
	if len(args) > 0 {
		key = args[len(args)-1]
	}

	if out := e.Outputs[key]; stdout != nil && len(out) > 0 {
		_, _ = stdout.Write(out)
	}

	return e.Errors[key]
}

// Recorded returns a copy of the commands run so far.
func (e *RecordingExecutor) Recorded() []RecordedCommand {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]RecordedCommand(nil), e.Commands...)
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
