// Package executil provides shell execution utilities.
package executil

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor runs shell commands.
type Executor interface {
	// RunStream executes a command with extra environment variables and
	// streams stdout/stderr to the provided writers.
	RunStream(ctx context.Context, env []string, stdout, stderr io.Writer, cmd string, args ...string) error
}

// RealExecutor calls actual shell commands.
type RealExecutor struct{}

// RunStream executes a command with env appended to the current environment.
func (e *RealExecutor) RunStream(ctx context.Context, env []string, stdout, stderr io.Writer, cmd string, args ...string) error {
	c := exec.CommandContext(ctx, cmd, args...)
	c.Env = append(os.Environ(), env...)
	c.Stdout = stdout
	c.Stderr = stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("exec %s: %w", cmd, err)
	}
	return nil
}
