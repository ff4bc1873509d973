package execx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Cmd describes one subprocess invocation. Args are passed as discrete argv
// elements; nothing is ever handed to a shell.
type Cmd struct {
	Path string
	Args []string
	Env  map[string]string // additional env vars
	Dir  string            // working directory
}

// Runner executes a command to completion and returns its stdout.
type Runner interface {
	Run(ctx context.Context, c Cmd) (string, error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, c Cmd) (string, error)

func (f RunnerFunc) Run(ctx context.Context, c Cmd) (string, error) { return f(ctx, c) }

// RunError reports a failed or non-zero exit, carrying captured output.
type RunError struct {
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

// Error mirrors the "Command failed" shape editors show for child processes:
// the command line, then whatever the process wrote to stderr (or stdout).
func (e *RunError) Error() string {
	msg := fmt.Sprintf("Command failed: %s", strings.Join(e.Args, " "))
	detail := e.Stderr
	if strings.TrimSpace(detail) == "" {
		detail = e.Stdout
	}
	if strings.TrimSpace(detail) == "" {
		return msg + ": " + e.Err.Error()
	}
	return msg + "\n" + detail
}

func (e *RunError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run starts c and waits for it. There is no implicit timeout; callers bound
// the run through ctx.
func (ExecRunner) Run(ctx context.Context, c Cmd) (string, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	// inherit environment
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w (%v)", ctx.Err(), err)
		}
		return stdout.String(), &RunError{Args: cmd.Args, Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}
