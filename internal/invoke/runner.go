// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Runner executes one external command and reports its outcome.
// The OS-backed implementation is OSRunner; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, inv Invocation) Result
}

// OSRunner runs invocations as real child processes with the parent's
// standard streams, so tool output is visible live rather than captured.
type OSRunner struct {
	// Stdin, Stdout, Stderr default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger, when non-nil, logs each command line before it runs.
	Logger *log.Logger
}

// NewOSRunner creates an OSRunner bound to the process's own streams.
func NewOSRunner(logger *log.Logger) *OSRunner {
	return &OSRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run spawns the invocation and waits for it to terminate. A zero exit
// maps to a successful Result; a non-zero exit carries the child's exit
// code; a launch failure (e.g. executable not found) carries the error.
func (r *OSRunner) Run(ctx context.Context, inv Invocation) Result {
	if r.Logger != nil {
		r.Logger.Debug("exec", "cmd", inv.CommandLine(), "dir", inv.Dir)
	}

	cmd := exec.CommandContext(ctx, inv.Exe, inv.Args...)
	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}

	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return Result{ExitCode: ExitCode(exitErr.ExitCode())}
		}
		return Result{ExitCode: 1, Err: fmt.Errorf("failed to launch %s: %w", inv.Exe, err)}
	}

	return Result{}
}

func (r *OSRunner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *OSRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *OSRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
