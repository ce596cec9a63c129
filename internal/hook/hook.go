// SPDX-License-Identifier: MPL-2.0

// Package hook runs the optional pre/post shell hooks configured per
// command group. Hooks execute with an embedded POSIX shell interpreter
// rather than the system shell, so a hook behaves identically on every
// developer machine regardless of the login shell.
package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// Runner executes hook scripts with inherited standard streams.
	Runner struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// FailedError reports a hook that exited non-zero. A failing
	// pre-hook aborts the command before any invocation runs, same
	// short-circuit policy as the invocation sequence itself.
	FailedError struct {
		Name     string
		ExitCode int
		Cause    error
	}
)

// Error implements the error interface.
func (e *FailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("hook %s failed: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("hook %s failed with exit status %d", e.Name, e.ExitCode)
}

// Unwrap returns the underlying interpreter error, if any.
func (e *FailedError) Unwrap() error { return e.Cause }

// NewRunner creates a Runner bound to the process's own streams.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run parses and executes one hook script in dir. name identifies the
// hook ("pre_build", "post_test", ...) in error messages. A non-zero
// exit of the script becomes a *FailedError.
func (r *Runner) Run(ctx context.Context, name, script, dir string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return &FailedError{Name: name, ExitCode: 1, Cause: fmt.Errorf("syntax error: %w", err)}
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(r.Stdin, r.Stdout, r.Stderr),
	)
	if err != nil {
		return &FailedError{Name: name, ExitCode: 1, Cause: fmt.Errorf("failed to create interpreter: %w", err)}
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &FailedError{Name: name, ExitCode: int(exitStatus)}
		}
		return &FailedError{Name: name, ExitCode: 1, Cause: err}
	}

	return nil
}
