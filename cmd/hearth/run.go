// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hearth-cli/internal/config"
	"hearth-cli/internal/envscope"
	"hearth-cli/internal/hook"
	"hearth-cli/internal/invoke"
	"hearth-cli/internal/issue"
	"hearth-cli/internal/task"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Injection points for command-level tests. Production values spawn
// real processes and activate the real environment.
var (
	newGuard = func(cfg *config.Config) envscope.Guard {
		if !cfg.EnvScope.Enabled {
			return envscope.NopGuard{}
		}
		return envscope.NewFloxGuard(cfg.Tools.Flox)
	}

	newRunner = func(logger *log.Logger) invoke.Runner {
		return invoke.NewOSRunner(logger)
	}

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// runTask is the shared entry point for every task command: it resolves
// the workspace root, loads configuration, acquires the environment
// scope for the duration of the command (released exactly once, on
// every exit path), runs the group's pre/post hooks, and maps failures
// to exit codes.
func runTask(cmd *cobra.Command, group string, action func(context.Context, *task.Context) error) error {
	return runScoped(cmd, group, newGuard, action)
}

// runLocal is runTask for commands that only render local files and
// launch no external tool. It skips environment activation, so such
// commands work even when the activation tool is absent.
func runLocal(cmd *cobra.Command, group string, action func(context.Context, *task.Context) error) error {
	return runScoped(cmd, group, func(*config.Config) envscope.Guard {
		return envscope.NopGuard{}
	}, action)
}

func runScoped(cmd *cobra.Command, group string, guardFor func(*config.Config) envscope.Guard, action func(context.Context, *task.Context) error) (err error) {
	root, err := resolveRoot()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	cfg, _, err := config.Load(root)
	if err != nil {
		reportError(err)
		return &ExitError{Code: 1}
	}

	verboseMode := verbose || cfg.UI.Verbose
	logger := newLogger(verboseMode)

	scope, err := guardFor(cfg).Enter(root)
	if err != nil {
		reportError(err)
		return &ExitError{Code: 1}
	}
	defer func() {
		if cerr := scope.Close(); cerr != nil && err == nil {
			err = &ExitError{Code: 1, Err: cerr}
		}
	}()

	tc := &task.Context{
		Cfg:    cfg,
		Root:   root,
		Runner: newRunner(logger),
		Scope:  scope,
		Out:    stdout,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	hooks := hook.NewRunner()
	if pre, ok := cfg.Hooks["pre_"+group]; ok {
		logger.Debug("running hook", "name", "pre_"+group)
		if hookErr := hooks.Run(ctx, "pre_"+group, pre, root); hookErr != nil {
			return failureExit(hookErr)
		}
	}

	if actionErr := action(ctx, tc); actionErr != nil {
		return failureExit(actionErr)
	}

	if post, ok := cfg.Hooks["post_"+group]; ok {
		logger.Debug("running hook", "name", "post_"+group)
		if hookErr := hooks.Run(ctx, "post_"+group, post, root); hookErr != nil {
			return failureExit(hookErr)
		}
	}

	return nil
}

// failureExit renders err and converts it to an ExitError. An external
// tool's own exit code propagates verbatim; precondition and discovery
// errors use a fixed code of 1.
func failureExit(err error) *ExitError {
	reportError(err)

	var invFailure *invoke.Failure
	if errors.As(err, &invFailure) {
		// A signal-killed child reports -1; never hand the shell a
		// negative (wrapped-around) status.
		code := int(invFailure.ExitCode)
		if code <= 0 {
			code = 1
		}
		return &ExitError{Code: code}
	}

	var hookFailure *hook.FailedError
	if errors.As(err, &hookFailure) {
		code := hookFailure.ExitCode
		if code <= 0 {
			code = 1
		}
		return &ExitError{Code: code}
	}

	return &ExitError{Code: 1}
}

// reportError prints err to stderr, using the actionable format (with
// suggestions) when available.
func reportError(err error) {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+ae.Format(verbose))
		return
	}
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+err.Error())
}

// resolveRoot returns the absolute workspace root, honoring --directory.
func resolveRoot() (string, error) {
	if directory != "" {
		abs, err := filepath.Abs(directory)
		if err != nil {
			return "", fmt.Errorf("failed to resolve --directory: %w", err)
		}
		info, statErr := os.Stat(abs)
		if statErr != nil || !info.IsDir() {
			return "", fmt.Errorf("--directory %s is not a directory", directory)
		}
		return abs, nil
	}
	return os.Getwd()
}

// newLogger builds the CLI logger; debug lines appear only in verbose mode.
func newLogger(verboseMode bool) *log.Logger {
	logger := log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: false,
	})
	if verboseMode {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
