// SPDX-License-Identifier: MPL-2.0

package task

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"hearth-cli/internal/config"
	"hearth-cli/internal/envscope"
	"hearth-cli/internal/invoke"
	"hearth-cli/internal/workspace"
)

// Context carries everything one top-level command execution needs:
// the resolved configuration, the workspace root, the process runner,
// and the already-acquired environment scope. It is constructed per
// command and discarded with it.
type Context struct {
	Cfg    *config.Config
	Root   string
	Runner invoke.Runner
	Scope  envscope.Scope

	// Out receives progress markers; defaults to os.Stdout.
	Out io.Writer
}

// RunSequence executes invocations strictly in order, each wrapped in
// the environment scope, stopping at the first failure. The returned
// failure carries the unwrapped invocation identity: the developer
// cares that the lint failed, not that the activation wrapper around
// it did.
func (c *Context) RunSequence(ctx context.Context, invs ...invoke.Invocation) error {
	for _, inv := range invs {
		res := c.Runner.Run(ctx, c.Scope.Wrap(inv))
		if !res.Ok() {
			return invoke.FailureOf(inv, res)
		}
	}
	return nil
}

// RuntimesDir returns the absolute runtimes directory for this workspace.
func (c *Context) RuntimesDir() string {
	return filepath.Join(c.Root, c.Cfg.Workspace.RuntimesDir)
}

// DocsDir returns the absolute documentation directory for this workspace.
func (c *Context) DocsDir() string {
	return filepath.Join(c.Root, c.Cfg.Workspace.DocsDir)
}

func (c *Context) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// forEachRuntime discovers the runtimes and applies one builder-backed
// invocation per target, in lexicographic order, short-circuiting on
// the first failure.
func (c *Context) forEachRuntime(ctx context.Context, verb string, build func(workspace.Target) invoke.Invocation) error {
	targets, err := workspace.DiscoverRuntimes(c.RuntimesDir())
	if err != nil {
		return err
	}

	opts := workspace.IterateOptions{Verb: verb, Out: c.out()}
	return workspace.ForEach(targets, opts, func(target workspace.Target) error {
		return c.RunSequence(ctx, build(target))
	})
}
