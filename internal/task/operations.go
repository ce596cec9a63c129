// SPDX-License-Identifier: MPL-2.0

package task

import (
	"context"

	"hearth-cli/internal/invoke"
	"hearth-cli/internal/workspace"
)

// BuildWorkspace builds all workspace crates.
func (c *Context) BuildWorkspace(ctx context.Context, release bool) error {
	return c.RunSequence(ctx, BuildWorkspace(c.Cfg, c.Root, release))
}

// BuildRuntimes cross-compiles each discovered runtime in order.
func (c *Context) BuildRuntimes(ctx context.Context, release bool) error {
	return c.forEachRuntime(ctx, "Building", func(target workspace.Target) invoke.Invocation {
		return BuildRuntime(c.Cfg, target, release)
	})
}

// CheckAll runs format, lint, and the workspace check in that fixed
// order, each gated on the previous one succeeding.
func (c *Context) CheckAll(ctx context.Context, checkOnly bool) error {
	apply := !checkOnly
	return c.RunSequence(ctx,
		Fmt(c.Cfg, c.Root, apply),
		Clippy(c.Cfg, c.Root, apply),
		CheckWorkspace(c.Cfg, c.Root),
	)
}

// CheckWorkspace type-checks the workspace.
func (c *Context) CheckWorkspace(ctx context.Context) error {
	return c.RunSequence(ctx, CheckWorkspace(c.Cfg, c.Root))
}

// Fmt formats the workspace, or verifies only when checkOnly is set.
func (c *Context) Fmt(ctx context.Context, checkOnly bool) error {
	return c.RunSequence(ctx, Fmt(c.Cfg, c.Root, !checkOnly))
}

// Clippy lints the workspace, or verifies only when checkOnly is set.
func (c *Context) Clippy(ctx context.Context, checkOnly bool) error {
	return c.RunSequence(ctx, Clippy(c.Cfg, c.Root, !checkOnly))
}

// TestAll runs the workspace unit suite, then each runtime's suite.
// A unit failure skips the runtime suites entirely.
func (c *Context) TestAll(ctx context.Context) error {
	if err := c.TestUnit(ctx); err != nil {
		return err
	}
	return c.TestRuntimes(ctx)
}

// TestUnit runs the workspace unit tests.
func (c *Context) TestUnit(ctx context.Context) error {
	return c.RunSequence(ctx, UnitTests(c.Cfg, c.Root))
}

// TestRuntimes runs each discovered runtime's test suite in order.
func (c *Context) TestRuntimes(ctx context.Context) error {
	return c.forEachRuntime(ctx, "Testing", func(target workspace.Target) invoke.Invocation {
		return RuntimeTests(c.Cfg, target)
	})
}

// TestIntegration runs only the explicitly marked integration tests.
func (c *Context) TestIntegration(ctx context.Context) error {
	return c.RunSequence(ctx, IntegrationTests(c.Cfg, c.Root))
}
