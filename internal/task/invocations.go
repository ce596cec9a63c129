// SPDX-License-Identifier: MPL-2.0

package task

import (
	"hearth-cli/internal/config"
	"hearth-cli/internal/invoke"
	"hearth-cli/internal/workspace"
)

// BuildWorkspace compiles every workspace crate.
func BuildWorkspace(cfg *config.Config, root string, release bool) invoke.Invocation {
	args := []string{"build", "--workspace"}
	if release {
		args = append(args, "--release")
	}
	return invoke.Invocation{
		Label: "build workspace",
		Exe:   cfg.Tools.Cargo,
		Args:  args,
		Dir:   root,
	}
}

// BuildRuntime cross-compiles one runtime to the configured WASM target,
// with the runtime directory as the working directory.
func BuildRuntime(cfg *config.Config, target workspace.Target, release bool) invoke.Invocation {
	args := []string{"build", "--target", cfg.Workspace.WasmTarget}
	if release {
		args = append(args, "--release")
	}
	return invoke.Invocation{
		Label: "build runtime " + target.Name,
		Exe:   cfg.Tools.Cargo,
		Args:  args,
		Dir:   target.Path,
	}
}

// Fmt formats the workspace, or verifies formatting when apply is false.
// The two modes differ only in the trailing --check; everything else is
// the same argument vector, so they cannot drift.
func Fmt(cfg *config.Config, root string, apply bool) invoke.Invocation {
	args := []string{"fmt", "--all"}
	if !apply {
		args = append(args, "--", "--check")
	}
	return invoke.Invocation{
		Label: "format",
		Exe:   cfg.Tools.Cargo,
		Args:  args,
		Dir:   root,
	}
}

// Clippy lints the workspace, auto-fixing when apply is true. Warnings
// are denied in both modes.
func Clippy(cfg *config.Config, root string, apply bool) invoke.Invocation {
	args := []string{"clippy", "--workspace"}
	if apply {
		args = append(args, "--fix", "--allow-dirty")
	}
	args = append(args, "--", "-D", "warnings")
	return invoke.Invocation{
		Label: "lint",
		Exe:   cfg.Tools.Cargo,
		Args:  args,
		Dir:   root,
	}
}

// CheckWorkspace type-checks the whole workspace.
func CheckWorkspace(cfg *config.Config, root string) invoke.Invocation {
	return invoke.Invocation{
		Label: "workspace check",
		Exe:   cfg.Tools.Cargo,
		Args:  []string{"check", "--workspace"},
		Dir:   root,
	}
}

// UnitTests runs the workspace test suite single-threaded.
func UnitTests(cfg *config.Config, root string) invoke.Invocation {
	return invoke.Invocation{
		Label: "unit tests",
		Exe:   cfg.Tools.Cargo,
		Args:  []string{"test", "--workspace", "--", "--test-threads=1"},
		Dir:   root,
	}
}

// RuntimeTests runs one runtime's test suite in its own directory, with
// the test tool's default parallelism.
func RuntimeTests(cfg *config.Config, target workspace.Target) invoke.Invocation {
	return invoke.Invocation{
		Label: "test runtime " + target.Name,
		Exe:   cfg.Tools.Cargo,
		Args:  []string{"test"},
		Dir:   target.Path,
	}
}

// IntegrationTests runs only the explicitly marked (ignored) tests,
// single-threaded.
func IntegrationTests(cfg *config.Config, root string) invoke.Invocation {
	return invoke.Invocation{
		Label: "integration tests",
		Exe:   cfg.Tools.Cargo,
		Args:  []string{"test", "--workspace", "--", "--ignored", "--test-threads=1"},
		Dir:   root,
	}
}
