// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"hearth-cli/internal/task"

	"github.com/spf13/cobra"
)

var (
	// checkOnly switches the formatting/linting commands from
	// auto-fixing to verify-only.
	checkOnly bool

	// checkCmd is the parent command for code quality checks.
	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Code quality checks",
	}

	checkAllCmd = &cobra.Command{
		Use:   "all",
		Short: "Run fmt, clippy, and the workspace check (auto-fixing by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "check", func(ctx context.Context, tc *task.Context) error {
				return tc.CheckAll(ctx, checkOnly)
			})
		},
	}

	checkWorkspaceCmd = &cobra.Command{
		Use:   "workspace",
		Short: "Type-check the whole workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "check", func(ctx context.Context, tc *task.Context) error {
				return tc.CheckWorkspace(ctx)
			})
		},
	}

	checkFmtCmd = &cobra.Command{
		Use:   "fmt",
		Short: "Format code (auto-fixing by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "check", func(ctx context.Context, tc *task.Context) error {
				return tc.Fmt(ctx, checkOnly)
			})
		},
	}

	checkClippyCmd = &cobra.Command{
		Use:   "clippy",
		Short: "Run clippy lints (auto-fixing by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "check", func(ctx context.Context, tc *task.Context) error {
				return tc.Clippy(ctx, checkOnly)
			})
		},
	}
)

func init() {
	checkCmd.PersistentFlags().BoolVar(&checkOnly, "check-only", false, "only check, don't fix")
	checkCmd.AddCommand(checkAllCmd)
	checkCmd.AddCommand(checkWorkspaceCmd)
	checkCmd.AddCommand(checkFmtCmd)
	checkCmd.AddCommand(checkClippyCmd)
}
