// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"hearth-cli/internal/task"

	"github.com/spf13/cobra"
)

var (
	// buildRelease flips debug/release mode for both build subcommands.
	buildRelease bool

	// buildCmd is the parent command for build operations.
	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build the project",
	}

	buildWorkspaceCmd = &cobra.Command{
		Use:   "workspace",
		Short: "Build all workspace crates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "build", func(ctx context.Context, tc *task.Context) error {
				return tc.BuildWorkspace(ctx, buildRelease)
			})
		},
	}

	buildRuntimesCmd = &cobra.Command{
		Use:   "runtimes",
		Short: "Cross-compile each runtime to the WASM target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "build", func(ctx context.Context, tc *task.Context) error {
				return tc.BuildRuntimes(ctx, buildRelease)
			})
		},
	}
)

func init() {
	buildCmd.PersistentFlags().BoolVar(&buildRelease, "release", false, "build in release mode")
	buildCmd.AddCommand(buildWorkspaceCmd)
	buildCmd.AddCommand(buildRuntimesCmd)
}
