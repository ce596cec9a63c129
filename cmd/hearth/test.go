// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"hearth-cli/internal/task"

	"github.com/spf13/cobra"
)

var (
	// testCmd is the parent command for the test suites.
	testCmd = &cobra.Command{
		Use:   "test",
		Short: "Run tests",
	}

	testAllCmd = &cobra.Command{
		Use:   "all",
		Short: "Run the workspace suite, then each runtime's suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "test", func(ctx context.Context, tc *task.Context) error {
				return tc.TestAll(ctx)
			})
		},
	}

	testUnitCmd = &cobra.Command{
		Use:   "unit",
		Short: "Run workspace unit tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "test", func(ctx context.Context, tc *task.Context) error {
				return tc.TestUnit(ctx)
			})
		},
	}

	testRuntimesCmd = &cobra.Command{
		Use:   "runtimes",
		Short: "Run each runtime's tests individually",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "test", func(ctx context.Context, tc *task.Context) error {
				return tc.TestRuntimes(ctx)
			})
		},
	}

	testIntegrationCmd = &cobra.Command{
		Use:   "integration",
		Short: "Run only explicitly-marked integration tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "test", func(ctx context.Context, tc *task.Context) error {
				return tc.TestIntegration(ctx)
			})
		},
	}
)

func init() {
	testCmd.AddCommand(testAllCmd)
	testCmd.AddCommand(testUnitCmd)
	testCmd.AddCommand(testRuntimesCmd)
	testCmd.AddCommand(testIntegrationCmd)
}
