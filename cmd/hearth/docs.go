// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"hearth-cli/internal/docs"
	"hearth-cli/internal/task"

	"github.com/spf13/cobra"
)

var (
	// docsPort is the port for the live-reload server.
	docsPort string

	// docsCmd is the parent command for documentation operations.
	docsCmd = &cobra.Command{
		Use:   "docs",
		Short: "Build, serve, and preview the documentation",
	}

	docsBuildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build the documentation site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "docs", func(ctx context.Context, tc *task.Context) error {
				book, err := docs.CheckPrecondition(tc.DocsDir())
				if err != nil {
					return err
				}
				if err := tc.RunSequence(ctx, docs.Build(tc.Cfg, tc.DocsDir())); err != nil {
					return err
				}
				fmt.Fprintln(stdout, SuccessStyle.Render("Documentation built: ")+book.Title)
				return nil
			})
		},
	}

	docsServeCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation locally with live reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, "docs", func(ctx context.Context, tc *task.Context) error {
				if _, err := docs.CheckPrecondition(tc.DocsDir()); err != nil {
					return err
				}
				return tc.RunSequence(ctx, docs.Serve(tc.Cfg, tc.DocsDir(), docsPort))
			})
		},
	}

	docsPreviewCmd = &cobra.Command{
		Use:   "preview [page]",
		Short: "Render a documentation page in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := ""
			if len(args) > 0 {
				page = args[0]
			}
			return runLocal(cmd, "docs", func(_ context.Context, tc *task.Context) error {
				return docs.Preview(tc.DocsDir(), page, stdout)
			})
		},
	}
)

func init() {
	docsServeCmd.Flags().StringVarP(&docsPort, "port", "p", "3000", "port to serve on")
	docsCmd.AddCommand(docsBuildCmd)
	docsCmd.AddCommand(docsServeCmd)
	docsCmd.AddCommand(docsPreviewCmd)
}
