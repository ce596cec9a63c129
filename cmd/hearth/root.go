// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for hearth.
package cmd

import (
	"context"
	"errors"
	"os"

	"hearth-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// directory runs the command as if started from this workspace root
	directory string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "hearth",
		Short: "Task orchestrator for the workspace and its WASM runtimes",
		Long: TitleStyle.Render("hearth") + SubtitleStyle.Render(" - workspace task orchestrator") + `

hearth drives the multi-crate build for the host workspace and its
runtime sub-projects, each cross-compiled to a WASM target. Every
external tool runs inside a flox-activated environment, and a failing
step stops the whole command immediately.

` + SubtitleStyle.Render("Examples:") + `
  hearth build workspace --release    Build all workspace crates
  hearth build runtimes               Cross-compile each runtime
  hearth check all --check-only       Verify fmt, lints, and types
  hearth test all                     Unit suite, then runtime suites
  hearth docs serve --port 8000       Serve the docs with live reload`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .hearth.cue in the workspace root)")
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "C", "", "workspace root (default is the current directory)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig wires the --config flag into the config loader.
func initRootConfig() {
	if cfgFile != "" {
		config.SetFilePathOverride(cfgFile)
	}
}
