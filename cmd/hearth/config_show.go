// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"sort"

	"hearth-cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	// configCmd is the parent command for configuration operations.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the hearth configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration and its source",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			root, err := resolveRoot()
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}

			cfg, path, err := config.Load(root)
			if err != nil {
				reportError(err)
				return &ExitError{Code: 1}
			}

			source := path
			if source == "" {
				source = "built-in defaults"
			}
			fmt.Fprintln(stdout, TitleStyle.Render("hearth configuration"))
			fmt.Fprintln(stdout, SubtitleStyle.Render("source: ")+source)
			fmt.Fprintln(stdout)
			fmt.Fprintf(stdout, "workspace.runtimes_dir  %s\n", cfg.Workspace.RuntimesDir)
			fmt.Fprintf(stdout, "workspace.docs_dir      %s\n", cfg.Workspace.DocsDir)
			fmt.Fprintf(stdout, "workspace.wasm_target   %s\n", cfg.Workspace.WasmTarget)
			fmt.Fprintf(stdout, "tools.cargo             %s\n", cfg.Tools.Cargo)
			fmt.Fprintf(stdout, "tools.mdbook            %s\n", cfg.Tools.Mdbook)
			fmt.Fprintf(stdout, "tools.flox              %s\n", cfg.Tools.Flox)
			fmt.Fprintf(stdout, "env_scope.enabled       %t\n", cfg.EnvScope.Enabled)
			fmt.Fprintf(stdout, "ui.verbose              %t\n", cfg.UI.Verbose)

			if len(cfg.Hooks) > 0 {
				names := make([]string, 0, len(cfg.Hooks))
				for name := range cfg.Hooks {
					names = append(names, name)
				}
				sort.Strings(names)
				fmt.Fprintln(stdout)
				for _, name := range names {
					fmt.Fprintf(stdout, "hooks.%s  %s\n", name, cfg.Hooks[name])
				}
			}
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
}
