// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the resolved orchestrator configuration.
	Config struct {
		Workspace WorkspaceConfig   `mapstructure:"workspace"`
		Tools     ToolsConfig       `mapstructure:"tools"`
		EnvScope  EnvScopeConfig    `mapstructure:"env_scope"`
		UI        UIConfig          `mapstructure:"ui"`
		Hooks     map[string]string `mapstructure:"hooks"`
	}

	// WorkspaceConfig locates the pieces of the host workspace.
	WorkspaceConfig struct {
		// RuntimesDir is the directory holding runtime sub-projects,
		// relative to the workspace root.
		RuntimesDir string `mapstructure:"runtimes_dir"`
		// DocsDir is the mdbook documentation directory, relative to
		// the workspace root.
		DocsDir string `mapstructure:"docs_dir"`
		// WasmTarget is the cross-compilation target for runtime builds.
		WasmTarget string `mapstructure:"wasm_target"`
	}

	// ToolsConfig names the external tools. Overriding these is mainly
	// useful for pinned wrappers and for tests.
	ToolsConfig struct {
		Cargo  string `mapstructure:"cargo"`
		Mdbook string `mapstructure:"mdbook"`
		Flox   string `mapstructure:"flox"`
	}

	// EnvScopeConfig controls the scoped environment guard.
	EnvScopeConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// UIConfig holds output preferences.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in configuration, matching the layout
// of the host workspace this tool was written for.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			RuntimesDir: "runtimes",
			DocsDir:     "docs",
			WasmTarget:  "wasm32-wasip1",
		},
		Tools: ToolsConfig{
			Cargo:  "cargo",
			Mdbook: "mdbook",
			Flox:   "flox",
		},
		EnvScope: EnvScopeConfig{Enabled: true},
		UI:       UIConfig{Verbose: false},
		Hooks:    map[string]string{},
	}
}
