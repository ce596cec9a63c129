// SPDX-License-Identifier: MPL-2.0

// Package config loads the hearth configuration: built-in defaults,
// overlaid with the user config file ($XDG_CONFIG_HOME/hearth/config.cue
// or the platform equivalent), overlaid with the workspace-local
// .hearth.cue. Config files are CUE, validated against an embedded
// schema before they are merged into viper.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"hearth-cli/internal/issue"
	"hearth-cli/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "hearth"
	// WorkspaceFileName is the workspace-local config file name.
	WorkspaceFileName = ".hearth.cue"
	// schemaPath is the root definition in the embedded schema.
	schemaPath = "#Config"
)

//go:embed config_schema.cue
var configSchema string

// filePathOverride is set via the --config flag; it replaces the whole
// lookup chain.
var filePathOverride string

// SetFilePathOverride makes Load read exclusively from path.
func SetFilePathOverride(path string) {
	filePathOverride = path
}

// Dir returns the hearth user configuration directory using
// platform-specific conventions: %APPDATA% on Windows, Application
// Support on macOS, $XDG_CONFIG_HOME (default ~/.config) elsewhere.
func Dir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration for a workspace root. It returns the
// config, the path of the last config file merged (empty when running on
// pure defaults), and an error on unreadable or schema-invalid files.
// A missing config file is not an error.
func Load(workspaceRoot string) (*Config, string, error) {
	v := viper.New()
	setDefaults(v)

	if filePathOverride != "" {
		if !fileExists(filePathOverride) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(filePathOverride).
				WithSuggestion("Verify the file path is correct").
				Wrap(fmt.Errorf("config file not found")).
				BuildError()
		}
		if err := mergeCUEFile(v, filePathOverride); err != nil {
			return nil, "", err
		}
		return unmarshal(v, filePathOverride)
	}

	resolvedPath := ""

	// User config first, so the workspace file wins on conflicts.
	if cfgDir, err := Dir(); err == nil {
		userPath := filepath.Join(cfgDir, "config.cue")
		if fileExists(userPath) {
			if err := mergeCUEFile(v, userPath); err != nil {
				return nil, "", err
			}
			resolvedPath = userPath
		}
	}

	workspacePath := filepath.Join(workspaceRoot, WorkspaceFileName)
	if fileExists(workspacePath) {
		if err := mergeCUEFile(v, workspacePath); err != nil {
			return nil, "", err
		}
		resolvedPath = workspacePath
	}

	return unmarshal(v, resolvedPath)
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("workspace.runtimes_dir", defaults.Workspace.RuntimesDir)
	v.SetDefault("workspace.docs_dir", defaults.Workspace.DocsDir)
	v.SetDefault("workspace.wasm_target", defaults.Workspace.WasmTarget)
	v.SetDefault("tools.cargo", defaults.Tools.Cargo)
	v.SetDefault("tools.mdbook", defaults.Tools.Mdbook)
	v.SetDefault("tools.flox", defaults.Tools.Flox)
	v.SetDefault("env_scope.enabled", defaults.EnvScope.Enabled)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("hooks", defaults.Hooks)
}

// mergeCUEFile parses a CUE file, validates it against the embedded
// schema, and merges its contents into viper.
func mergeCUEFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	values, err := cueutil.UnifyIntoMap(configSchema, data, schemaPath, path)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid CUE syntax").
			WithSuggestion("Verify the values match the configuration schema").
			Wrap(err).
			BuildError()
	}

	return v.MergeConfigMap(values)
}

func unmarshal(v *viper.Viper, resolvedPath string) (*Config, string, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, resolvedPath, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
