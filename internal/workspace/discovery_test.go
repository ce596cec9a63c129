// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"hearth-cli/internal/issue"
	"hearth-cli/internal/testutil"
)

func names(targets []Target) []string {
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.Name)
	}
	return out
}

func TestDiscoverRuntimes(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, "alpha", "Cargo.toml"), "[package]\nname = \"rt-alpha\"\n")
	testutil.MustMkdirAll(t, filepath.Join(root, "beta")) // no manifest
	testutil.MustWriteFile(t, filepath.Join(root, "gamma", "Cargo.toml"), "[package]\nname = \"rt-gamma\"\n")
	testutil.MustWriteFile(t, filepath.Join(root, "README.md"), "not a runtime") // non-directory entry

	targets, err := DiscoverRuntimes(root)
	if err != nil {
		t.Fatalf("DiscoverRuntimes() error = %v", err)
	}

	if got, want := names(targets), []string{"alpha", "gamma"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DiscoverRuntimes() = %v, want %v", got, want)
	}
	if targets[0].Package != "rt-alpha" {
		t.Errorf("Package = %q, want rt-alpha", targets[0].Package)
	}
	if targets[0].Path != filepath.Join(root, "alpha") {
		t.Errorf("Path = %q, want %q", targets[0].Path, filepath.Join(root, "alpha"))
	}
}

func TestDiscoverRuntimesDeterministic(t *testing.T) {
	root := t.TempDir()
	// Created out of lexicographic order on purpose.
	for _, name := range []string{"zeta", "alpha", "mid"} {
		testutil.MustWriteFile(t, filepath.Join(root, name, "Cargo.toml"), "[package]\nname = \""+name+"\"\n")
	}

	first, err := DiscoverRuntimes(root)
	if err != nil {
		t.Fatalf("DiscoverRuntimes() error = %v", err)
	}
	second, err := DiscoverRuntimes(root)
	if err != nil {
		t.Fatalf("DiscoverRuntimes() error = %v", err)
	}

	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(names(first), want) {
		t.Errorf("first discovery = %v, want %v", names(first), want)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated discovery differs: %v vs %v", first, second)
	}
}

func TestDiscoverRuntimesMissingRoot(t *testing.T) {
	_, err := DiscoverRuntimes(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, issue.ErrDiscovery) {
		t.Errorf("missing root should be a DiscoveryError, got %v", err)
	}
}

func TestDiscoverRuntimesRootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "runtimes")
	testutil.MustWriteFile(t, file, "plain file")

	_, err := DiscoverRuntimes(file)
	if !errors.Is(err, issue.ErrDiscovery) {
		t.Errorf("non-directory root should be a DiscoveryError, got %v", err)
	}
}

func TestDiscoverRuntimesMalformedManifest(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, "broken", "Cargo.toml"), "not [valid toml")

	targets, err := DiscoverRuntimes(root)
	if err != nil {
		t.Fatalf("DiscoverRuntimes() error = %v", err)
	}
	if len(targets) != 1 || targets[0].Package != "broken" {
		t.Errorf("malformed manifest should fall back to directory name, got %+v", targets)
	}
}

func TestDiscoverRuntimesEmptyRoot(t *testing.T) {
	targets, err := DiscoverRuntimes(t.TempDir())
	if err != nil {
		t.Fatalf("an empty runtimes directory is not an error, got %v", err)
	}
	if len(targets) != 0 {
		t.Errorf("expected no targets, got %v", names(targets))
	}
}
