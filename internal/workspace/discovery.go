// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"os"
	"path/filepath"

	"hearth-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFileName is the build-manifest marker a directory must contain
// to count as a buildable runtime.
const ManifestFileName = "Cargo.toml"

type (
	// Target is one discovered runtime sub-project.
	Target struct {
		// Name is the directory name, used for ordering and progress output.
		Name string
		// Path is the absolute path to the runtime directory.
		Path string
		// Package is the package name declared in the manifest, shown
		// in progress markers. Falls back to Name when the manifest
		// cannot be read.
		Package string
	}

	// cargoManifest is the subset of the build manifest discovery reads.
	cargoManifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
)

// DiscoverRuntimes lists the immediate children of root and returns the
// buildable ones in lexicographic order by directory name.
//
// A missing or non-directory root is a *issue.DiscoveryError rather than
// an empty result: zero targets is ambiguous between "no runtimes yet"
// and "wrong path", and the wrong path must not look like success.
func DiscoverRuntimes(root string) ([]Target, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &issue.DiscoveryError{Root: root, Cause: err}
	}
	if !info.IsDir() {
		return nil, &issue.DiscoveryError{Root: root}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &issue.DiscoveryError{Root: root, Cause: err}
	}

	// os.ReadDir returns entries sorted by name, which is exactly the
	// deterministic order the iterator needs.
	var targets []Target
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		manifest := filepath.Join(path, ManifestFileName)
		if _, err := os.Stat(manifest); err != nil {
			continue
		}
		targets = append(targets, Target{
			Name:    entry.Name(),
			Path:    path,
			Package: packageName(manifest, entry.Name()),
		})
	}

	return targets, nil
}

// packageName reads the package name from a manifest, falling back to
// the directory name. A malformed manifest is not fatal here; the build
// tool itself will report it far better than discovery could.
func packageName(manifestPath, fallback string) string {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fallback
	}
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil || m.Package.Name == "" {
		return fallback
	}
	return m.Package.Name
}
