// SPDX-License-Identifier: MPL-2.0

// Package workspace discovers the runtime sub-projects of the host
// workspace and iterates operations over them.
//
// A runtime is an immediate child directory of the runtimes root that
// contains a Cargo.toml at its top level. Discovery is performed fresh
// on every command that needs it (the tree may change between runs) and
// returns targets in lexicographic order so build and test output is
// reproducible across runs and machines.
package workspace
