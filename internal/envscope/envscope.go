// SPDX-License-Identifier: MPL-2.0

// Package envscope provides the scoped environment guard: every external
// tool a command runs executes inside a reproducible, activated
// environment (flox), acquired once per top-level command and released
// exactly once on every exit path.
//
// The guard does not hold a long-lived child process. Activation is
// applied per invocation by wrapping the command line in
// `flox activate -d <root> --`, which is how flox scopes an environment
// to a single command. Enter verifies the activation tool up front so a
// missing environment fails before any work starts.
package envscope

import (
	"fmt"
	"os/exec"

	"hearth-cli/internal/invoke"
	"hearth-cli/internal/issue"
)

type (
	// Guard acquires an environment scope for a workspace root.
	Guard interface {
		Enter(root string) (Scope, error)
	}

	// Scope is an acquired environment. Wrap routes an invocation
	// through the activated environment; Close releases the scope and
	// must be called exactly once, via defer at the acquisition site.
	Scope interface {
		Wrap(inv invoke.Invocation) invoke.Invocation
		Close() error
	}

	// FloxGuard activates a flox environment rooted at the workspace.
	FloxGuard struct {
		// Exe is the activation tool; defaults to "flox".
		Exe string

		// lookPath is swapped in tests.
		lookPath func(string) (string, error)
	}

	floxScope struct {
		exe    string
		root   string
		closed bool
	}

	// NopGuard satisfies Guard without activating anything, for
	// configurations with the environment scope disabled.
	NopGuard struct{}

	nopScope struct {
		closed bool
	}
)

// NewFloxGuard creates a FloxGuard using the given activation tool name.
func NewFloxGuard(exe string) *FloxGuard {
	if exe == "" {
		exe = "flox"
	}
	return &FloxGuard{Exe: exe, lookPath: exec.LookPath}
}

// Enter verifies the activation tool is available and returns a scope
// that wraps invocations in it.
func (g *FloxGuard) Enter(root string) (Scope, error) {
	look := g.lookPath
	if look == nil {
		look = exec.LookPath
	}
	if _, err := look(g.Exe); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("activate environment").
			WithResource(g.Exe).
			WithSuggestion("Install flox (https://flox.dev) or add it to PATH").
			WithSuggestion("Set env_scope.enabled to false to run tools on the bare host").
			Wrap(err).
			BuildError()
	}
	return &floxScope{exe: g.Exe, root: root}, nil
}

// Wrap prefixes the invocation with the activation command so the child
// runs inside the environment. The working directory is preserved.
func (s *floxScope) Wrap(inv invoke.Invocation) invoke.Invocation {
	wrapped := inv
	wrapped.Exe = s.exe
	wrapped.Args = append([]string{"activate", "-d", s.root, "--", inv.Exe}, inv.Args...)
	return wrapped
}

// Close releases the scope. Calling it twice is a programming error.
func (s *floxScope) Close() error {
	if s.closed {
		return fmt.Errorf("environment scope already released")
	}
	s.closed = true
	return nil
}

// Enter returns a pass-through scope.
func (NopGuard) Enter(string) (Scope, error) {
	return &nopScope{}, nil
}

func (s *nopScope) Wrap(inv invoke.Invocation) invoke.Invocation { return inv }

func (s *nopScope) Close() error {
	if s.closed {
		return fmt.Errorf("environment scope already released")
	}
	s.closed = true
	return nil
}
