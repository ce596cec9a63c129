// SPDX-License-Identifier: MPL-2.0

package envscope

import "hearth-cli/internal/invoke"

type (
	// Recorder is a Guard test double that counts acquisitions and
	// releases so tests can assert the scope is entered and released
	// exactly once per command, on every exit path.
	Recorder struct {
		Enters   int
		Releases int
		Roots    []string
	}

	recorderScope struct {
		guard *Recorder
	}
)

// Enter records the acquisition and returns a pass-through scope.
func (r *Recorder) Enter(root string) (Scope, error) {
	r.Enters++
	r.Roots = append(r.Roots, root)
	return &recorderScope{guard: r}, nil
}

func (s *recorderScope) Wrap(inv invoke.Invocation) invoke.Invocation { return inv }

func (s *recorderScope) Close() error {
	s.guard.Releases++
	return nil
}
