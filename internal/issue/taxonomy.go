// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the typed errors below, for errors.Is checks.
var (
	// ErrPrecondition is the sentinel wrapped by PreconditionError.
	ErrPrecondition = errors.New("precondition not met")
	// ErrDiscovery is the sentinel wrapped by DiscoveryError.
	ErrDiscovery = errors.New("target discovery failed")
)

type (
	// PreconditionError is returned when a required marker file or
	// directory is absent. The command aborts before launching any
	// external tool.
	PreconditionError struct {
		// Resource is the missing file or directory.
		Resource string
		// Hint suggests how to create the missing resource (optional).
		Hint string
	}

	// DiscoveryError is returned when the runtimes directory is missing
	// or not a directory. An empty directory is not a DiscoveryError:
	// zero targets is a valid (if unusual) state, a wrong path is not.
	DiscoveryError struct {
		// Root is the directory that failed to list.
		Root string
		// Cause is the underlying filesystem error (optional).
		Cause error
	}
)

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("required file not found: %s", e.Resource)
}

// Unwrap returns ErrPrecondition for errors.Is detection.
func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// Error implements the error interface.
func (e *DiscoveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot list runtimes directory %s: %v", e.Root, e.Cause)
	}
	return fmt.Sprintf("cannot list runtimes directory %s", e.Root)
}

// Unwrap returns ErrDiscovery for errors.Is detection. The filesystem
// cause is intentionally not part of the Is chain; match on ErrDiscovery
// and inspect Cause directly when needed.
func (e *DiscoveryError) Unwrap() error { return ErrDiscovery }
