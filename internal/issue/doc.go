// SPDX-License-Identifier: MPL-2.0

// Package issue defines the error taxonomy for the orchestrator and a
// small builder for user-facing errors that carry fix suggestions.
//
// The taxonomy mirrors the failure classes a task run can hit, in the
// order they can occur: a usage error (handled by the CLI layer before
// anything runs), a missing precondition, a failed target discovery, or
// an external tool exiting non-zero. All of them are fatal to the
// current command; none are retried or downgraded to partial success.
package issue
