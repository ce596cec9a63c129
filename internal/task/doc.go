// SPDX-License-Identifier: MPL-2.0

// Package task turns parsed flag values and discovered targets into
// ordered external tool invocations and runs them with first-failure
// termination.
//
// Invocation builders are pure functions of the configuration and flag
// values, so the apply and check-only variants of a command cannot
// drift apart: both come out of the same argument-building branch.
// Composed operations (check all, test all, per-runtime iteration) all
// share the same short-circuit policy as a plain invocation sequence.
package task
