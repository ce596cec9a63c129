// SPDX-License-Identifier: MPL-2.0

// Package invoke provides the process-runner primitive: a fully resolved
// external tool call (executable, arguments, working directory) and a
// Runner that executes it with inherited standard streams.
//
// Child output is never captured or buffered; a developer watching a
// build sees the tool's output live. A non-zero exit is always a
// failure, and a failed invocation is never re-run.
package invoke
