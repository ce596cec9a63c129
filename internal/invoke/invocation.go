// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// ExitCode represents a process exit status code.
	// The zero value (0) means success.
	ExitCode int

	// Invocation is one fully resolved external tool call. It is built
	// fresh per run from flag values and discovered targets and never
	// persisted.
	Invocation struct {
		// Label identifies the invocation in progress and error output,
		// e.g. "build runtime alpha" or "cargo fmt".
		Label string
		// Exe is the executable name, resolved via PATH.
		Exe string
		// Args is the ordered argument list (without the executable).
		Args []string
		// Dir is the working directory; empty means the current directory.
		Dir string
	}

	// Result is the outcome of running one Invocation. Produced by a
	// Runner, consumed immediately by the caller to decide continuation.
	Result struct {
		// ExitCode is the child's exit status (0 on success).
		ExitCode ExitCode
		// Err is set when the process could not be launched at all,
		// as opposed to running and exiting non-zero.
		Err error
	}

	// Failure is the error form of a failed Result. It carries the
	// invocation identity so a log line can localize the cause.
	Failure struct {
		Invocation Invocation
		ExitCode   ExitCode
		Cause      error
	}
)

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// CommandLine returns the invocation as a shell-style command line for
// display. Arguments are joined verbatim; this is for humans, not for
// re-parsing.
func (i Invocation) CommandLine() string {
	if len(i.Args) == 0 {
		return i.Exe
	}
	return i.Exe + " " + strings.Join(i.Args, " ")
}

// Ok reports whether the invocation ran and exited zero.
func (r Result) Ok() bool {
	return r.Err == nil && r.ExitCode.IsSuccess()
}

// FailureOf converts a non-ok Result into a *Failure for the given
// invocation. It panics if the result is ok; callers must check Ok first.
func FailureOf(inv Invocation, r Result) *Failure {
	if r.Ok() {
		panic("invoke: FailureOf called on a successful result")
	}
	return &Failure{Invocation: inv, ExitCode: r.ExitCode, Cause: r.Err}
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Invocation.Label, f.Invocation.CommandLine(), f.Cause)
	}
	return fmt.Sprintf("%s failed: %s (exit status %s)", f.Invocation.Label, f.Invocation.CommandLine(), f.ExitCode)
}

// Unwrap returns the launch error, if any.
func (f *Failure) Unwrap() error { return f.Cause }
