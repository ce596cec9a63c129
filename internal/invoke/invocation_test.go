// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"errors"
	"strings"
	"testing"
)

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		inv  Invocation
		want string
	}{
		{
			name: "no args",
			inv:  Invocation{Exe: "cargo"},
			want: "cargo",
		},
		{
			name: "with args",
			inv:  Invocation{Exe: "cargo", Args: []string{"build", "--workspace", "--release"}},
			want: "cargo build --workspace --release",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.CommandLine(); got != tt.want {
				t.Errorf("CommandLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultOk(t *testing.T) {
	if !(Result{}).Ok() {
		t.Error("zero Result should be ok")
	}
	if (Result{ExitCode: 1}).Ok() {
		t.Error("non-zero exit should not be ok")
	}
	if (Result{Err: errors.New("launch failed")}).Ok() {
		t.Error("launch error should not be ok")
	}
}

func TestFailureOf(t *testing.T) {
	inv := Invocation{Label: "build runtime alpha", Exe: "cargo", Args: []string{"build"}}

	f := FailureOf(inv, Result{ExitCode: 101})
	if f.ExitCode != 101 {
		t.Errorf("ExitCode = %d, want 101", f.ExitCode)
	}
	if !strings.Contains(f.Error(), "build runtime alpha") {
		t.Errorf("Error() should name the failed invocation, got %q", f.Error())
	}
	if !strings.Contains(f.Error(), "exit status 101") {
		t.Errorf("Error() should carry the exit status, got %q", f.Error())
	}
}

func TestFailureOfLaunchError(t *testing.T) {
	cause := errors.New("executable file not found in $PATH")
	f := FailureOf(Invocation{Label: "mdbook build", Exe: "mdbook"}, Result{ExitCode: 1, Err: cause})

	if !errors.Is(f, cause) {
		t.Error("Failure should unwrap to its launch error")
	}
	if !strings.Contains(f.Error(), "not found") {
		t.Errorf("Error() should include the cause, got %q", f.Error())
	}
}

func TestFailureOfPanicsOnSuccess(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FailureOf should panic on a successful result")
		}
	}()
	FailureOf(Invocation{}, Result{})
}
