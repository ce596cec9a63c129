// SPDX-License-Identifier: MPL-2.0

package envscope

import (
	"errors"
	"reflect"
	"testing"

	"hearth-cli/internal/invoke"
)

func TestFloxScopeWrap(t *testing.T) {
	g := NewFloxGuard("flox")
	g.lookPath = func(string) (string, error) { return "/usr/bin/flox", nil }

	scope, err := g.Enter("/work/arena")
	if err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	defer func() {
		if err := scope.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()

	inv := invoke.Invocation{
		Label: "cargo check",
		Exe:   "cargo",
		Args:  []string{"check", "--workspace"},
		Dir:   "/work/arena",
	}
	wrapped := scope.Wrap(inv)

	if wrapped.Exe != "flox" {
		t.Errorf("Exe = %q, want flox", wrapped.Exe)
	}
	wantArgs := []string{"activate", "-d", "/work/arena", "--", "cargo", "check", "--workspace"}
	if !reflect.DeepEqual(wrapped.Args, wantArgs) {
		t.Errorf("Args = %v, want %v", wrapped.Args, wantArgs)
	}
	if wrapped.Dir != inv.Dir {
		t.Errorf("Dir = %q, want %q (wrapping must preserve the working directory)", wrapped.Dir, inv.Dir)
	}
	if wrapped.Label != inv.Label {
		t.Errorf("Label = %q, want %q", wrapped.Label, inv.Label)
	}
}

func TestFloxGuardMissingTool(t *testing.T) {
	g := NewFloxGuard("flox")
	g.lookPath = func(string) (string, error) { return "", errors.New("not found") }

	if _, err := g.Enter("."); err == nil {
		t.Error("Enter() should fail when the activation tool is missing")
	}
}

func TestScopeDoubleClose(t *testing.T) {
	g := NewFloxGuard("flox")
	g.lookPath = func(string) (string, error) { return "/usr/bin/flox", nil }

	scope, err := g.Enter(".")
	if err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if err := scope.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := scope.Close(); err == nil {
		t.Error("second Close() should report the double release")
	}
}

func TestNopGuardPassThrough(t *testing.T) {
	scope, err := NopGuard{}.Enter(".")
	if err != nil {
		t.Fatalf("Enter() error = %v", err)
	}

	inv := invoke.Invocation{Exe: "cargo", Args: []string{"build"}}
	if got := scope.Wrap(inv); !reflect.DeepEqual(got, inv) {
		t.Errorf("NopGuard must not alter invocations, got %+v", got)
	}
	if err := scope.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
