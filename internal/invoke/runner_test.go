// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestOSRunnerSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	var stdout bytes.Buffer
	r := &OSRunner{Stdout: &stdout, Stderr: &stdout}

	res := r.Run(context.Background(), Invocation{
		Label: "echo",
		Exe:   "sh",
		Args:  []string{"-c", "echo hello"},
	})

	if !res.Ok() {
		t.Fatalf("Run() = %+v, want success", res)
	}
	if !strings.Contains(stdout.String(), "hello") {
		t.Errorf("child output not forwarded, got %q", stdout.String())
	}
}

func TestOSRunnerNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	r := &OSRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	res := r.Run(context.Background(), Invocation{
		Label: "failing tool",
		Exe:   "sh",
		Args:  []string{"-c", "exit 3"},
	})

	if res.Ok() {
		t.Fatal("Run() reported success for a non-zero exit")
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if res.Err != nil {
		t.Errorf("a clean non-zero exit should not carry a launch error, got %v", res.Err)
	}
}

func TestOSRunnerLaunchFailure(t *testing.T) {
	r := &OSRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	res := r.Run(context.Background(), Invocation{
		Label: "missing tool",
		Exe:   "hearth-test-no-such-executable",
	})

	if res.Ok() {
		t.Fatal("Run() reported success for a missing executable")
	}
	if res.Err == nil {
		t.Error("launch failure should carry an error")
	}
}

func TestOSRunnerWorkingDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()
	r := &OSRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	res := r.Run(context.Background(), Invocation{
		Label: "touch marker",
		Exe:   "sh",
		Args:  []string{"-c", "touch marker"},
		Dir:   dir,
	})

	if !res.Ok() {
		t.Fatalf("Run() = %+v, want success", res)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Errorf("child did not run in %q: %v", dir, err)
	}
}
