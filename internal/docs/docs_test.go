// SPDX-License-Identifier: MPL-2.0

package docs

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"hearth-cli/internal/config"
	"hearth-cli/internal/issue"
	"hearth-cli/internal/testutil"
)

func TestCheckPrecondition(t *testing.T) {
	docsDir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(docsDir, BookConfigFileName), `
[book]
title = "Orchestra Handbook"
`)

	book, err := CheckPrecondition(docsDir)
	if err != nil {
		t.Fatalf("CheckPrecondition() error = %v", err)
	}
	if book.Title != "Orchestra Handbook" {
		t.Errorf("Title = %q, want Orchestra Handbook", book.Title)
	}
}

func TestCheckPreconditionMissingMarker(t *testing.T) {
	_, err := CheckPrecondition(t.TempDir())
	if !errors.Is(err, issue.ErrPrecondition) {
		t.Errorf("missing book.toml should be a PreconditionError, got %v", err)
	}
}

func TestBuildAndServeInvocations(t *testing.T) {
	cfg := config.DefaultConfig()

	build := Build(cfg, "/ws/docs")
	if got, want := build.CommandLine(), "mdbook build"; got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
	if build.Dir != "/ws/docs" {
		t.Errorf("Build() Dir = %q, want /ws/docs", build.Dir)
	}

	serve := Serve(cfg, "/ws/docs", "8080")
	if got, want := serve.CommandLine(), "mdbook serve --port 8080 --open"; got != want {
		t.Errorf("Serve() = %q, want %q", got, want)
	}
}

func TestPreview(t *testing.T) {
	docsDir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(docsDir, "src", "intro.md"), "# Introduction\n\nHello.\n")

	var out bytes.Buffer
	if err := Preview(docsDir, "intro", &out); err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if !strings.Contains(out.String(), "Introduction") {
		t.Errorf("rendered output missing the heading, got %q", out.String())
	}
}

func TestPreviewMissingPage(t *testing.T) {
	err := Preview(t.TempDir(), "nope", &bytes.Buffer{})
	if !errors.Is(err, issue.ErrPrecondition) {
		t.Errorf("missing page should be a PreconditionError, got %v", err)
	}
}
