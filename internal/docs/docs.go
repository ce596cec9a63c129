// SPDX-License-Identifier: MPL-2.0

// Package docs handles the documentation commands: the book.toml
// precondition, mdbook invocations, and in-terminal page previews.
//
// The precondition check happens before any external tool launches; a
// workspace without a documentation book fails the command rather than
// letting mdbook produce a confusing error in the wrong directory.
package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hearth-cli/internal/config"
	"hearth-cli/internal/invoke"
	"hearth-cli/internal/issue"

	"github.com/charmbracelet/glamour"
	"github.com/pelletier/go-toml/v2"
)

// BookConfigFileName is the marker file a docs directory must contain.
const BookConfigFileName = "book.toml"

type (
	// Book is the subset of book.toml the orchestrator reads.
	Book struct {
		Title string
	}

	bookConfig struct {
		Book struct {
			Title string `toml:"title"`
		} `toml:"book"`
	}
)

// CheckPrecondition verifies that docsDir holds a book.toml and returns
// the parsed book metadata. A missing marker is a *issue.PreconditionError;
// the doc tool is never launched in that case.
func CheckPrecondition(docsDir string) (*Book, error) {
	path := filepath.Join(docsDir, BookConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &issue.PreconditionError{
			Resource: path,
			Hint:     "run 'mdbook init " + docsDir + "' to create the documentation book",
		}
	}

	var bc bookConfig
	if err := toml.Unmarshal(data, &bc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &Book{Title: bc.Book.Title}, nil
}

// Build returns the invocation that builds the documentation site.
func Build(cfg *config.Config, docsDir string) invoke.Invocation {
	return invoke.Invocation{
		Label: "build docs",
		Exe:   cfg.Tools.Mdbook,
		Args:  []string{"build"},
		Dir:   docsDir,
	}
}

// Serve returns the invocation that serves the documentation with live
// reload on the given port.
func Serve(cfg *config.Config, docsDir, port string) invoke.Invocation {
	return invoke.Invocation{
		Label: "serve docs",
		Exe:   cfg.Tools.Mdbook,
		Args:  []string{"serve", "--port", port, "--open"},
		Dir:   docsDir,
	}
}

// Preview renders a documentation source page to out as styled terminal
// markdown. page is relative to the book's src directory; the .md
// extension may be omitted.
func Preview(docsDir, page string, out io.Writer) error {
	if page == "" {
		page = "SUMMARY.md"
	}
	if !strings.HasSuffix(page, ".md") {
		page += ".md"
	}

	path := filepath.Join(docsDir, "src", page)
	content, err := os.ReadFile(path)
	if err != nil {
		return &issue.PreconditionError{
			Resource: path,
			Hint:     "page paths are relative to " + filepath.Join(docsDir, "src"),
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(string(content))
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	_, err = io.WriteString(out, rendered)
	return err
}
