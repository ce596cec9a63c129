// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// markerStyle renders the per-target progress marker. Bold only, so the
// marker stands out in a wall of tool output without assuming a color
// scheme.
var markerStyle = lipgloss.NewStyle().Bold(true)

type (
	// Operation is applied to one target and reports its outcome as an
	// error (nil means success).
	Operation func(Target) error

	// IterateOptions configures ForEach.
	IterateOptions struct {
		// Verb names the operation in progress markers, e.g. "Building".
		Verb string
		// Out receives progress markers; defaults to os.Stdout.
		Out io.Writer
	}
)

// ForEach applies op to each target strictly in the supplied order,
// emitting a progress marker before each so a human watching live
// output can locate failures. It stops at the first failure and returns
// it without attempting the remaining targets: later runtimes often
// depend on earlier ones finishing cleanly, and continuing would bury
// the root cause under secondary failures.
func ForEach(targets []Target, opts IterateOptions, op Operation) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	for _, target := range targets {
		label := target.Package
		if label == "" {
			label = target.Name
		}
		marker := fmt.Sprintf("--- %s runtime: %s ---", opts.Verb, label)
		fmt.Fprintf(out, "\n%s\n", markerStyle.Render(marker))

		if err := op(target); err != nil {
			return err
		}
	}

	return nil
}
