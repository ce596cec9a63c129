// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across all
// CLI output, chosen for dark terminal backgrounds.
const (
	// ColorPrimary is purple - titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - success states.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - warnings.
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
