package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module paths, archive names,
	// and echoed command lines.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for produced artifacts in the summary.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for removed artifacts and legacy-file warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failure lines (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module paths, archive names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCommand styles echoed external command lines.
	StyleCommand = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// StyleRemoved styles cleanup "removed" lines.
	StyleRemoved = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleFailure styles the final failure line.
	StyleFailure = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatArtifact renders an artifact path with its size for the summary.
func FormatArtifact(path string, size int64) string {
	return fmt.Sprintf("  %s %s (%d bytes)",
		lipgloss.NewStyle().Foreground(ColorGreen).Render("✔"),
		StyleNoun.Render(path), size)
}
