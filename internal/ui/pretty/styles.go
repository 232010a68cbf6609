// Package pretty provides Lipgloss-based styled output utilities for
// stderr diagnostics and help text. Matched-line output on stdout is
// never styled.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for CLI diagnostics.
type Styles struct {
	// ErrorTitle renders the "error:" prefix.
	ErrorTitle lipgloss.Style

	// ErrorDetail renders the error message body.
	ErrorDetail lipgloss.Style

	// Hint renders usage hints below an error.
	Hint lipgloss.Style

	// FilePath renders file paths.
	FilePath lipgloss.Style

	// Dim renders secondary information.
	Dim lipgloss.Style

	// Bold renders emphasized text.
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		ErrorTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		ErrorDetail: lipgloss.NewStyle(),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		FilePath:    lipgloss.NewStyle().Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:        lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		ErrorTitle:  plain,
		ErrorDetail: plain,
		Hint:        plain,
		FilePath:    plain,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Honor the NO_COLOR convention (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
