// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Segment styles, one per render.StyleKind.
	Plain   lipgloss.Style
	Marker  lipgloss.Style
	Bold    lipgloss.Style
	Italic  lipgloss.Style
	Hashtag lipgloss.Style
	Image   lipgloss.Style

	// Dropdown styles
	Suggestion lipgloss.Style
	Selected   lipgloss.Style

	// Misc
	Title lipgloss.Style
	Dim   lipgloss.Style
	Error lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Plain:   lipgloss.NewStyle(),
		Marker:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Italic:  lipgloss.NewStyle().Italic(true),
		Hashtag: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Image:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),

		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")),

		Title: lipgloss.NewStyle().Bold(true),
		Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Plain:      plain,
		Marker:     plain,
		Bold:       plain,
		Italic:     plain,
		Hashtag:    plain,
		Image:      plain,
		Suggestion: plain,
		Selected:   plain,
		Title:      plain,
		Dim:        plain,
		Error:      plain,
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
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the terminal behind writer, or fallback
// when the writer is not a terminal.
func TerminalWidth(writer io.Writer, fallback int) int {
	f, ok := writer.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
