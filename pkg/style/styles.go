package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Colors
var (
	SuccessColor  = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"}
	ErrorColor    = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}
	CriticalColor = lipgloss.AdaptiveColor{Light: "#a40e26", Dark: "#ff7b72"}
	WarningColor  = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"}
	MutedColor    = lipgloss.AdaptiveColor{Light: "#656d76", Dark: "#8b949e"}
	HeadingColor  = lipgloss.AdaptiveColor{Light: "#24292f", Dark: "#c9d1d9"}
	PathColor     = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// CriticalStyle marks partial failures where displaced content is in
	// the backup directory but the link is missing. Visually louder than
	// a plain error.
	CriticalStyle = lipgloss.NewStyle().
			Foreground(CriticalColor).
			Bold(true).
			Underline(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)
)

// Init pins lipgloss to the terminal's detected color profile, degrading to
// plain text when stdout is not a terminal (pipes, CI).
func Init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
