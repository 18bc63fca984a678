package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for report output
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - defaults, success
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - changed values
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for report output
var (
	// StoreTitleStyle is for VarStore section headers (e.g., "CpuSetup")
	StoreTitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// OffsetStyle is for VarOffset values (e.g., "0x143")
	OffsetStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(10)

	// SettingNameStyle is for setting prompts
	SettingNameStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// KindStyle is for the setting kind tag (one-of, numeric, checkbox)
	KindStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// DefaultValueStyle is for declared default values
	DefaultValueStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// OptionStyle is for one-of option labels
	OptionStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(4)

	// DefaultOptionStyle marks the default option in a one-of listing
	DefaultOptionStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				PaddingLeft(4)

	// SummaryStyle is for the trailing counts line
	SummaryStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// DirectiveCommentStyle is for script comment lines in previews
	DirectiveCommentStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// DirectiveCommandStyle is for script command lines in previews
	DirectiveCommandStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// StoreBorderStyle returns the border style for VarStore sections
func StoreBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Padding(0, 1)
}

// IsTerminal reports whether stdout is attached to a terminal. Styled
// output is only produced when it is; pipes get plain text.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
