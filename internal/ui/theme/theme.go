package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, ink on dark paper with a vermilion accent
var (
	Primary   = lipgloss.Color("#E0525B") // Vermilion
	Secondary = lipgloss.Color("#5FA8D3") // Indigo wash
	Accent    = lipgloss.Color("#F2B84B") // Gold leaf
	Success   = lipgloss.Color("#6CC08B") // Matcha
	Error     = lipgloss.Color("#F25F5C") // Red
	Text      = lipgloss.Color("#F5F1E8") // Paper
	TextDim   = lipgloss.Color("#9A9488") // Ash
	BgDark    = lipgloss.Color("#16161D") // Sumi
	BgCard    = lipgloss.Color("#23232E") // Charcoal
	Border    = lipgloss.Color("#3A3A4A") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Glyph renders the kana being drilled.
	Glyph = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 4)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Paused = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)
