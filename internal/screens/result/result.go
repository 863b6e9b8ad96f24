package result

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanatui/internal/screen"
	"github.com/abhisek/kanatui/internal/session"
	"github.com/abhisek/kanatui/internal/ui/layout"
	"github.com/abhisek/kanatui/internal/ui/theme"
)

// ResultScreen displays the summary of a finished session.
type ResultScreen struct {
	summary session.Summary
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen.
func New(summary session.Summary) *ResultScreen {
	return &ResultScreen{summary: summary}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Results"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "any key", Description: "Home"},
	}
}

// Update returns home on any key press.
func (r *ResultScreen) Update(msg tea.Msg) (screen.Transition, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return screen.Navigate(screen.ToHome{}), nil
	}
	return screen.Stay(), nil
}

func (r *ResultScreen) View(width, height int) string {
	sum := r.summary
	total := sum.Total()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("You finished!"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf(
		"You completed a study plan of %d %s in %s.",
		total, strings.ToLower(sum.Representation.Label()), FormatDuration(sum.Elapsed))))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Good guesses: %d/%d        Wrong guesses: %d/%d        Accuracy: %.0f%%",
		sum.Correct, total, sum.Incorrect, total, sum.Accuracy()*100)
	b.WriteString(center.Foreground(theme.Text).Render(stats))
	b.WriteString("\n\n")

	if len(sum.Missed) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", max(min(width-8, 60), 0)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("To review")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, line := range wrapCells(r.missedCells(), 3, max(min(width-8, 60), 10)) {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Incorrect.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("A perfect run!"))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("Press any key to go to the homepage."))

	return b.String()
}

// missedCells pairs each missed glyph with its romaji.
func (r *ResultScreen) missedCells() []string {
	cells := make([]string, len(r.summary.Missed))
	for i, k := range r.summary.Missed {
		cells[i] = k.Glyph(r.summary.Representation) + " " + k.String()
	}
	return cells
}

// FormatDuration renders d as "Ns", "Nmin" or "Nmin and Ns".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	mins, secs := total/60, total%60
	switch {
	case mins == 0:
		return fmt.Sprintf("%ds", secs)
	case secs == 0:
		return fmt.Sprintf("%dmin", mins)
	}
	return fmt.Sprintf("%dmin and %ds", mins, secs)
}
