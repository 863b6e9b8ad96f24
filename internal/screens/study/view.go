package study

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/kanatui/internal/session"
	"github.com/abhisek/kanatui/internal/ui/components"
	"github.com/abhisek/kanatui/internal/ui/layout"
	"github.com/abhisek/kanatui/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if s.session.Paused() {
		return renderPaused(width, height, s.session.Elapsed())
	}

	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	card := theme.Glyph.Render(s.session.Glyph())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	if line := s.renderIndication(); line != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
	}

	return b.String()
}

// renderInfoLine shows progress on the left and the score and timer on the
// right.
func (s *StudyScreen) renderInfoLine(width int) string {
	ss := s.session
	done := ss.Total() - ss.Remaining() - 1

	left := "  " + components.NewProgressBar(done, ss.Total(), min(30, width/3)).View()

	right := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d", ss.Correct())) +
		"  " +
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("✗ %d", ss.Incorrect()))
	if s.showTimer {
		right += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(formatClock(ss.Elapsed()))
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (s *StudyScreen) renderIndication() string {
	ss := s.session
	switch ss.Indication() {
	case sess.IndicationWrong:
		return theme.Incorrect.Render("Not quite, try again")
	case sess.IndicationHint:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(ss.Answer()) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("   %s %s   space to continue",
					ss.Representation().Other().Label(), ss.AlternateGlyph()))
	}
	return ""
}

func renderPaused(width, height int, elapsed time.Duration) string {
	block := theme.Paused.Render("PAUSED") + "\n\n" +
		theme.Hint.Render(fmt.Sprintf("%s on the clock. Press any key to resume.", formatClock(elapsed)))
	return layout.Center(lipgloss.NewStyle().Align(lipgloss.Center).Render(block), width, height)
}

// formatClock renders d as m:ss.
func formatClock(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
