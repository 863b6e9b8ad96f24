package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanatui/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ █████╗ ███╗   ██╗ █████╗
 ██║ ██╔╝██╔══██╗████╗  ██║██╔══██╗
 █████╔╝ ███████║██╔██╗ ██║███████║
 ██╔═██╗ ██╔══██║██║╚██╗██║██╔══██║
 ██║  ██╗██║  ██║██║ ╚████║██║  ██║
 ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝`

const bannerCompact = "か な · K A N A"

// renderBanner returns the title art, or a one-line fallback when the area
// is narrow or short.
func renderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
