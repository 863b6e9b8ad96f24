package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanatui/internal/ui/layout"
)

// Screen defines the interface for all application pages.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles a message and reports where the router should go next.
	Update(msg tea.Msg) (Transition, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
