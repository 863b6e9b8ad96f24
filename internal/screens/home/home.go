package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanatui/internal/config"
	"github.com/abhisek/kanatui/internal/screen"
	"github.com/abhisek/kanatui/internal/ui/components"
	"github.com/abhisek/kanatui/internal/ui/layout"
	"github.com/abhisek/kanatui/internal/ui/theme"
)

// Menu entries, in display order.
const (
	itemStudy = iota
	itemConfigure
	itemQuit
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu     components.Menu
	settings config.Settings
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen showing the active settings from cfg.
func New(cfg *config.Handle) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY"},
		{Label: "CONFIGURE"},
		{Label: "QUIT"},
	}
	h := &HomeScreen{menu: components.NewMenu(items)}
	if cfg != nil {
		h.settings = cfg.Settings()
	} else {
		h.settings = config.Defaults()
	}
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc/q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Transition, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return screen.Stay(), nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return screen.Terminate(), nil
	}

	var activated bool
	h.menu, activated = h.menu.Update(kmsg)
	if !activated {
		return screen.Stay(), nil
	}

	switch h.menu.Selected {
	case itemStudy:
		return screen.Navigate(screen.ToStudy{}), nil
	case itemConfigure:
		return screen.Navigate(screen.ToConfigure{}), nil
	case itemQuit:
		return screen.Terminate(), nil
	}
	return screen.Stay(), nil
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height)

	sections := []string{
		renderBanner(width, compact),
		theme.Subtitle.Render("Drill the kana, one glyph at a time"),
		renderSettingsLine(h.settings),
		h.menu.View(),
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(strings.Join(sections, sep))
	return layout.Center(block, width, height)
}

// Selected returns the highlighted menu index.
func (h *HomeScreen) Selected() int {
	return h.menu.Selected
}

func renderSettingsLine(s config.Settings) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	accent := lipgloss.NewStyle().Foreground(theme.Accent)
	return dim.Render("writing system ") + accent.Render(s.Representation().Label()) +
		dim.Render(fmt.Sprintf("   diacritics %s   timer %s", onOff(s.Diacritics), onOff(s.ShowTimer)))
}
