package configure

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanatui/internal/config"
	"github.com/abhisek/kanatui/internal/kana"
	"github.com/abhisek/kanatui/internal/screen"
	"github.com/abhisek/kanatui/internal/ui/components"
	"github.com/abhisek/kanatui/internal/ui/layout"
	"github.com/abhisek/kanatui/internal/ui/theme"
)

// Focus positions, in tab order.
const (
	focusWritingSystem = iota
	focusDiacritics
	focusTimer
	focusCancel
	focusSave
	focusCount
)

const labelWidth = 20

var toggleOptions = []string{"on", "off"}

// ConfigureScreen edits a copy of the settings. Nothing is applied until
// Save is pressed.
type ConfigureScreen struct {
	cfg    *config.Handle
	logger *slog.Logger

	fields []components.OptionSelect
	focus  int
}

var _ screen.Screen = (*ConfigureScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigureScreen)(nil)

// New creates a ConfigureScreen editing the settings held by cfg.
func New(cfg *config.Handle, logger *slog.Logger) *ConfigureScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := config.Defaults()
	if cfg != nil {
		s = cfg.Settings()
	}

	reps := make([]string, len(kana.Representations))
	selected := 0
	for i, r := range kana.Representations {
		reps[i] = string(r)
		if r == s.Representation() {
			selected = i
		}
	}

	c := &ConfigureScreen{
		cfg:    cfg,
		logger: logger,
		fields: []components.OptionSelect{
			components.NewOptionSelect("Writing system", reps, selected),
			components.NewOptionSelect("Diacritics", toggleOptions, toggleIndex(s.Diacritics)),
			components.NewOptionSelect("Show timer", toggleOptions, toggleIndex(s.ShowTimer)),
		},
	}
	c.setFocus(focusWritingSystem)
	return c
}

func (c *ConfigureScreen) Init() tea.Cmd {
	return nil
}

func (c *ConfigureScreen) Title() string {
	return "Configure"
}

func (c *ConfigureScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Move"},
		{Key: "←→/Space", Description: "Change"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (c *ConfigureScreen) Update(msg tea.Msg) (screen.Transition, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return screen.Stay(), nil
	}

	switch kmsg.String() {
	case "esc":
		return screen.Navigate(screen.ToHome{}), nil
	case "tab", "down", "j":
		c.setFocus((c.focus + 1) % focusCount)
	case "shift+tab", "up", "k":
		c.setFocus((c.focus - 1 + focusCount) % focusCount)
	case "left", "h":
		c.change(-1)
	case "right", "l", "space", " ":
		c.change(1)
	case "enter":
		switch c.focus {
		case focusCancel:
			return screen.Navigate(screen.ToHome{}), nil
		case focusSave:
			c.save()
			return screen.Navigate(screen.ToHome{}), nil
		default:
			c.setFocus(c.focus + 1)
		}
	}
	return screen.Stay(), nil
}

// change cycles the focused field, or moves between the two buttons on the
// action row.
func (c *ConfigureScreen) change(dir int) {
	switch {
	case c.focus < len(c.fields):
		if dir < 0 {
			c.fields[c.focus] = c.fields[c.focus].Prev()
		} else {
			c.fields[c.focus] = c.fields[c.focus].Next()
		}
	case dir < 0:
		c.setFocus(focusCancel)
	default:
		c.setFocus(focusSave)
	}
}

// save applies the edited settings. A failed save is logged and otherwise
// ignored; the caller still leaves the page.
func (c *ConfigureScreen) save() {
	s := c.Settings()
	if c.cfg == nil {
		c.logger.Warn("no configuration handle, settings not saved")
		return
	}
	if err := c.cfg.Update(s); err != nil {
		c.logger.Warn("settings save failed", "error", err)
		return
	}
	c.logger.Info("settings saved",
		"writing_system", s.WritingSystem,
		"diacritics", s.Diacritics,
		"show_timer", s.ShowTimer)
}

// Settings returns the settings as currently edited.
func (c *ConfigureScreen) Settings() config.Settings {
	return config.Settings{
		WritingSystem: c.fields[focusWritingSystem].Value(),
		Diacritics:    c.fields[focusDiacritics].Value() == "on",
		ShowTimer:     c.fields[focusTimer].Value() == "on",
	}
}

// Focus returns the focused position in tab order.
func (c *ConfigureScreen) Focus() int {
	return c.focus
}

func (c *ConfigureScreen) setFocus(f int) {
	c.focus = f
	for i := range c.fields {
		c.fields[i].Focused = i == f
	}
}

func (c *ConfigureScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Settings"))
	b.WriteString("\n\n")

	for _, f := range c.fields {
		b.WriteString(f.View(labelWidth))
		b.WriteString("\n\n")
	}

	b.WriteString(components.ButtonRow(
		components.NewButton("Cancel", c.focus == focusCancel),
		components.NewButton("Save", c.focus == focusSave),
	))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(b.String())
	return layout.Center(card, width, height)
}

func toggleIndex(on bool) int {
	if on {
		return 0
	}
	return 1
}
