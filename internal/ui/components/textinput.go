package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanatui/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with kanatui styling.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	marked   bool
	valid    bool
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth)
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards a message to the editor. Any edit clears the mark.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	before := t.Model.Value()
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.marked = false
	}
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.marked {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Reset clears the value and the mark.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.marked = false
}

// Mark shows a validation result next to the input until the next edit.
func (t *TextInput) Mark(valid bool) {
	t.marked = true
	t.valid = valid
}

// Marked reports whether a validation result is shown.
func (t TextInput) Marked() bool {
	return t.marked
}
