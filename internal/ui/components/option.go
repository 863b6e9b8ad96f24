package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanatui/internal/ui/theme"
)

// OptionSelect is a single-line field that cycles through a fixed set of
// options.
type OptionSelect struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewOptionSelect creates a selector with the option at index selected.
func NewOptionSelect(label string, options []string, selected int) OptionSelect {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return OptionSelect{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// Next selects the following option, wrapping to the first.
func (o OptionSelect) Next() OptionSelect {
	if len(o.Options) > 0 {
		o.Selected = (o.Selected + 1) % len(o.Options)
	}
	return o
}

// Prev selects the preceding option, wrapping to the last.
func (o OptionSelect) Prev() OptionSelect {
	if n := len(o.Options); n > 0 {
		o.Selected = (o.Selected - 1 + n) % n
	}
	return o
}

// Value returns the selected option, or "" when there are none.
func (o OptionSelect) Value() string {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected]
}

// View renders the label followed by every option, the selected one
// highlighted.
func (o OptionSelect) View(labelWidth int) string {
	labelStyle := lipgloss.NewStyle().Width(labelWidth).Foreground(theme.Text)
	prefix := "  "
	if o.Focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		prefix = "▸ "
	}

	opts := make([]string, len(o.Options))
	for i, opt := range o.Options {
		switch {
		case i == o.Selected && o.Focused:
			opts[i] = theme.Selected.Render("[" + opt + "]")
		case i == o.Selected:
			opts[i] = theme.Unselected.Render("[" + opt + "]")
		default:
			opts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + opt + " ")
		}
	}

	return labelStyle.Render(prefix+o.Label) + strings.Join(opts, " ")
}
