package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanatui/internal/config"
	"github.com/abhisek/kanatui/internal/screen"
)

func press(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(nil)
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_EnterOnStudy(t *testing.T) {
	h := New(config.NewHandle(nil, config.Defaults()))

	tr, _ := h.Update(press("enter"))

	if tr.Kind != screen.KindNavigate {
		t.Fatalf("Kind = %v, want navigate", tr.Kind)
	}
	if _, ok := tr.To.(screen.ToStudy); !ok {
		t.Errorf("To = %T, want ToStudy", tr.To)
	}
}

func TestHomeScreen_EnterOnConfigure(t *testing.T) {
	h := New(nil)
	h.Update(press("down"))

	tr, _ := h.Update(press("enter"))

	if _, ok := tr.To.(screen.ToConfigure); !ok {
		t.Errorf("To = %T, want ToConfigure", tr.To)
	}
}

func TestHomeScreen_UpWrapsToQuit(t *testing.T) {
	h := New(nil)
	h.Update(press("up"))

	if h.Selected() != itemQuit {
		t.Fatalf("Selected = %d, want %d", h.Selected(), itemQuit)
	}
	tr, _ := h.Update(press("enter"))
	if tr.Kind != screen.KindTerminate {
		t.Errorf("Kind = %v, want terminate", tr.Kind)
	}
}

func TestHomeScreen_EscAndQTerminate(t *testing.T) {
	for _, k := range []string{"esc", "q"} {
		h := New(nil)
		tr, _ := h.Update(press(k))
		if tr.Kind != screen.KindTerminate {
			t.Errorf("%s: Kind = %v, want terminate", k, tr.Kind)
		}
	}
}

func TestHomeScreen_OtherKeysStay(t *testing.T) {
	h := New(nil)
	tr, _ := h.Update(press("x"))
	if tr.Kind != screen.KindStay {
		t.Errorf("Kind = %v, want stay", tr.Kind)
	}
	tr, _ = h.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if tr.Kind != screen.KindStay {
		t.Errorf("Kind = %v, want stay on non-key msg", tr.Kind)
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(nil)
	for _, size := range [][2]int{{80, 18}, {120, 40}} {
		if v := h.View(size[0], size[1]); v == "" {
			t.Errorf("expected non-empty view at %v", size)
		}
	}
}
