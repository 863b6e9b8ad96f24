package study

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kanatui/internal/config"
	"github.com/abhisek/kanatui/internal/kana"
	"github.com/abhisek/kanatui/internal/screen"
	sess "github.com/abhisek/kanatui/internal/session"
)

// fixedPlanner returns a preset order regardless of the symbols in play.
type fixedPlanner []kana.Kana

func (p fixedPlanner) BuildPlan([]kana.Kana) sess.Plan {
	return sess.Plan{Kana: append([]kana.Kana(nil), p...)}
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func press(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+p":
		return tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func typeText(s *StudyScreen, text string) {
	for _, r := range text {
		s.Update(press(string(r)))
	}
}

func newTestScreen(t *testing.T, order ...kana.Kana) (*StudyScreen, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	h := config.NewHandle(nil, config.Defaults())
	return New(h, fixedPlanner(order), clock.Now, nil), clock
}

func TestClassify(t *testing.T) {
	tests := []struct {
		key  string
		want sess.Event
	}{
		{"ctrl+p", sess.EventPause},
		{"esc", sess.EventEscape},
		{"enter", sess.EventSubmit},
		{"space", sess.EventHint},
		{"a", sess.EventEdit},
		{"backspace", sess.EventEdit},
	}
	for _, tt := range tests {
		if got := classify(press(tt.key)); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestStudy_TypingEditsInput(t *testing.T) {
	s, _ := newTestScreen(t, kana.Ka, kana.Ki)

	typeText(s, "kx")
	s.Update(press("backspace"))

	assert.Equal(t, "k", s.Session().Input())
	assert.Equal(t, "k", s.input.Value())
}

func TestStudy_CorrectAnswerAdvances(t *testing.T) {
	s, _ := newTestScreen(t, kana.Ka, kana.Ki)

	typeText(s, "ka")
	tr, _ := s.Update(press("enter"))

	assert.Equal(t, screen.KindStay, tr.Kind)
	assert.Equal(t, kana.Ki, s.Session().Current())
	assert.Equal(t, "", s.input.Value())
}

func TestStudy_WrongAnswerClearsEditor(t *testing.T) {
	s, _ := newTestScreen(t, kana.Ka, kana.Ki)

	typeText(s, "ga")
	s.Update(press("enter"))

	assert.Equal(t, sess.IndicationWrong, s.Session().Indication())
	assert.Equal(t, "", s.input.Value())
	assert.True(t, s.input.Marked())
	assert.Contains(t, s.View(80, 20), "Not quite")
}

func TestStudy_HintShowsAnswer(t *testing.T) {
	s, _ := newTestScreen(t, kana.Shi, kana.Ki)

	s.Update(press("space"))

	assert.Equal(t, sess.IndicationHint, s.Session().Indication())
	assert.Contains(t, s.View(80, 20), "shi")

	s.Update(press("space"))
	assert.Equal(t, kana.Ki, s.Session().Current())
}

func TestStudy_PauseSwallowsKeys(t *testing.T) {
	s, clock := newTestScreen(t, kana.Ka, kana.Ki)

	clock.now = clock.now.Add(5 * time.Second)
	s.Update(press("ctrl+p"))
	require.True(t, s.Session().Paused())
	assert.Contains(t, s.View(80, 20), "PAUSED")

	clock.now = clock.now.Add(time.Minute)
	tr, _ := s.Update(press("k"))

	assert.Equal(t, screen.KindStay, tr.Kind)
	assert.False(t, s.Session().Paused())
	assert.Equal(t, "", s.input.Value(), "resume key must not reach the editor")
	assert.Equal(t, 5*time.Second, s.Session().Elapsed())
}

func TestStudy_EscGoesHome(t *testing.T) {
	s, _ := newTestScreen(t, kana.Ka, kana.Ki)

	tr, _ := s.Update(press("esc"))

	assert.Equal(t, screen.KindNavigate, tr.Kind)
	assert.IsType(t, screen.ToHome{}, tr.To)
}

func TestStudy_CompletionNavigatesToResult(t *testing.T) {
	s, clock := newTestScreen(t, kana.A, kana.I)

	typeText(s, "e")
	s.Update(press("enter"))
	typeText(s, "a")
	s.Update(press("enter"))
	clock.now = clock.now.Add(42 * time.Second)
	typeText(s, "i")
	tr, _ := s.Update(press("enter"))

	require.Equal(t, screen.KindNavigate, tr.Kind)
	res, ok := tr.To.(screen.ToResult)
	require.True(t, ok, "To = %T", tr.To)
	assert.Equal(t, 1, res.Summary.Correct)
	assert.Equal(t, 1, res.Summary.Incorrect)
	assert.Equal(t, []kana.Kana{kana.A}, res.Summary.Missed)
	assert.Equal(t, 42*time.Second, res.Summary.Elapsed)
	assert.Equal(t, kana.Hiragana, res.Summary.Representation)
}

func TestStudy_FullSubsetYieldsOneResult(t *testing.T) {
	h := config.NewHandle(nil, config.Settings{WritingSystem: "katakana", Diacritics: false, ShowTimer: true})
	s := New(h, sess.NewPlanner(sess.NewSeededRand(3)), nil, nil)

	results := 0
	var last screen.Transition
	for i := 0; i < 200 && !s.Session().Completed(); i++ {
		var tr screen.Transition
		if i%2 == 0 {
			typeText(s, s.Session().Answer())
			tr, _ = s.Update(press("enter"))
		} else {
			s.Update(press("space"))
			tr, _ = s.Update(press("space"))
		}
		if tr.Kind == screen.KindNavigate {
			results++
			last = tr
		}
	}

	require.Equal(t, 1, results)
	res := last.To.(screen.ToResult)
	assert.Equal(t, len(kana.Subset(false)), res.Summary.Total())
	assert.Equal(t, kana.Katakana, res.Summary.Representation)
}

func TestStudy_TickChain(t *testing.T) {
	s, _ := newTestScreen(t, kana.Ka, kana.Ki)

	_, cmd := s.Update(timerTickMsg{SessionID: s.Session().ID()})
	assert.NotNil(t, cmd, "live session keeps ticking")

	_, cmd = s.Update(timerTickMsg{SessionID: "stale"})
	assert.Nil(t, cmd, "ticks from another session stop")
}

func TestStudy_TimerHidden(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	h := config.NewHandle(nil, config.Settings{WritingSystem: "hiragana", Diacritics: true, ShowTimer: false})
	s := New(h, fixedPlanner{kana.Ka}, clock.Now, nil)

	assert.NotContains(t, s.View(80, 20), "0:00")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", formatClock(0))
	assert.Equal(t, "1:05", formatClock(65*time.Second))
	assert.Equal(t, "12:00", formatClock(12*time.Minute))
}

func TestStudy_KeyHints(t *testing.T) {
	s, _ := newTestScreen(t, kana.Ka, kana.Ki)
	assert.Len(t, s.KeyHints(), 4)

	s.Update(press("ctrl+p"))
	assert.Len(t, s.KeyHints(), 1)
}
