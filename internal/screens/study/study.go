package study

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanatui/internal/config"
	"github.com/abhisek/kanatui/internal/screen"
	sess "github.com/abhisek/kanatui/internal/session"
	"github.com/abhisek/kanatui/internal/ui/components"
	"github.com/abhisek/kanatui/internal/ui/layout"
)

// StudyScreen runs one study session.
type StudyScreen struct {
	session   *sess.Session
	input     components.TextInput
	showTimer bool
	logger    *slog.Logger
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New starts a session over the kana selected by the settings in cfg.
func New(cfg *config.Handle, planner sess.Planner, clock sess.Clock, logger *slog.Logger) *StudyScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if planner == nil {
		planner = sess.NewPlanner(nil)
	}
	settings := config.Defaults()
	if cfg != nil {
		settings = cfg.Settings()
	}

	plan := planner.BuildPlan(settings.Symbols())
	s := sess.New(plan, settings.Representation(), clock)

	logger = logger.With("session_id", s.ID())
	logger.Info("session started",
		"representation", string(s.Representation()),
		"kana", s.Total())

	return &StudyScreen{
		session:   s,
		input:     components.NewTextInput("romaji", 8),
		showTimer: settings.ShowTimer,
		logger:    logger,
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Init(),
		tickCmd(s.session.ID()),
	)
}

func (s *StudyScreen) Title() string {
	return "Study"
}

// Session exposes the running session for rendering and tests.
func (s *StudyScreen) Session() *sess.Session {
	return s.session
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.session.Paused() {
		return []layout.KeyHint{
			{Key: "any key", Description: "Resume"},
		}
	}
	if s.session.Indication() == sess.IndicationHint {
		return []layout.KeyHint{
			{Key: "Space", Description: "Next"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+P", Description: "Pause"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Space", Description: "Hint"},
		{Key: "Ctrl+P", Description: "Pause"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Transition, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other editor messages.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return screen.Stay(), cmd
}

func (s *StudyScreen) handleTick(msg timerTickMsg) (screen.Transition, tea.Cmd) {
	if msg.SessionID != s.session.ID() || s.session.Completed() {
		return screen.Stay(), nil
	}
	return screen.Stay(), tickCmd(s.session.ID())
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Transition, tea.Cmd) {
	ev := classify(msg)
	wasPaused := s.session.Paused()

	switch s.session.Step(ev) {
	case sess.StepEdit:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.session.SetInput(s.input.Value())
		return screen.Stay(), cmd

	case sess.StepAbandon:
		s.logger.Info("session abandoned",
			"answered", len(s.session.Log()),
			"elapsed_ms", s.session.Elapsed().Milliseconds())
		return screen.Navigate(screen.ToHome{}), nil

	case sess.StepComplete:
		summary := sess.BuildSummary(s.session)
		s.logger.Info("session completed",
			"correct", summary.Correct,
			"incorrect", summary.Incorrect,
			"elapsed_ms", summary.Elapsed.Milliseconds())
		return screen.Navigate(screen.ToResult{Summary: summary}), nil
	}

	if wasPaused != s.session.Paused() {
		s.logger.Debug("pause toggled", "paused", s.session.Paused())
		return screen.Stay(), nil
	}
	s.syncInput()
	return screen.Stay(), nil
}

// syncInput mirrors the session's buffer and indication into the editor
// after a submit or hint.
func (s *StudyScreen) syncInput() {
	if s.session.Input() == "" {
		s.input.Reset()
	}
	if s.session.Indication() == sess.IndicationWrong {
		s.input.Mark(false)
	}
}

// classify maps a key press to a session event.
func classify(msg tea.KeyMsg) sess.Event {
	switch msg.String() {
	case "ctrl+p", "pause":
		return sess.EventPause
	case "esc":
		return sess.EventEscape
	case "enter":
		return sess.EventSubmit
	case "space":
		return sess.EventHint
	}
	return sess.EventEdit
}
