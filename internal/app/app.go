package app

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanatui/internal/config"
	"github.com/abhisek/kanatui/internal/router"
	"github.com/abhisek/kanatui/internal/screen"
	"github.com/abhisek/kanatui/internal/screens/configure"
	"github.com/abhisek/kanatui/internal/screens/home"
	"github.com/abhisek/kanatui/internal/screens/result"
	"github.com/abhisek/kanatui/internal/screens/study"
	"github.com/abhisek/kanatui/internal/session"
	"github.com/abhisek/kanatui/internal/ui/layout"
)

// Options carries the collaborators injected at startup.
type Options struct {
	// Config holds the active settings. Required.
	Config *config.Handle
	// Logger receives navigation and session events. Nil discards.
	Logger *slog.Logger
	// Rand drives plan shuffles. Nil uses a time-seeded source.
	Rand *rand.Rand
	// Clock drives session timers. Nil uses time.Now.
	Clock session.Clock
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	cfg     *config.Handle
	planner session.Planner
	clock   session.Clock
	logger  *slog.Logger
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the home screen.
func newAppModel(opts Options) *AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewHandle(nil, config.Defaults())
	}

	m := &AppModel{
		cfg:     cfg,
		planner: session.NewPlanner(opts.Rand),
		clock:   opts.Clock,
		logger:  logger,
	}
	m.router = router.New(m.build(screen.ToHome{}), m.build, logger)
	return m
}

// build constructs the page for a destination.
func (m *AppModel) build(dest screen.Destination) screen.Screen {
	switch d := dest.(type) {
	case screen.ToHome:
		return home.New(m.cfg)
	case screen.ToConfigure:
		return configure.New(m.cfg, m.logger)
	case screen.ToStudy:
		return study.New(m.cfg, m.planner, m.clock, m.logger)
	case screen.ToResult:
		return result.New(d.Summary)
	}
	panic(fmt.Sprintf("app: unknown destination %T", dest))
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.logger.Info("hard quit")
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.cfg.Settings().Representation().Label(), m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m *AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.logger.Info("app started")

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		m.logger.Error("program failed", "error", err)
		return fmt.Errorf("run program: %w", err)
	}

	m.logger.Info("app stopped")
	return nil
}
