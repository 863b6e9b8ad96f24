package router

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanatui/internal/screen"
)

// Factory builds the page for a destination.
type Factory func(dest screen.Destination) screen.Screen

// Router owns the single live screen and applies page transitions.
type Router struct {
	active  screen.Screen
	factory Factory
	logger  *slog.Logger
	done    bool
}

// New creates a new Router with the given initial screen. A nil logger
// discards navigation logs.
func New(initial screen.Screen, factory Factory, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Router{
		active:  initial,
		factory: factory,
		logger:  logger,
	}
}

// Init runs the initial screen's Init.
func (r *Router) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// Active returns the live screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Done reports whether a Terminate transition has been applied.
func (r *Router) Done() bool {
	return r.done
}

// Update forwards a message to the active screen and applies the transition
// it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil || r.done {
		return nil
	}

	t, cmd := r.active.Update(msg)
	return tea.Batch(cmd, r.Apply(t))
}

// Apply performs a transition. On Navigate the old screen is dropped and the
// new screen's Init command is returned; on Terminate the program quits.
func (r *Router) Apply(t screen.Transition) tea.Cmd {
	switch t.Kind {
	case screen.KindNavigate:
		if t.To == nil || r.factory == nil {
			r.logger.Error("navigation without destination or factory")
			return nil
		}
		from := ""
		if r.active != nil {
			from = r.active.Title()
		}
		r.active = r.factory(t.To)
		r.logger.Info("navigate", "from", from, "to", t.To.Name())
		return r.active.Init()

	case screen.KindTerminate:
		r.done = true
		r.logger.Info("terminate")
		return tea.Quit
	}
	return nil
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
