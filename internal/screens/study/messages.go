package study

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// tickInterval is how often the timer display is refreshed.
const tickInterval = 250 * time.Millisecond

// timerTickMsg forces a re-render. It carries the session ID so that a tick
// chain started by an abandoned session stops on its own.
type timerTickMsg struct {
	SessionID string
	At        time.Time
}

func tickCmd(sessionID string) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg{SessionID: sessionID, At: t}
	})
}
