package session

import (
	"time"

	"github.com/abhisek/kanatui/internal/kana"

	"github.com/google/uuid"
)

// Indication is the overlay shown for the current kana.
type Indication int

const (
	IndicationNone  Indication = iota // Nothing shown
	IndicationWrong                   // Last submission was rejected
	IndicationHint                    // Answer revealed for the current kana
)

// Verdict is the scored outcome for one kana.
type Verdict int

const (
	Correct Verdict = iota
	Incorrect
)

func (v Verdict) String() string {
	if v == Correct {
		return "correct"
	}
	return "incorrect"
}

// Outcome pairs a kana with the first verdict recorded for it.
type Outcome struct {
	Kana    kana.Kana
	Verdict Verdict
}

// Event is a key press classified by the study page.
type Event int

const (
	EventPause  Event = iota // Pause key or its modifier combo
	EventEscape              // Abandon the session
	EventSubmit              // Check the input buffer
	EventHint                // Reveal, or acknowledge a revealed answer
	EventEdit                // Anything else; edits the input buffer
)

// Step tells the page what to do after an event.
type Step int

const (
	StepStay     Step = iota // Re-render only
	StepEdit                 // Forward the key to the input editor
	StepAbandon              // Leave without a result
	StepComplete             // Queue exhausted; Summary is final
)

// Session tracks one run through a plan.
type Session struct {
	id             string
	representation kana.Representation

	current kana.Kana
	queue   []kana.Kana
	total   int

	outcomes []Outcome
	logged   map[kana.Kana]bool

	timer      *Timer
	input      string
	indication Indication
	paused     bool
	completed  bool
}

// New starts a session over plan. The first planned kana becomes current and
// the timer starts running. An empty plan is a programming error.
func New(plan Plan, rep kana.Representation, clock Clock) *Session {
	if plan.Len() == 0 {
		panic("session: empty plan")
	}
	queue := make([]kana.Kana, plan.Len()-1)
	copy(queue, plan.Kana[1:])

	return &Session{
		id:             uuid.New().String(),
		representation: rep,
		current:        plan.Kana[0],
		queue:          queue,
		total:          plan.Len(),
		logged:         make(map[kana.Kana]bool, plan.Len()),
		timer:          NewTimer(clock),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Representation returns the writing system being drilled.
func (s *Session) Representation() kana.Representation { return s.representation }

// Current returns the kana awaiting an answer.
func (s *Session) Current() kana.Kana { return s.current }

// Glyph returns the current kana in the drilled writing system.
func (s *Session) Glyph() string { return s.current.Glyph(s.representation) }

// AlternateGlyph returns the current kana in the other writing system.
func (s *Session) AlternateGlyph() string { return s.current.Glyph(s.representation.Other()) }

// Answer returns the canonical romaji of the current kana.
func (s *Session) Answer() string { return s.current.String() }

// Input returns the text typed so far.
func (s *Session) Input() string { return s.input }

// SetInput replaces the input buffer with the editor's value.
func (s *Session) SetInput(v string) {
	if s.paused || s.completed {
		return
	}
	s.input = v
}

// Indication returns the overlay for the current kana.
func (s *Session) Indication() Indication { return s.indication }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Completed reports whether every kana has been resolved.
func (s *Session) Completed() bool { return s.completed }

// Elapsed returns the time spent unpaused.
func (s *Session) Elapsed() time.Duration { return s.timer.Elapsed() }

// Total returns the number of kana in the session.
func (s *Session) Total() int { return s.total }

// Remaining returns how many kana are still queued behind the current one.
func (s *Session) Remaining() int { return len(s.queue) }

// Log returns a copy of the outcome log in resolution order.
func (s *Session) Log() []Outcome {
	out := make([]Outcome, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}

// Correct returns the number of kana scored correct so far.
func (s *Session) Correct() int { return s.count(Correct) }

// Incorrect returns the number of kana scored incorrect so far.
func (s *Session) Incorrect() int { return s.count(Incorrect) }

func (s *Session) count(v Verdict) int {
	n := 0
	for _, o := range s.outcomes {
		if o.Verdict == v {
			n++
		}
	}
	return n
}
