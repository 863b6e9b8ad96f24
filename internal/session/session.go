package session

import "github.com/abhisek/kanatui/internal/kana"

// Step applies one classified key event to the session. Rules are checked in
// order and the first match wins:
//
//  1. pause, or any event while paused, toggles the pause state
//  2. escape abandons the session
//  3. submit checks the input buffer against the current kana
//  4. hint reveals the answer, or advances when it is already revealed
//  5. anything else edits the input buffer
//
// Once the session is completed every event is ignored.
func (s *Session) Step(ev Event) Step {
	if s.completed {
		return StepStay
	}

	if ev == EventPause || s.paused {
		s.togglePause()
		return StepStay
	}

	switch ev {
	case EventEscape:
		return StepAbandon
	case EventSubmit:
		return s.submit()
	case EventHint:
		return s.hint()
	}
	return StepEdit
}

func (s *Session) togglePause() {
	s.timer.Toggle()
	s.paused = !s.paused
}

// submit checks the input buffer. A rejected attempt is discarded, not kept
// for editing.
func (s *Session) submit() Step {
	if kana.IsCorrect(s.current, s.input) {
		s.record(s.current, Correct)
		return s.advance()
	}
	s.indication = IndicationWrong
	s.record(s.current, Incorrect)
	s.input = ""
	return StepStay
}

// hint reveals the answer on first press, scoring the kana as incorrect. A
// second press while the answer is shown moves on without checking input.
func (s *Session) hint() Step {
	if s.indication == IndicationHint {
		return s.advance()
	}
	s.indication = IndicationHint
	s.record(s.current, Incorrect)
	return StepStay
}

// record appends an outcome unless k already has one.
func (s *Session) record(k kana.Kana, v Verdict) {
	if s.logged[k] {
		return
	}
	s.logged[k] = true
	s.outcomes = append(s.outcomes, Outcome{Kana: k, Verdict: v})
}

// advance moves to the next queued kana, or completes the session and
// freezes the timer when the queue is empty.
func (s *Session) advance() Step {
	s.indication = IndicationNone
	s.input = ""

	if len(s.queue) == 0 {
		s.timer.Stop()
		s.completed = true
		return StepComplete
	}

	s.current = s.queue[0]
	s.queue = s.queue[1:]
	return StepStay
}
