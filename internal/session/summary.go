package session

import (
	"time"

	"github.com/abhisek/kanatui/internal/kana"
)

// Summary holds the data displayed on the result page. It is a value copy;
// nothing in it refers back to the session.
type Summary struct {
	SessionID      string
	Representation kana.Representation
	Elapsed        time.Duration
	Correct        int
	Incorrect      int
	Missed         []kana.Kana
}

// Total returns the number of scored kana.
func (s Summary) Total() int {
	return s.Correct + s.Incorrect
}

// Accuracy returns the share of correct answers in [0, 1].
func (s Summary) Accuracy() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total())
}

// BuildSummary extracts the result data from a session.
func BuildSummary(s *Session) Summary {
	var missed []kana.Kana
	correct := 0
	for _, o := range s.outcomes {
		if o.Verdict == Correct {
			correct++
			continue
		}
		missed = append(missed, o.Kana)
	}

	return Summary{
		SessionID:      s.id,
		Representation: s.representation,
		Elapsed:        s.timer.Elapsed(),
		Correct:        correct,
		Incorrect:      len(missed),
		Missed:         missed,
	}
}
