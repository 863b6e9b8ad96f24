package session

import "time"

// Clock returns the current instant. Tests inject a fake.
type Clock func() time.Time

// Timer accumulates elapsed time across pause/resume cycles.
type Timer struct {
	clock       Clock
	running     bool
	start       time.Time
	accumulated time.Duration
}

// NewTimer returns a running timer. A nil clock uses time.Now.
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = time.Now
	}
	return &Timer{
		clock:   clock,
		running: true,
		start:   clock(),
	}
}

// Toggle stops a running timer, folding the running span into the total,
// or restarts a stopped one.
func (t *Timer) Toggle() {
	if t.running {
		t.accumulated += t.span()
		t.running = false
		return
	}
	t.start = t.clock()
	t.running = true
}

// Stop freezes the timer. It is a no-op when already stopped.
func (t *Timer) Stop() {
	if t.running {
		t.Toggle()
	}
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed returns the total counted time. It does not mutate the timer.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.accumulated + t.span()
	}
	return t.accumulated
}

// ElapsedMs returns Elapsed in whole milliseconds.
func (t *Timer) ElapsedMs() int64 {
	return t.Elapsed().Milliseconds()
}

// span is the time since start; a clock stepping backwards counts as zero.
func (t *Timer) span() time.Duration {
	d := t.clock().Sub(t.start)
	if d < 0 {
		return 0
	}
	return d
}
