package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_StartsRunning(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.Now)

	assert.True(t, timer.Running())
	clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, int64(1500), timer.ElapsedMs())
}

func TestTimer_ToggleAccumulates(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.Now)

	clock.Advance(2 * time.Second)
	timer.Toggle()
	assert.False(t, timer.Running())

	clock.Advance(10 * time.Second)
	assert.Equal(t, 2*time.Second, timer.Elapsed(), "stopped timer must not count")

	timer.Toggle()
	clock.Advance(3 * time.Second)
	assert.Equal(t, 5*time.Second, timer.Elapsed())
}

func TestTimer_MonotonicWhileStopped(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.Now)

	var last time.Duration
	for i := 0; i < 10; i++ {
		clock.Advance(time.Duration(i+1) * 100 * time.Millisecond)
		timer.Toggle()
		if !timer.Running() {
			got := timer.Elapsed()
			assert.GreaterOrEqual(t, got, last)
			last = got
		}
	}
}

func TestTimer_InstantResumePauseIsNeutral(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.Now)

	clock.Advance(time.Second)
	timer.Toggle()
	before := timer.Elapsed()

	timer.Toggle()
	timer.Toggle()

	assert.Equal(t, before, timer.Elapsed())
}

func TestTimer_ElapsedDoesNotMutate(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.Now)

	clock.Advance(time.Second)
	first := timer.Elapsed()
	second := timer.Elapsed()

	assert.Equal(t, first, second)
	assert.True(t, timer.Running())
}

func TestTimer_BackwardsClockNeverNegative(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.Now)

	clock.Advance(-5 * time.Second)
	assert.Equal(t, time.Duration(0), timer.Elapsed())

	timer.Toggle()
	assert.Equal(t, time.Duration(0), timer.Elapsed())
}

func TestTimer_StopIsIdempotent(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.Now)

	clock.Advance(time.Second)
	timer.Stop()
	timer.Stop()
	clock.Advance(time.Second)

	assert.False(t, timer.Running())
	assert.Equal(t, time.Second, timer.Elapsed())
}
