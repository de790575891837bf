package testing

import (
	"time"

	"github.com/go-anchor/anchor/pkg/overlay"
)

// ManualTimer is a timer that fires only when told to.
type ManualTimer struct {
	// Duration is the delay the timer was created with.
	Duration time.Duration

	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer. Reports whether it prevented the callback.
func (t *ManualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Fire invokes the callback unless the timer was stopped or already
// fired.
func (t *ManualTimer) Fire() {
	if t.stopped || t.fired {
		return
	}
	t.fired = true
	t.fn()
}

// ManualTimers implements overlay.Timers with explicit firing, so tests
// control exactly when a show delay elapses. Not safe for concurrent
// use; the engine under test is single-threaded by contract.
type ManualTimers struct {
	timers []*ManualTimer
}

// NewManualTimers returns an empty ManualTimers.
func NewManualTimers() *ManualTimers {
	return &ManualTimers{}
}

// AfterFunc records a timer without scheduling anything.
func (m *ManualTimers) AfterFunc(d time.Duration, fn func()) overlay.Timer {
	t := &ManualTimer{Duration: d, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// FireAll fires every pending timer in creation order. Timers created
// by the callbacks themselves are not fired in this pass.
func (m *ManualTimers) FireAll() {
	pending := m.timers
	m.timers = nil
	for _, t := range pending {
		t.Fire()
	}
}

// Pending returns the number of timers that are neither stopped nor
// fired.
func (m *ManualTimers) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
