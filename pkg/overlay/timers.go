package overlay

import "time"

// Timer is a cancellable handle for a pending delayed callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from firing.
	Stop() bool
}

// Timers creates timers. The controller holds at most one pending timer
// at a time; tests can inject a manual implementation to drive the show
// delay deterministically.
type Timers interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// systemTimers wraps time.AfterFunc, optionally routing callbacks
// through a dispatch function so they run on the UI event loop.
type systemTimers struct {
	dispatch func(func())
}

// NewSystemTimers returns a Timers backed by the runtime timer heap.
//
// time.AfterFunc invokes callbacks on their own goroutine, but the
// controller is single-threaded. Pass a dispatch function that schedules
// onto the owning event loop; a nil dispatch invokes callbacks inline
// and is only safe when the caller provides no event loop at all.
func NewSystemTimers(dispatch func(func())) Timers {
	return systemTimers{dispatch: dispatch}
}

func (t systemTimers) AfterFunc(d time.Duration, fn func()) Timer {
	if t.dispatch != nil {
		inner := fn
		fn = func() { t.dispatch(inner) }
	}
	return time.AfterFunc(d, fn)
}
