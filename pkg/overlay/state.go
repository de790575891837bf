package overlay

// VisibilityState identifies where a controller is in its show/hide
// lifecycle. The state is owned exclusively by [Controller]; the
// placement resolver and the environment watcher are stateless with
// respect to it.
type VisibilityState int

const (
	// StateIdle means no overlay is rendered and no show is pending.
	StateIdle VisibilityState = iota
	// StatePendingShow means a show interaction arrived and the delay
	// timer is running.
	StatePendingShow
	// StateVisible means the overlay is placed and the environment
	// watcher is active.
	StateVisible
	// StateHidden is the transient exit from StateVisible. It collapses
	// to StateIdle immediately; the distinction exists only so
	// transition observers can audit dismissals.
	StateHidden
)

func (s VisibilityState) String() string {
	switch s {
	case StatePendingShow:
		return "pending-show"
	case StateVisible:
		return "visible"
	case StateHidden:
		return "hidden"
	default:
		return "idle"
	}
}
