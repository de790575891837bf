package overlay

import (
	"github.com/go-anchor/anchor/pkg/errors"
	"github.com/go-anchor/anchor/pkg/geometry"
	"github.com/go-anchor/anchor/pkg/placement"
)

// ControllerOptions configures [NewController].
type ControllerOptions struct {
	// Config is the overlay's immutable configuration.
	Config Config
	// Mode selects which interactions drive the lifecycle.
	Mode TriggerMode
	// Measurer supplies live geometry. Required for rendering; a nil
	// measurer leaves the controller permanently not-ready.
	Measurer Measurer
	// Environment supplies viewport/interaction subscriptions while
	// visible. Optional; nil disables the watcher.
	Environment Environment
	// Adapter renders the overlay. Optional; nil disables rendering.
	Adapter RenderAdapter
	// Timers creates the show-delay timer. Defaults to system timers
	// with inline callbacks.
	Timers Timers
	// OnTransition observes every state change, in order. Optional.
	OnTransition func(from, to VisibilityState)
}

// Controller is the visibility state machine for one overlay instance.
//
// Each controller owns its own timer handle and subscription set; no
// state is shared between instances. Methods are not safe for concurrent
// use - call them from the owning UI event loop.
type Controller struct {
	cfg          Config
	mode         TriggerMode
	measurer     Measurer
	env          Environment
	adapter      RenderAdapter
	timers       Timers
	onTransition func(from, to VisibilityState)

	state       VisibilityState
	timer       Timer
	cancels     []CancelFunc
	lastResult  placement.Result
	overlaySize geometry.Size
	placed      bool
	disposed    bool
}

// NewController creates an idle controller. Malformed configuration is
// repaired via defaults (negative delay floored at 0) rather than
// rejected.
func NewController(opts ControllerOptions) *Controller {
	timers := opts.Timers
	if timers == nil {
		timers = NewSystemTimers(nil)
	}
	return &Controller{
		cfg:          opts.Config.withDefaults(opts.Mode),
		mode:         opts.Mode,
		measurer:     opts.Measurer,
		env:          opts.Environment,
		adapter:      opts.Adapter,
		timers:       timers,
		onTransition: opts.OnTransition,
		state:        StateIdle,
	}
}

// State returns the current visibility state.
func (c *Controller) State() VisibilityState {
	return c.state
}

// Config returns the normalized configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Mode returns the trigger mode.
func (c *Controller) Mode() TriggerMode {
	return c.mode
}

// PointerEnter handles a pointer entering the trigger (hover mode only).
func (c *Controller) PointerEnter() {
	if c.mode == TriggerHover {
		c.RequestShow()
	}
}

// PointerLeave handles a pointer leaving the trigger (hover mode only).
func (c *Controller) PointerLeave() {
	if c.mode == TriggerHover {
		c.RequestHide()
	}
}

// Tap handles a tap on the trigger (click mode only). Tapping toggles:
// a visible or pending overlay hides, otherwise the show cycle starts.
func (c *Controller) Tap() {
	if c.mode != TriggerClick {
		return
	}
	if c.state == StateVisible || c.state == StatePendingShow {
		c.RequestHide()
		return
	}
	c.RequestShow()
}

// Focus handles the trigger gaining focus (focus mode only).
func (c *Controller) Focus() {
	if c.mode == TriggerFocus {
		c.RequestShow()
	}
}

// Blur handles the trigger losing focus (focus mode only).
func (c *Controller) Blur() {
	if c.mode == TriggerFocus {
		c.RequestHide()
	}
}

// RequestShow starts the show cycle regardless of trigger mode. From
// idle it enters pending-show and starts the delay timer; a repeated
// request while pending restarts the timer. No-op while visible.
func (c *Controller) RequestShow() {
	if c.disposed || c.state == StateVisible {
		return
	}
	c.cancelTimer()
	c.transition(StatePendingShow)
	if c.cfg.ShowDelay <= 0 {
		c.onDelayElapsed()
		return
	}
	c.timer = c.timers.AfterFunc(c.cfg.ShowDelay, c.onDelayElapsed)
}

// RequestHide cancels a pending show or dismisses a visible overlay.
// A hide always pre-empts a pending show: the timer is cancelled before
// it can fire.
func (c *Controller) RequestHide() {
	if c.disposed {
		return
	}
	switch c.state {
	case StatePendingShow:
		c.cancelTimer()
		c.transition(StateIdle)
	case StateVisible:
		c.hide()
	}
}

// Refresh re-resolves placement while visible, e.g. after the overlay
// content was re-measured. No-op in any other state.
func (c *Controller) Refresh() {
	if c.disposed || c.state != StateVisible {
		return
	}
	c.resolveAndRender()
}

// Placement returns the most recent placement result. Its Ready flag is
// false until a successful resolution has happened.
func (c *Controller) Placement() placement.Result {
	return c.lastResult
}

// Dispose force-cancels any pending timer, releases all environment
// subscriptions, and removes the overlay if rendered. Idempotent. The
// controller ignores all interactions afterwards.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.cancelTimer()
	c.detachWatcher()
	c.hideRendered()
	switch c.state {
	case StateVisible:
		c.transition(StateHidden)
		c.transition(StateIdle)
	case StatePendingShow, StateHidden:
		c.transition(StateIdle)
	}
	c.disposed = true
}

// onDelayElapsed fires when the show delay passes without a cancel.
func (c *Controller) onDelayElapsed() {
	if c.disposed || c.state != StatePendingShow {
		return // stale fire after a cancel or dispose
	}
	c.timer = nil
	c.transition(StateVisible)
	c.resolveAndRender()
	c.attachWatcher()
}

// resolveAndRender measures, resolves, and hands the result to the
// adapter. Not-ready measurements skip rendering entirely: the overlay
// must never appear at an implicit (0,0).
func (c *Controller) resolveAndRender() {
	if c.measurer == nil {
		c.hideRendered()
		c.lastResult = placement.Result{}
		return
	}
	size := c.measurer.OverlaySize()
	if c.cfg.MaxWidth > 0 && size.Width > c.cfg.MaxWidth {
		size.Width = c.cfg.MaxWidth
	}
	res := placement.Resolve(placement.Request{
		Trigger:  c.measurer.TriggerRect(),
		Overlay:  size,
		Side:     c.cfg.Side,
		Viewport: c.measurer.Viewport(),
		Margin:   c.cfg.Margin,
	})
	c.lastResult = res
	if !res.Ready {
		c.hideRendered()
		return
	}
	c.overlaySize = size
	if c.adapter != nil {
		defer errors.Recover("overlay.show")
		c.adapter.Show(c.cfg, res)
		c.placed = true
	}
}

// hide is the single exit path from StateVisible.
func (c *Controller) hide() {
	c.detachWatcher()
	c.hideRendered()
	c.transition(StateHidden)
	c.transition(StateIdle)
}

func (c *Controller) hideRendered() {
	if !c.placed {
		return
	}
	c.placed = false
	defer errors.Recover("overlay.hide")
	c.adapter.Hide()
}

// attachWatcher acquires the environment subscriptions for the current
// visible period. Attached exactly once per entry into StateVisible.
func (c *Controller) attachWatcher() {
	if c.env == nil || len(c.cancels) > 0 {
		return
	}
	c.cancels = append(c.cancels,
		c.env.OnResize(c.onResize),
		c.env.OnScroll(c.onScroll),
	)
	if c.mode == TriggerClick {
		c.cancels = append(c.cancels, c.env.OnPointerDown(c.onPointerDown))
	}
}

// detachWatcher releases every subscription. Runs on every exit path
// from StateVisible, including Dispose; safe to call when detached.
func (c *Controller) detachWatcher() {
	for _, cancel := range c.cancels {
		if cancel != nil {
			cancel()
		}
	}
	c.cancels = nil
}

func (c *Controller) cancelTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// onResize recomputes placement with fresh measurements. The side may
// change as available space changes; visibility state does not.
func (c *Controller) onResize(geometry.Size) {
	if c.state != StateVisible {
		return
	}
	c.resolveAndRender()
}

// onScroll dismisses the overlay. A scrolled-away trigger has likely
// moved or disappeared, and per-frame recomputation is disproportionate
// for a tooltip, so dismiss-on-scroll is the deliberate behavior.
func (c *Controller) onScroll() {
	if c.state != StateVisible {
		return
	}
	c.hide()
}

// onPointerDown dismisses click-triggered overlays on presses outside
// both the trigger and the overlay. Presses on the trigger are left to
// Tap, which owns the toggle.
func (c *Controller) onPointerDown(pos geometry.Offset) {
	if c.state != StateVisible {
		return
	}
	if c.measurer != nil && c.measurer.TriggerRect().Contains(pos) {
		return
	}
	if c.lastResult.Ready && c.lastResult.OverlayRect(c.overlaySize).Contains(pos) {
		return
	}
	c.hide()
}

// transition moves to a new state and notifies the observer. Same-state
// transitions are collapsed.
func (c *Controller) transition(to VisibilityState) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}
