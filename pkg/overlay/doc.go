// Package overlay manages the show/hide lifecycle of a single anchored
// overlay: a tooltip-style card positioned next to a trigger element.
//
// # Core Components
//
//   - [Controller]: the visibility state machine. It owns the show-delay
//     timer and the environment subscriptions, and drives one geometry
//     resolution per show or viewport change via [placement.Resolve].
//
//   - [Config]: per-overlay settings (title, content, kind, side
//     preference, delay, max width), supplied once and immutable for the
//     controller's lifetime.
//
//   - Boundary interfaces: [Measurer] reads live trigger/overlay/viewport
//     geometry, [Environment] provides scoped resize/scroll/pointer-down
//     subscriptions, and [RenderAdapter] mounts the overlay content in a
//     layer detached from normal flow.
//
// # Basic Usage
//
//	ctrl := overlay.NewController(overlay.ControllerOptions{
//	    Config:      overlay.Config{Title: "Verdict", Content: "Disputed claim"},
//	    Mode:        overlay.TriggerHover,
//	    Measurer:    measurer,
//	    Environment: env,
//	    Adapter:     adapter,
//	})
//	defer ctrl.Dispose()
//
//	// Wire trigger interactions:
//	ctrl.PointerEnter() // starts the show delay
//	ctrl.PointerLeave() // cancels or hides
//
// All controller methods must be called from the owning UI event loop;
// the controller performs no locking of its own. [NewSystemTimers]
// accepts a dispatch function to route timer callbacks back onto that
// loop.
package overlay
