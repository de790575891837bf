// Package testing provides deterministic test doubles for the anchor
// engine's boundary interfaces.
//
// # Quick Start
//
// Build a controller entirely from fakes and drive it synchronously:
//
//	func TestShowCycle(t *testing.T) {
//	    timers := anchortest.NewManualTimers()
//	    env := anchortest.NewFakeEnvironment()
//	    adapter := &anchortest.RecordingAdapter{}
//
//	    ctrl := overlay.NewController(overlay.ControllerOptions{
//	        Mode:        overlay.TriggerHover,
//	        Measurer:    anchortest.DefaultMeasurer(),
//	        Environment: env,
//	        Adapter:     adapter,
//	        Timers:      timers,
//	    })
//	    defer ctrl.Dispose()
//
//	    ctrl.PointerEnter()
//	    timers.FireAll() // the show delay elapses
//
//	    if !adapter.Visible() {
//	        t.Error("expected overlay to be shown")
//	    }
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import anchortest "github.com/go-anchor/anchor/pkg/testing"
package testing
