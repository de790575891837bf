package overlay_test

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/go-anchor/anchor/pkg/geometry"
	"github.com/go-anchor/anchor/pkg/overlay"
	"github.com/go-anchor/anchor/pkg/placement"
	anchortest "github.com/go-anchor/anchor/pkg/testing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// harness bundles a controller with all its fakes.
type harness struct {
	ctrl        *overlay.Controller
	timers      *anchortest.ManualTimers
	env         *anchortest.FakeEnvironment
	adapter     *anchortest.RecordingAdapter
	measurer    *anchortest.StubMeasurer
	transitions []string
}

func newHarness(t *testing.T, cfg overlay.Config, mode overlay.TriggerMode) *harness {
	t.Helper()
	h := &harness{
		timers:   anchortest.NewManualTimers(),
		env:      anchortest.NewFakeEnvironment(),
		adapter:  &anchortest.RecordingAdapter{},
		measurer: anchortest.DefaultMeasurer(),
	}
	h.ctrl = overlay.NewController(overlay.ControllerOptions{
		Config:      cfg,
		Mode:        mode,
		Measurer:    h.measurer,
		Environment: h.env,
		Adapter:     h.adapter,
		Timers:      h.timers,
		OnTransition: func(from, to overlay.VisibilityState) {
			h.transitions = append(h.transitions, from.String()+">"+to.String())
		},
	})
	t.Cleanup(h.ctrl.Dispose)
	return h
}

func TestController_HoverShowAfterDelay(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	h.ctrl.PointerEnter()
	if h.ctrl.State() != overlay.StatePendingShow {
		t.Fatalf("expected pending-show, got %v", h.ctrl.State())
	}
	if h.timers.Pending() != 1 {
		t.Fatalf("expected 1 pending timer, got %d", h.timers.Pending())
	}
	if h.adapter.Visible() {
		t.Error("overlay must not render before the delay elapses")
	}

	h.timers.FireAll()

	if h.ctrl.State() != overlay.StateVisible {
		t.Fatalf("expected visible, got %v", h.ctrl.State())
	}
	if !h.adapter.Visible() {
		t.Fatal("expected adapter.Show to have been called")
	}
	res := h.adapter.LastShow().Result
	if !res.Ready {
		t.Fatal("expected a ready placement")
	}
	if res.Side == placement.SideAuto {
		t.Error("resolved side must never be auto")
	}
}

func TestController_HoverUsesDefaultDelay(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	h.ctrl.PointerEnter()

	if h.timers.Pending() != 1 {
		t.Fatalf("expected 1 pending timer, got %d", h.timers.Pending())
	}
	if got := h.ctrl.Config().ShowDelay; got != overlay.DefaultHoverDelay {
		t.Errorf("expected default hover delay %v, got %v", overlay.DefaultHoverDelay, got)
	}
}

func TestController_NegativeDelayFlooredAtZero(t *testing.T) {
	h := newHarness(t, overlay.Config{ShowDelay: -3 * time.Second}, overlay.TriggerClick)

	h.ctrl.Tap()

	// Floored delay means the overlay shows in the same turn, no timer.
	if h.ctrl.State() != overlay.StateVisible {
		t.Fatalf("expected visible, got %v", h.ctrl.State())
	}
	if h.timers.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", h.timers.Pending())
	}
}

func TestController_HideBeforeDelayNeverShows(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	h.ctrl.PointerEnter()
	h.ctrl.PointerLeave()

	if h.ctrl.State() != overlay.StateIdle {
		t.Fatalf("expected idle, got %v", h.ctrl.State())
	}

	// A stale timer fire must not resurrect the show.
	h.timers.FireAll()

	if h.ctrl.State() != overlay.StateIdle {
		t.Errorf("stale timer fire changed state to %v", h.ctrl.State())
	}
	if len(h.adapter.Shows) != 0 {
		t.Error("no geometry resolution may happen for a cancelled show")
	}
	if h.env.ActiveSubscriptions() != 0 {
		t.Errorf("no listeners may attach for a cancelled show, got %d", h.env.ActiveSubscriptions())
	}
}

func TestController_RepeatedShowRestartsTimer(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	h.ctrl.PointerEnter()
	h.ctrl.PointerEnter()

	// The first timer is stopped; exactly one remains pending.
	if h.timers.Pending() != 1 {
		t.Errorf("expected exactly 1 pending timer, got %d", h.timers.Pending())
	}
}

func TestController_WatcherAttachesOncePerVisiblePeriod(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	for i := 0; i < 3; i++ {
		h.ctrl.PointerEnter()
		h.timers.FireAll()
		if h.ctrl.State() != overlay.StateVisible {
			t.Fatalf("cycle %d: expected visible, got %v", i, h.ctrl.State())
		}
		// Hover mode subscribes to resize and scroll only.
		if h.env.ActiveSubscriptions() != 2 {
			t.Fatalf("cycle %d: expected 2 subscriptions, got %d", i, h.env.ActiveSubscriptions())
		}
		h.ctrl.PointerLeave()
		if h.env.ActiveSubscriptions() != 0 {
			t.Fatalf("cycle %d: expected 0 subscriptions after hide, got %d", i, h.env.ActiveSubscriptions())
		}
	}
}

func TestController_ClickModeSubscribesPointerDown(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerClick)

	h.ctrl.Tap()

	if h.ctrl.State() != overlay.StateVisible {
		t.Fatalf("expected visible, got %v", h.ctrl.State())
	}
	if h.env.ActiveSubscriptions() != 3 {
		t.Errorf("expected resize+scroll+pointerdown subscriptions, got %d", h.env.ActiveSubscriptions())
	}
}

func TestController_OutsidePointerDownHidesClickOverlay(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerClick)

	h.ctrl.Tap()
	if h.ctrl.State() != overlay.StateVisible {
		t.Fatalf("expected visible, got %v", h.ctrl.State())
	}

	// Inside the trigger: ignored, Tap owns the toggle.
	h.env.EmitPointerDown(h.measurer.Trigger.Center())
	if h.ctrl.State() != overlay.StateVisible {
		t.Fatal("pointer-down on the trigger must not dismiss")
	}

	// Inside the overlay: ignored.
	inOverlay := h.ctrl.Placement().OverlayRect(h.measurer.Overlay).Center()
	h.env.EmitPointerDown(inOverlay)
	if h.ctrl.State() != overlay.StateVisible {
		t.Fatal("pointer-down inside the overlay must not dismiss")
	}

	// Outside both: dismissed within the same event turn.
	h.env.EmitPointerDown(geometry.Offset{X: 1, Y: 1})
	if h.ctrl.State() != overlay.StateIdle {
		t.Errorf("expected idle after outside pointer-down, got %v", h.ctrl.State())
	}
	if h.adapter.Visible() {
		t.Error("expected adapter.Hide after outside pointer-down")
	}
}

func TestController_HoverModeIgnoresPointerDown(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	h.ctrl.PointerEnter()
	h.timers.FireAll()

	h.env.EmitPointerDown(geometry.Offset{X: 1, Y: 1})

	if h.ctrl.State() != overlay.StateVisible {
		t.Errorf("hover overlays must not dismiss on outside pointer-down, got %v", h.ctrl.State())
	}
}

func TestController_ScrollDismisses(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	h.ctrl.PointerEnter()
	h.timers.FireAll()

	h.env.EmitScroll()

	if h.ctrl.State() != overlay.StateIdle {
		t.Fatalf("expected idle after scroll, got %v", h.ctrl.State())
	}
	if h.env.ActiveSubscriptions() != 0 {
		t.Errorf("expected all subscriptions released, got %d", h.env.ActiveSubscriptions())
	}
	if h.adapter.Visible() {
		t.Error("expected overlay hidden after scroll")
	}
}

func TestController_ResizeRecomputesWithoutStateChange(t *testing.T) {
	h := newHarness(t, overlay.Config{Side: placement.SideAuto}, overlay.TriggerHover)
	// Trigger near the top so auto picks bottom initially.
	h.measurer.Trigger = geometry.RectFromLTWH(500, 10, 40, 20)

	h.ctrl.PointerEnter()
	h.timers.FireAll()

	if got := h.adapter.LastShow().Result.Side; got != placement.SideBottom {
		t.Fatalf("expected bottom, got %v", got)
	}

	// Shrink the viewport so only the left side has room.
	h.measurer.Trigger = geometry.RectFromLTWH(620, 0, 40, 400)
	h.measurer.View = geometry.Size{Width: 820, Height: 400}
	h.env.EmitResize(h.measurer.View)

	if h.ctrl.State() != overlay.StateVisible {
		t.Errorf("resize must not change visibility state, got %v", h.ctrl.State())
	}
	if got := h.adapter.LastShow().Result.Side; got != placement.SideLeft {
		t.Errorf("expected side to flip to left after resize, got %v", got)
	}
	if len(h.adapter.Shows) != 2 {
		t.Errorf("expected 2 Show calls, got %d", len(h.adapter.Shows))
	}
}

func TestController_NotReadyMeasurementSkipsRender(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)
	h.measurer.Overlay = geometry.Size{} // content not measured yet

	h.ctrl.PointerEnter()
	h.timers.FireAll()

	if h.ctrl.State() != overlay.StateVisible {
		t.Fatalf("expected visible, got %v", h.ctrl.State())
	}
	if len(h.adapter.Shows) != 0 {
		t.Error("a not-ready placement must never reach the adapter")
	}
	if h.ctrl.Placement().Ready {
		t.Error("expected not-ready placement result")
	}

	// Once measured, a refresh renders at real coordinates.
	h.measurer.Overlay = geometry.Size{Width: 200, Height: 80}
	h.ctrl.Refresh()

	if !h.adapter.Visible() {
		t.Error("expected overlay rendered after re-measure")
	}
}

func TestController_MaxWidthCapsOverlay(t *testing.T) {
	h := newHarness(t, overlay.Config{MaxWidth: 150}, overlay.TriggerHover)
	h.measurer.Overlay = geometry.Size{Width: 400, Height: 80}

	h.ctrl.PointerEnter()
	h.timers.FireAll()

	res := h.adapter.LastShow().Result
	rect := res.OverlayRect(geometry.Size{Width: 150, Height: 80})
	if rect.Width() != 150 {
		t.Errorf("expected capped width 150, got %v", rect.Width())
	}
}

func TestController_DisposeWhileVisibleReleasesEverything(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerClick)

	h.ctrl.Tap()
	if h.ctrl.State() != overlay.StateVisible {
		t.Fatalf("expected visible, got %v", h.ctrl.State())
	}

	h.ctrl.Dispose()

	if h.env.ActiveSubscriptions() != 0 {
		t.Errorf("expected zero residual listeners, got %d", h.env.ActiveSubscriptions())
	}
	if h.timers.Pending() != 0 {
		t.Errorf("expected zero pending timers, got %d", h.timers.Pending())
	}
	if h.adapter.Visible() {
		t.Error("expected overlay removed on dispose")
	}

	// Interactions after dispose are ignored.
	h.ctrl.Tap()
	if h.ctrl.State() != overlay.StateIdle {
		t.Errorf("disposed controller must stay idle, got %v", h.ctrl.State())
	}
}

func TestController_DisposeWhilePendingCancelsTimer(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	h.ctrl.PointerEnter()
	h.ctrl.Dispose()

	if h.timers.Pending() != 0 {
		t.Errorf("expected zero pending timers, got %d", h.timers.Pending())
	}

	h.timers.FireAll()
	if len(h.adapter.Shows) != 0 {
		t.Error("disposed controller must never render")
	}
}

func TestController_TransitionAudit(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerHover)

	h.ctrl.PointerEnter()
	h.timers.FireAll()
	h.ctrl.PointerLeave()

	want := []string{
		"idle>pending-show",
		"pending-show>visible",
		"visible>hidden",
		"hidden>idle",
	}
	if len(h.transitions) != len(want) {
		t.Fatalf("expected %d transitions, got %v", len(want), h.transitions)
	}
	for i, tr := range want {
		if h.transitions[i] != tr {
			t.Errorf("transition %d: expected %q, got %q", i, tr, h.transitions[i])
		}
	}
}

func TestController_FocusMode(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerFocus)

	h.ctrl.Focus()
	// Focus triggers default to no delay.
	if h.ctrl.State() != overlay.StateVisible {
		t.Fatalf("expected visible on focus, got %v", h.ctrl.State())
	}

	h.ctrl.Blur()
	if h.ctrl.State() != overlay.StateIdle {
		t.Errorf("expected idle on blur, got %v", h.ctrl.State())
	}

	// Hover/click interactions are ignored in focus mode.
	h.ctrl.PointerEnter()
	h.ctrl.Tap()
	if h.ctrl.State() != overlay.StateIdle {
		t.Errorf("expected idle, got %v", h.ctrl.State())
	}
}

func TestController_TapTogglesClickOverlay(t *testing.T) {
	h := newHarness(t, overlay.Config{}, overlay.TriggerClick)

	h.ctrl.Tap()
	if h.ctrl.State() != overlay.StateVisible {
		t.Fatalf("expected visible after tap, got %v", h.ctrl.State())
	}

	h.ctrl.Tap()
	if h.ctrl.State() != overlay.StateIdle {
		t.Errorf("expected idle after second tap, got %v", h.ctrl.State())
	}
}

func TestController_SystemTimersDeliverCallback(t *testing.T) {
	// One real-timer test to cover the default Timers path; everything
	// else uses ManualTimers.
	fired := make(chan struct{})
	timers := overlay.NewSystemTimers(nil)
	timer := timers.AfterFunc(time.Millisecond, func() { close(fired) })
	defer timer.Stop()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
