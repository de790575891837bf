package overlay

import (
	"github.com/go-anchor/anchor/pkg/geometry"
	"github.com/go-anchor/anchor/pkg/placement"
)

// Measurer reads live geometry from the rendering surface. Measurements
// are taken on demand for each resolution pass and never cached by the
// controller.
type Measurer interface {
	// TriggerRect returns the trigger's bounding box in viewport
	// coordinates. An empty rect means the trigger is not laid out yet.
	TriggerRect() geometry.Rect
	// OverlaySize returns the measured size of the overlay content.
	// An empty size means the content is not measured yet.
	OverlaySize() geometry.Size
	// Viewport returns the current viewport size.
	Viewport() geometry.Size
}

// CancelFunc releases a single environment subscription. It must be
// idempotent.
type CancelFunc func()

// Environment provides scoped subscriptions to viewport and interaction
// events. Each On* call is a scoped acquisition: the returned CancelFunc
// releases exactly that subscription. The controller attaches once per
// entry into the visible state and releases on every exit path.
type Environment interface {
	// OnResize subscribes to viewport size changes.
	OnResize(fn func(geometry.Size)) CancelFunc
	// OnScroll subscribes to scrolls of the page or any scrollable
	// ancestor.
	OnScroll(fn func()) CancelFunc
	// OnPointerDown subscribes to pointer-down events anywhere, in
	// viewport coordinates.
	OnPointerDown(fn func(geometry.Offset)) CancelFunc
}

// RenderAdapter mounts overlay content detached from normal layout flow
// at resolved coordinates. It has no decision logic: the controller
// tells it exactly what to draw and where, including the side to orient
// a directional indicator toward the trigger.
type RenderAdapter interface {
	// Show places the overlay at res. Called again with a new result to
	// reposition while already shown.
	Show(cfg Config, res placement.Result)
	// Hide removes the overlay. Must be a no-op when nothing is shown.
	Hide()
}
