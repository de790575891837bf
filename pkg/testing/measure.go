package testing

import "github.com/go-anchor/anchor/pkg/geometry"

// StubMeasurer implements overlay.Measurer with fixed values that tests
// mutate directly between pumps.
type StubMeasurer struct {
	Trigger geometry.Rect
	Overlay geometry.Size
	View    geometry.Size
}

// TriggerRect returns the stubbed trigger bounds.
func (m *StubMeasurer) TriggerRect() geometry.Rect { return m.Trigger }

// OverlaySize returns the stubbed overlay content size.
func (m *StubMeasurer) OverlaySize() geometry.Size { return m.Overlay }

// Viewport returns the stubbed viewport size.
func (m *StubMeasurer) Viewport() geometry.Size { return m.View }

// DefaultMeasurer returns a measurer with a centered 40x20 trigger, a
// 200x80 overlay, and an 800x600 viewport.
func DefaultMeasurer() *StubMeasurer {
	return &StubMeasurer{
		Trigger: geometry.RectFromLTWH(380, 290, 40, 20),
		Overlay: geometry.Size{Width: 200, Height: 80},
		View:    geometry.Size{Width: 800, Height: 600},
	}
}
