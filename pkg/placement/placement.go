// Package placement computes where an anchored overlay should appear
// relative to its trigger so that it stays inside the viewport.
//
// [Resolve] is a pure function: identical requests always produce
// identical results, and nothing is cached between calls. Callers are
// expected to re-measure trigger and overlay geometry before every
// resolution pass.
package placement

import (
	"math"

	"github.com/go-anchor/anchor/pkg/geometry"
)

// Side identifies the direction an overlay is placed relative to its
// trigger. SideAuto is valid only as a request input; resolved results
// always carry a concrete side.
type Side int

const (
	// SideAuto lets the resolver pick a side based on available space.
	SideAuto Side = iota
	// SideTop places the overlay above the trigger.
	SideTop
	// SideBottom places the overlay below the trigger.
	SideBottom
	// SideRight places the overlay to the right of the trigger.
	SideRight
	// SideLeft places the overlay to the left of the trigger.
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideAuto:
		return "auto"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// autoOrder is the tie-breaking priority for automatic side selection.
var autoOrder = [4]Side{SideTop, SideBottom, SideRight, SideLeft}

// Request describes a single placement resolution. It is treated as
// immutable input; Resolve never modifies it.
type Request struct {
	// Trigger is the anchor element's bounding box in viewport coordinates.
	Trigger geometry.Rect
	// Overlay is the measured size of the overlay content.
	Overlay geometry.Size
	// Side is the requested placement direction, or SideAuto.
	Side Side
	// Viewport is the visible area the overlay must stay within.
	Viewport geometry.Size
	// Margin is the minimum clearance between the overlay and both the
	// trigger and the viewport edges. Negative values are treated as 0.
	Margin float64
}

// Result is the outcome of a resolution: the clamped top-left origin of
// the overlay and the side actually used. The zero Result is not ready.
type Result struct {
	// Offset is the overlay's top-left corner in viewport coordinates.
	Offset geometry.Offset
	// Side is the concrete side the overlay was placed on. Never SideAuto.
	Side Side
	// Ready is false when the request could not be resolved because the
	// trigger or overlay had not been measured yet. Callers must not
	// render a not-ready result.
	Ready bool
}

// OverlayRect returns the rectangle the overlay occupies for a result
// resolved against the given overlay size.
func (r Result) OverlayRect(overlay geometry.Size) geometry.Rect {
	return geometry.RectFromOffsetSize(r.Offset, overlay)
}

// Resolve computes the overlay origin for req.
//
// When req.Side is SideAuto the sides are tried in the fixed priority
// order top, bottom, right, left; the first side with room for the
// overlay plus margin wins. If no side has room the overlay falls back
// to bottom, which may overflow - a deliberate lossy fallback.
//
// The origin is clamped so the overlay keeps Margin clearance from the
// viewport edges. If the overlay is larger than the viewport on an axis
// the origin clamps to Margin from the near edge and the far edge
// overflows; this is reported as a best-effort placement, not an error.
func Resolve(req Request) Result {
	if req.Trigger.IsEmpty() || req.Overlay.IsEmpty() || req.Viewport.IsEmpty() {
		return Result{}
	}

	margin := math.Max(req.Margin, 0)

	side := req.Side
	if side == SideAuto {
		side = autoSide(req, margin)
	}

	origin := candidateOrigin(side, req, margin)
	origin.X = clampAxis(origin.X, req.Overlay.Width, req.Viewport.Width, margin)
	origin.Y = clampAxis(origin.Y, req.Overlay.Height, req.Viewport.Height, margin)

	return Result{Offset: origin, Side: side, Ready: true}
}

// autoSide picks the first side in priority order with enough free space
// for the overlay plus margin, falling back to bottom.
func autoSide(req Request, margin float64) Side {
	space := map[Side]float64{
		SideTop:    req.Trigger.Top,
		SideBottom: req.Viewport.Height - req.Trigger.Bottom,
		SideRight:  req.Viewport.Width - req.Trigger.Right,
		SideLeft:   req.Trigger.Left,
	}
	for _, side := range autoOrder {
		needed := req.Overlay.Height + margin
		if side == SideLeft || side == SideRight {
			needed = req.Overlay.Width + margin
		}
		if space[side] >= needed {
			return side
		}
	}
	return SideBottom
}

// candidateOrigin centers the overlay along the trigger's cross axis and
// offsets it by margin along the main axis of the chosen side.
func candidateOrigin(side Side, req Request, margin float64) geometry.Offset {
	center := req.Trigger.Center()
	switch side {
	case SideTop:
		return geometry.Offset{
			X: center.X - req.Overlay.Width/2,
			Y: req.Trigger.Top - req.Overlay.Height - margin,
		}
	case SideBottom:
		return geometry.Offset{
			X: center.X - req.Overlay.Width/2,
			Y: req.Trigger.Bottom + margin,
		}
	case SideRight:
		return geometry.Offset{
			X: req.Trigger.Right + margin,
			Y: center.Y - req.Overlay.Height/2,
		}
	case SideLeft:
		return geometry.Offset{
			X: req.Trigger.Left - req.Overlay.Width - margin,
			Y: center.Y - req.Overlay.Height/2,
		}
	default:
		return geometry.Offset{}
	}
}

// clampAxis clamps origin v into [margin, total-size-margin]. When the
// interval is inverted (overlay larger than the viewport minus margins)
// the near edge wins and the far edge overflows.
func clampAxis(v, size, total, margin float64) float64 {
	lo := margin
	hi := total - size - margin
	if hi < lo {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
