package testing

import (
	"github.com/go-anchor/anchor/pkg/overlay"
	"github.com/go-anchor/anchor/pkg/placement"
)

// ShowCall records one RenderAdapter.Show invocation.
type ShowCall struct {
	Config overlay.Config
	Result placement.Result
}

// RecordingAdapter implements overlay.RenderAdapter by recording calls.
type RecordingAdapter struct {
	// Shows holds every Show call in order.
	Shows []ShowCall
	// Hides counts Hide calls.
	Hides int

	visible bool
}

// Show records the call and marks the adapter visible.
func (a *RecordingAdapter) Show(cfg overlay.Config, res placement.Result) {
	a.Shows = append(a.Shows, ShowCall{Config: cfg, Result: res})
	a.visible = true
}

// Hide records the call and marks the adapter hidden.
func (a *RecordingAdapter) Hide() {
	a.Hides++
	a.visible = false
}

// Visible reports whether the last call was a Show.
func (a *RecordingAdapter) Visible() bool {
	return a.visible
}

// LastShow returns the most recent Show call, or a zero ShowCall when
// none happened.
func (a *RecordingAdapter) LastShow() ShowCall {
	if len(a.Shows) == 0 {
		return ShowCall{}
	}
	return a.Shows[len(a.Shows)-1]
}
