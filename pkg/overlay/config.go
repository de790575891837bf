package overlay

import (
	"time"

	"github.com/go-anchor/anchor/pkg/placement"
)

// Kind categorizes an overlay's content, typically mapped to a color
// accent by the render adapter.
type Kind int

const (
	// KindNeutral is the default, unstyled kind.
	KindNeutral Kind = iota
	// KindInfo marks informational content.
	KindInfo
	// KindSuccess marks a supported or verified statement.
	KindSuccess
	// KindWarning marks a disputed or unverifiable statement.
	KindWarning
	// KindError marks a refuted statement.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "neutral"
	}
}

// TriggerMode selects which interactions show and hide the overlay.
type TriggerMode int

const (
	// TriggerHover shows on pointer enter and hides on pointer leave.
	TriggerHover TriggerMode = iota
	// TriggerClick toggles on tap and hides on outside pointer-down.
	TriggerClick
	// TriggerFocus shows on focus and hides on blur.
	TriggerFocus
)

func (m TriggerMode) String() string {
	switch m {
	case TriggerClick:
		return "click"
	case TriggerFocus:
		return "focus"
	default:
		return "hover"
	}
}

// Defaults applied by Controller when Config fields are unset.
const (
	// DefaultHoverDelay is the show delay for hover-triggered overlays
	// with no explicit delay configured.
	DefaultHoverDelay = 500 * time.Millisecond
	// DefaultMargin is the clearance kept between the overlay and both
	// the trigger and the viewport edges.
	DefaultMargin = 10.0
	// DefaultMaxWidth caps the overlay width when none is configured.
	DefaultMaxWidth = 320.0
)

// Config describes one overlay instance. It is supplied once to
// [NewController] and is immutable for the controller's lifetime.
type Config struct {
	// Title is the overlay heading.
	Title string
	// Content is the overlay body text.
	Content string
	// Kind selects the content category (color accent).
	Kind Kind
	// Side is the requested placement side; placement.SideAuto lets the
	// resolver choose.
	Side placement.Side
	// ShowDelay is the wait between a show interaction and the overlay
	// appearing. Zero means DefaultHoverDelay for hover triggers and no
	// delay for click/focus triggers. Negative values are floored at 0.
	ShowDelay time.Duration
	// MaxWidth caps the overlay width. Zero means DefaultMaxWidth.
	MaxWidth float64
	// Margin is the minimum clearance from trigger and viewport edges.
	// Zero means DefaultMargin; negative values are floored at 0.
	Margin float64
}

// withDefaults returns a copy of c with unset or malformed fields
// replaced by the nearest valid default for the given trigger mode.
func (c Config) withDefaults(mode TriggerMode) Config {
	if c.ShowDelay < 0 {
		c.ShowDelay = 0
	} else if c.ShowDelay == 0 && mode == TriggerHover {
		c.ShowDelay = DefaultHoverDelay
	}
	if c.MaxWidth <= 0 {
		c.MaxWidth = DefaultMaxWidth
	}
	if c.Margin == 0 {
		c.Margin = DefaultMargin
	} else if c.Margin < 0 {
		c.Margin = 0
	}
	return c
}
