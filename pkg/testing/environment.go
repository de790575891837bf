package testing

import (
	"github.com/go-anchor/anchor/pkg/geometry"
	"github.com/go-anchor/anchor/pkg/overlay"
)

// FakeEnvironment implements overlay.Environment with in-memory
// subscription sets and explicit event emission. It counts live
// subscriptions so teardown invariants can be asserted.
type FakeEnvironment struct {
	nextID      int
	resizes     map[int]func(geometry.Size)
	scrolls     map[int]func()
	pointerDown map[int]func(geometry.Offset)
}

// NewFakeEnvironment returns an empty FakeEnvironment.
func NewFakeEnvironment() *FakeEnvironment {
	return &FakeEnvironment{
		resizes:     make(map[int]func(geometry.Size)),
		scrolls:     make(map[int]func()),
		pointerDown: make(map[int]func(geometry.Offset)),
	}
}

// OnResize registers a resize subscription.
func (e *FakeEnvironment) OnResize(fn func(geometry.Size)) overlay.CancelFunc {
	id := e.nextID
	e.nextID++
	e.resizes[id] = fn
	return func() { delete(e.resizes, id) }
}

// OnScroll registers a scroll subscription.
func (e *FakeEnvironment) OnScroll(fn func()) overlay.CancelFunc {
	id := e.nextID
	e.nextID++
	e.scrolls[id] = fn
	return func() { delete(e.scrolls, id) }
}

// OnPointerDown registers a global pointer-down subscription.
func (e *FakeEnvironment) OnPointerDown(fn func(geometry.Offset)) overlay.CancelFunc {
	id := e.nextID
	e.nextID++
	e.pointerDown[id] = fn
	return func() { delete(e.pointerDown, id) }
}

// EmitResize delivers a viewport resize to all subscribers.
func (e *FakeEnvironment) EmitResize(size geometry.Size) {
	for _, fn := range e.resizes {
		fn(size)
	}
}

// EmitScroll delivers a scroll event to all subscribers.
func (e *FakeEnvironment) EmitScroll() {
	for _, fn := range e.scrolls {
		fn()
	}
}

// EmitPointerDown delivers a global pointer-down to all subscribers.
func (e *FakeEnvironment) EmitPointerDown(pos geometry.Offset) {
	for _, fn := range e.pointerDown {
		fn(pos)
	}
}

// ActiveSubscriptions returns the number of live subscriptions across
// all event types.
func (e *FakeEnvironment) ActiveSubscriptions() int {
	return len(e.resizes) + len(e.scrolls) + len(e.pointerDown)
}
