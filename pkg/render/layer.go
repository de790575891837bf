// Package render provides render-adapter implementations for the anchor
// engine: a detached overlay layer and an image rasterizer.
package render

import (
	"sync"
	"sync/atomic"

	"github.com/go-anchor/anchor/pkg/geometry"
	"github.com/go-anchor/anchor/pkg/overlay"
	"github.com/go-anchor/anchor/pkg/placement"
)

// nextEntryID is an atomic counter for unique entry IDs.
var nextEntryID uint64

// Entry is one overlay card mounted in a Layer. It's a mutable handle:
// updating fields and re-inserting is not needed; the layer reads the
// handle's current values on every snapshot.
type Entry struct {
	// Config is the overlay content and styling.
	Config overlay.Config
	// Placement is the resolved position and side.
	Placement placement.Result
	// Size is the overlay extent the placement was resolved against.
	Size geometry.Size

	id    uint64
	layer *Layer
}

// NewEntry creates an Entry with a unique ID. Always use this
// constructor rather than literal struct creation to ensure proper
// ordering in the layer.
func NewEntry(cfg overlay.Config) *Entry {
	return &Entry{
		Config: cfg,
		id:     atomic.AddUint64(&nextEntryID, 1),
	}
}

// Remove removes this entry from its layer.
// Safe to call if not inserted or already removed (no-op).
func (e *Entry) Remove() {
	if e.layer == nil {
		return // Not inserted or already removed
	}
	e.layer.remove(e)
}

// Rect returns the viewport rectangle the entry occupies.
func (e *Entry) Rect() geometry.Rect {
	return e.Placement.OverlayRect(e.Size)
}

// Layer holds overlay entries detached from the normal containment
// hierarchy, so ancestor clipping regions cannot cut them off. Entries
// render in insertion order (later entries on top). Multiple overlay
// instances may share one layer; each owns its own entry.
type Layer struct {
	mu      sync.Mutex
	entries []*Entry
}

// NewLayer returns an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Insert adds entry at the top of the layer.
// Panics if the entry is already inserted into any layer.
func (l *Layer) Insert(entry *Entry) {
	if entry.layer != nil {
		panic("render: entry already inserted")
	}
	if entry.id == 0 {
		entry.id = atomic.AddUint64(&nextEntryID, 1)
	}
	entry.layer = l
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()
}

// Entries returns the current entries in z-order (bottom first).
func (l *Layer) Entries() []*Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of mounted entries.
func (l *Layer) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Layer) remove(entry *Entry) {
	if entry.layer != l {
		return
	}
	entry.layer = nil
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e == entry {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// LayerAdapter implements overlay.RenderAdapter for one overlay
// instance on a shared Layer. Show mounts or repositions the instance's
// entry; Hide removes it.
type LayerAdapter struct {
	layer *Layer
	entry *Entry
	sizer func(overlay.Config) geometry.Size
}

// NewLayerAdapter returns an adapter mounting into layer. sizer
// measures the card content for an entry's rectangle; nil defaults to
// [EstimateSize].
func NewLayerAdapter(layer *Layer, sizer func(overlay.Config) geometry.Size) *LayerAdapter {
	if sizer == nil {
		sizer = EstimateSize
	}
	return &LayerAdapter{layer: layer, sizer: sizer}
}

// Show mounts the entry if needed and updates its placement.
func (a *LayerAdapter) Show(cfg overlay.Config, res placement.Result) {
	if a.entry == nil {
		a.entry = NewEntry(cfg)
		a.layer.Insert(a.entry)
	}
	a.entry.Config = cfg
	a.entry.Placement = res
	a.entry.Size = a.sizer(cfg)
}

// Hide removes the entry. No-op when nothing is shown.
func (a *LayerAdapter) Hide() {
	if a.entry == nil {
		return
	}
	a.entry.Remove()
	a.entry = nil
}

// Visible reports whether the adapter currently has a mounted entry.
func (a *LayerAdapter) Visible() bool {
	return a.entry != nil
}
