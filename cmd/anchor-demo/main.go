// Package main renders a demonstration of the anchor overlay engine.
// It lays out a handful of fact-card triggers in a virtual viewport,
// shows an overlay for each, and writes the rasterized result to a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/go-anchor/anchor/pkg/config"
	"github.com/go-anchor/anchor/pkg/geometry"
	"github.com/go-anchor/anchor/pkg/overlay"
	"github.com/go-anchor/anchor/pkg/render"
)

// card pairs a demo statement with the trigger rect it anchors to.
type card struct {
	trigger geometry.Rect
	cfg     overlay.Config
}

// demoMeasurer adapts one card to the overlay.Measurer interface.
type demoMeasurer struct {
	trigger  geometry.Rect
	cfg      overlay.Config
	viewport geometry.Size
}

func (m *demoMeasurer) TriggerRect() geometry.Rect { return m.trigger }
func (m *demoMeasurer) OverlaySize() geometry.Size { return render.EstimateSize(m.cfg) }
func (m *demoMeasurer) Viewport() geometry.Size    { return m.viewport }

func main() {
	out := flag.String("out", "overlays.png", "output PNG path")
	configDir := flag.String("config", ".", "directory containing anchor.yaml")
	flag.Parse()

	if err := run(*out, *configDir); err != nil {
		fmt.Fprintf(os.Stderr, "anchor-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(out, configDir string) error {
	defaults, err := config.Resolve(configDir)
	if err != nil {
		return err
	}

	viewport := geometry.Size{Width: 800, Height: 600}
	cards := []card{
		{
			trigger: geometry.RectFromLTWH(60, 40, 120, 24),
			cfg: overlay.Config{
				Title:   "Supported",
				Content: "Three independent sources confirm this statement.",
				Kind:    overlay.KindSuccess,
			},
		},
		{
			trigger: geometry.RectFromLTWH(540, 80, 140, 24),
			cfg: overlay.Config{
				Title:   "Disputed",
				Content: "Coverage disagrees on the underlying figures.",
				Kind:    overlay.KindWarning,
			},
		},
		{
			trigger: geometry.RectFromLTWH(120, 520, 160, 24),
			cfg: overlay.Config{
				Title:   "Refuted",
				Content: "The claim contradicts the published record.",
				Kind:    overlay.KindError,
			},
		},
		{
			trigger: geometry.RectFromLTWH(380, 300, 100, 24),
			cfg: overlay.Config{
				Title:   "Context",
				Content: "Accurate, but omits the comparison period.",
				Kind:    overlay.KindInfo,
			},
		},
	}

	layer := render.NewLayer()
	for _, c := range cards {
		cfg := c.cfg
		cfg.Side = defaults.Side
		cfg.Margin = defaults.Margin
		cfg.MaxWidth = defaults.MaxWidth
		// The demo renders a single static frame, so every overlay
		// shows without a delay regardless of the configured one.
		cfg.ShowDelay = 0

		ctrl := overlay.NewController(overlay.ControllerOptions{
			Config:   cfg,
			Mode:     overlay.TriggerFocus,
			Measurer: &demoMeasurer{trigger: c.trigger, cfg: cfg, viewport: viewport},
			Adapter:  render.NewLayerAdapter(layer, nil),
		})
		ctrl.Focus()

		res := ctrl.Placement()
		fmt.Printf("%-10s side=%-6s origin=(%.0f, %.0f)\n",
			cfg.Title, res.Side, res.Offset.X, res.Offset.Y)
	}

	painter := &render.Painter{}
	img := painter.Render(viewport, layer)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d overlays)\n", out, layer.Len())
	return nil
}
