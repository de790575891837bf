// Package config loads optional overlay defaults from anchor.yaml.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-anchor/anchor/pkg/errors"
	"github.com/go-anchor/anchor/pkg/overlay"
	"github.com/go-anchor/anchor/pkg/placement"
)

// Config represents the optional anchor.yaml configuration.
type Config struct {
	Overlay OverlayConfig `yaml:"overlay"`
}

// OverlayConfig contains overlay defaults.
type OverlayConfig struct {
	// DelayMS is the show delay in milliseconds.
	DelayMS int `yaml:"delay_ms,omitempty"`
	// Margin is the viewport/trigger clearance in pixels.
	Margin float64 `yaml:"margin,omitempty"`
	// MaxWidth caps the overlay width in pixels.
	MaxWidth float64 `yaml:"max_width,omitempty"`
	// Side is the preferred placement side: auto, top, bottom, right,
	// or left.
	Side string `yaml:"side,omitempty"`
}

// LoadOptional reads anchor.yaml from dir if present. A missing file
// yields a zero Config without error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "anchor.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read anchor.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse anchor.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads anchor.yaml (if present) and converts it to overlay
// defaults. Malformed values are substituted with the nearest valid
// default and reported; they never fail the load.
func Resolve(dir string) (overlay.Config, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return overlay.Config{}, err
	}
	return cfg.Overlay.ToOverlay(), nil
}

// ToOverlay converts the yaml defaults to an overlay.Config. Negative
// delay is floored at 0; an unrecognized side falls back to auto.
func (c OverlayConfig) ToOverlay() overlay.Config {
	delay := time.Duration(c.DelayMS) * time.Millisecond
	if delay < 0 {
		errors.Report(&errors.AnchorError{
			Op:   "config.ToOverlay",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("negative delay_ms %d floored at 0", c.DelayMS),
		})
		delay = 0
	}
	return overlay.Config{
		Side:      parseSide(c.Side),
		ShowDelay: delay,
		MaxWidth:  c.MaxWidth,
		Margin:    c.Margin,
	}
}

// parseSide maps a side name to its placement.Side, defaulting to auto.
func parseSide(name string) placement.Side {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return placement.SideAuto
	case "top":
		return placement.SideTop
	case "bottom":
		return placement.SideBottom
	case "right":
		return placement.SideRight
	case "left":
		return placement.SideLeft
	default:
		errors.Report(&errors.AnchorError{
			Op:   "config.parseSide",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown side %q, using auto", name),
		})
		return placement.SideAuto
	}
}
