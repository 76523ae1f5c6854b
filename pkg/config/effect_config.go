// Package config defines the host-facing configuration record for the
// particle overlay. The host (CLI flags, a YAML file, or an embedding
// application) produces one EffectConfig; Clamp sanitizes it before
// it reaches the simulation core, which then treats every value as
// already valid.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Animation modes.
const (
	ModeTrail = "trail"
	ModeField = "field"
)

// Trail styles.
const (
	TrailDisc    = "disc"
	TrailScatter = "scatter"
	TrailGlyph   = "glyph"
)

// Field styles.
const (
	FieldGlitter   = "glitter"
	FieldConfetti  = "pride-confetti"
	FieldLoveBomb  = "love-bomb"
	FieldSnow      = "snow"
	FieldFireworks = "fireworks"
	FieldLeaves    = "autumn-leaves"
)

// SmallViewportWidth classifies a viewport as "small" (the mobile
// breakpoint). Below it the mobile size range applies, and the
// disableOnSmallViewport flag suppresses the effect entirely.
const SmallViewportWidth = 768

// SizeRange is a bounded particle size pair in pixels.
type SizeRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ButtonConfig describes the on-screen toggle button. Purely
// cosmetic; it never reaches the simulation core.
type ButtonConfig struct {
	Text       string `yaml:"text"`
	Corner     string `yaml:"corner"` // top-left, top-right, bottom-left, bottom-right
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// EffectConfig is the full host configuration record.
type EffectConfig struct {
	Mode       string `yaml:"mode"`
	TrailStyle string `yaml:"trailStyle"`
	FieldStyle string `yaml:"fieldStyle"`

	// Opacity is the overall opacity multiplier, independent of the
	// palette, applied uniformly across styles.
	Opacity float64 `yaml:"opacity"`

	SizeDesktop SizeRange `yaml:"sizeDesktop"`
	SizeMobile  SizeRange `yaml:"sizeMobile"`

	// DurationMs is the trail fade duration in milliseconds.
	DurationMs int `yaml:"durationMs"`

	MaxParticles int `yaml:"maxParticles"`

	// Attraction is the pointer attraction strength, Spread the
	// soft-repulsion strength, both normalized to [0,1].
	Attraction float64 `yaml:"attraction"`
	Spread     float64 `yaml:"spread"`

	ClickExplosions        bool `yaml:"clickExplosions"`
	EnabledByDefault       bool `yaml:"enabledByDefault"`
	DisableOnSmallViewport bool `yaml:"disableOnSmallViewport"`

	// CustomColor is blended into the cycling palette as an extra
	// stop. Hex, "#rrggbb" or "#rgb".
	CustomColor string `yaml:"customColor"`

	// Independent palette choices per mode.
	TrailPalette string `yaml:"trailPalette"`
	FieldPalette string `yaml:"fieldPalette"`

	// TrailGlyph is the character drawn by the glyph trail variant.
	TrailGlyphRune string `yaml:"trailGlyph"`

	Button ButtonConfig `yaml:"button"`
}

// Default returns the configuration used when the host provides
// nothing.
func Default() *EffectConfig {
	return &EffectConfig{
		Mode:         ModeField,
		TrailStyle:   TrailDisc,
		FieldStyle:   FieldGlitter,
		Opacity:      1.0,
		SizeDesktop:  SizeRange{Min: 2, Max: 5},
		SizeMobile:   SizeRange{Min: 1.5, Max: 3.5},
		DurationMs:   1200,
		MaxParticles: 120,

		Attraction: 0.5,
		Spread:     0.5,

		ClickExplosions:  true,
		EnabledByDefault: true,

		CustomColor:    "",
		TrailPalette:   "classic",
		FieldPalette:   "classic",
		TrailGlyphRune: "*",

		Button: ButtonConfig{
			Text:       "✦ Effects",
			Corner:     "bottom-right",
			Foreground: "#ffffff",
			Background: "#333344",
		},
	}
}

// Load reads a YAML configuration file on top of the defaults and
// clamps the result.
func Load(path string) (*EffectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Clamp()
	return cfg, nil
}

// Clamp sanitizes every numeric and enumerated field in place. This
// is the host-side validation boundary: after Clamp, the simulation
// core assumes all values are in range.
func (c *EffectConfig) Clamp() {
	if c.Mode != ModeTrail && c.Mode != ModeField {
		c.Mode = ModeField
	}
	switch c.TrailStyle {
	case TrailDisc, TrailScatter, TrailGlyph:
	default:
		c.TrailStyle = TrailDisc
	}
	switch c.FieldStyle {
	case FieldGlitter, FieldConfetti, FieldLoveBomb, FieldSnow, FieldFireworks, FieldLeaves:
	default:
		c.FieldStyle = FieldGlitter
	}

	c.Opacity = clamp(c.Opacity, 0.1, 1.0)
	c.Attraction = clamp(c.Attraction, 0, 1)
	c.Spread = clamp(c.Spread, 0, 1)

	if c.DurationMs < 500 {
		c.DurationMs = 500
	}
	if c.DurationMs > 5000 {
		c.DurationMs = 5000
	}

	maxCount := 500
	if c.Mode == ModeTrail {
		maxCount = 100
	}
	if c.MaxParticles < 1 {
		c.MaxParticles = 1
	}
	if c.MaxParticles > maxCount {
		c.MaxParticles = maxCount
	}

	clampSize := func(s *SizeRange) {
		s.Min = clamp(s.Min, 0.5, 40)
		s.Max = clamp(s.Max, 0.5, 40)
		if s.Max < s.Min {
			s.Min, s.Max = s.Max, s.Min
		}
	}
	clampSize(&c.SizeDesktop)
	clampSize(&c.SizeMobile)

	if c.TrailGlyphRune == "" {
		c.TrailGlyphRune = "*"
	}
}

// SizeFor returns the size range for the given viewport width,
// switching to the mobile pair below the small-viewport breakpoint.
func (c *EffectConfig) SizeFor(viewportWidth float64) SizeRange {
	if viewportWidth < SmallViewportWidth {
		return c.SizeMobile
	}
	return c.SizeDesktop
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
