package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultIsValid verifies the default record survives Clamp
// unchanged (defaults must already be in range).
func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	before := *cfg
	cfg.Clamp()
	if *cfg != before {
		t.Errorf("Clamp modified the defaults:\n got %+v\nwant %+v", *cfg, before)
	}
}

// TestClampRanges verifies the sanitization boundary: out-of-range
// values are pulled back into the documented ranges.
func TestClampRanges(t *testing.T) {
	cfg := Default()
	cfg.Mode = "spiral"
	cfg.FieldStyle = "lava"
	cfg.TrailStyle = "squiggle"
	cfg.Opacity = 3.0
	cfg.Attraction = -1
	cfg.Spread = 9
	cfg.DurationMs = 50
	cfg.MaxParticles = 100000
	cfg.SizeDesktop = SizeRange{Min: 30, Max: 2}
	cfg.Clamp()

	if cfg.Mode != ModeField {
		t.Errorf("Mode = %q, want fallback %q", cfg.Mode, ModeField)
	}
	if cfg.FieldStyle != FieldGlitter {
		t.Errorf("FieldStyle = %q, want fallback %q", cfg.FieldStyle, FieldGlitter)
	}
	if cfg.TrailStyle != TrailDisc {
		t.Errorf("TrailStyle = %q, want fallback %q", cfg.TrailStyle, TrailDisc)
	}
	if cfg.Opacity != 1.0 {
		t.Errorf("Opacity = %v, want 1.0", cfg.Opacity)
	}
	if cfg.Attraction != 0 {
		t.Errorf("Attraction = %v, want 0", cfg.Attraction)
	}
	if cfg.Spread != 1 {
		t.Errorf("Spread = %v, want 1", cfg.Spread)
	}
	if cfg.DurationMs != 500 {
		t.Errorf("DurationMs = %d, want 500", cfg.DurationMs)
	}
	if cfg.MaxParticles != 500 {
		t.Errorf("MaxParticles = %d, want field cap 500", cfg.MaxParticles)
	}
	if cfg.SizeDesktop.Min > cfg.SizeDesktop.Max {
		t.Errorf("size range not ordered: %+v", cfg.SizeDesktop)
	}
}

// TestClampTrailParticleCap verifies the trail mode particle cap is
// tighter than the field cap.
func TestClampTrailParticleCap(t *testing.T) {
	cfg := Default()
	cfg.Mode = ModeTrail
	cfg.MaxParticles = 400
	cfg.Clamp()
	if cfg.MaxParticles != 100 {
		t.Errorf("MaxParticles = %d, want trail cap 100", cfg.MaxParticles)
	}
}

// TestLoad verifies YAML values override the defaults and the result
// is clamped.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effects.yaml")
	doc := `
mode: field
fieldStyle: snow
opacity: 0.8
maxParticles: 9999
customColor: "#ff00aa"
button:
  text: "let it snow"
  corner: top-left
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FieldStyle != FieldSnow {
		t.Errorf("FieldStyle = %q, want %q", cfg.FieldStyle, FieldSnow)
	}
	if cfg.Opacity != 0.8 {
		t.Errorf("Opacity = %v, want 0.8", cfg.Opacity)
	}
	if cfg.MaxParticles != 500 {
		t.Errorf("MaxParticles = %d, want clamp to 500", cfg.MaxParticles)
	}
	if cfg.Button.Text != "let it snow" || cfg.Button.Corner != "top-left" {
		t.Errorf("Button not loaded: %+v", cfg.Button)
	}
	// Untouched fields keep their defaults.
	if cfg.DurationMs != 1200 {
		t.Errorf("DurationMs = %d, want default 1200", cfg.DurationMs)
	}
}

// TestLoadMissingFile verifies a wrapped error for an absent path.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing file returned nil error")
	}
}

// TestSizeFor verifies the mobile breakpoint switch.
func TestSizeFor(t *testing.T) {
	cfg := Default()
	if got := cfg.SizeFor(1280); got != cfg.SizeDesktop {
		t.Errorf("SizeFor(1280) = %+v, want desktop range", got)
	}
	if got := cfg.SizeFor(400); got != cfg.SizeMobile {
		t.Errorf("SizeFor(400) = %+v, want mobile range", got)
	}
}
