package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/glimmer/pkg/config"
)

// Style is one simulation strategy: a spawn/update/draw triple plus
// the click-explosion hook. A style owns the update semantics of
// every entity it acquires until release.
type Style interface {
	// Name returns the registry name of the style.
	Name() string

	// Seed populates the field with count entities (field family) or
	// resets spawn tracking (trail family). Called on activation,
	// style change and post-resize settle.
	Seed(count int)

	// Update advances the simulation by one fixed 60 Hz tick.
	Update()

	// Draw renders every active entity onto dst. One full-surface
	// repaint per tick.
	Draw(dst *ebiten.Image)

	// Explode reacts to a click or tap at the given position.
	Explode(x, y float64)
}

// Constructor builds a style bound to a world.
type Constructor func(*World) Style

var fieldStyles = map[string]Constructor{
	config.FieldGlitter:   NewGlitter,
	config.FieldConfetti:  NewConfetti,
	config.FieldLoveBomb:  NewLoveBomb,
	config.FieldSnow:      NewSnow,
	config.FieldFireworks: NewFireworks,
	config.FieldLeaves:    NewLeaves,
}

// New resolves the configured mode and style name to a strategy.
// Unknown names fall back to glitter (field) or the compact disc
// trail; the config layer normally prevents them from getting here.
func New(w *World) Style {
	if w.Cfg.Mode == config.ModeTrail {
		return NewTrail(w)
	}
	ctor, ok := fieldStyles[w.Cfg.FieldStyle]
	if !ok {
		ctor = NewGlitter
	}
	return ctor(w)
}

// FieldStyleNames lists the registered field styles in a stable
// order, for the preview tool.
func FieldStyleNames() []string {
	return []string{
		config.FieldGlitter,
		config.FieldConfetti,
		config.FieldLoveBomb,
		config.FieldSnow,
		config.FieldFireworks,
		config.FieldLeaves,
	}
}
