// Package systems implements the per-style simulation strategies.
// Each style is a spawn/update/draw triple behind the Style
// interface; the session selects one at construction and re-selects
// it only on an explicit style change.
package systems

import (
	"math/rand"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// World is the shared per-session state every style operates on: the
// entity pool, the sanitized configuration, viewport dimensions,
// pointer tracking and the global fade multiplier.
//
// All mutation happens inside the tick; interaction callbacks only
// write the pointer fields and never run concurrently with an update.
type World struct {
	Pool *particle.Pool
	Cfg  *config.EffectConfig

	Width, Height float64

	// Last known pointer/touch position and whether the pointer is
	// currently inside the viewport. Touch selects the coarser trail
	// spacing threshold.
	PointerX, PointerY float64
	PointerIn          bool
	Touch              bool

	// Opacity is the resize-fade multiplier in [0,1], lerped by the
	// session toward its target each tick. Styles multiply it with
	// the configured opacity.
	Opacity float64

	Rand *rand.Rand
}

// NewWorld creates a world with a pool pre-sized for the configured
// mode: the target particle count plus headroom for click explosions,
// so the pool does not grow mid-animation.
func NewWorld(cfg *config.EffectConfig, width, height float64, rng *rand.Rand) *World {
	headroom := 80
	if cfg.Mode == config.ModeTrail {
		headroom = 30
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &World{
		Pool:    particle.NewPool(cfg.MaxParticles + headroom),
		Cfg:     cfg,
		Width:   width,
		Height:  height,
		Opacity: 1.0,
		Rand:    rng,
	}
}

// Alpha is the overall opacity multiplier: configured opacity times
// the resize-fade level.
func (w *World) Alpha() float64 {
	return w.Cfg.Opacity * w.Opacity
}

// sizeRange picks the desktop or mobile size pair for the current
// viewport width.
func (w *World) sizeRange() config.SizeRange {
	return w.Cfg.SizeFor(w.Width)
}

// randSize draws a uniform base size from the active range.
func (w *World) randSize() float64 {
	r := w.sizeRange()
	return r.Min + w.Rand.Float64()*(r.Max-r.Min)
}
