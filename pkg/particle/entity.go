// Package particle provides the reusable particle records and the
// fixed-capacity pool that owns them.
//
// An entity is either pooled (inactive, untracked by the simulation)
// or active (tracked, owned by exactly one style for its lifetime).
// All entity state is mutated in place; the pool's Acquire/Release
// contract is the only ownership transfer mechanism.
package particle

import "image/color"

// Entity is a single simulated particle record. Fields are written by
// the style that owns the entity and read by its draw routine; no
// other code touches them.
type Entity struct {
	// Position and the rest anchor ("home") used by the
	// return-to-rest spring when the pointer leaves the viewport.
	X, Y         float64
	HomeX, HomeY float64

	// Velocity in pixels per tick.
	VX, VY float64

	// Size = BaseSize scaled by the shimmer factor each tick.
	BaseSize float64
	Size     float64

	// Opacity is the currently rendered alpha; BaseOpacity is the
	// value it shimmers/fades around.
	Opacity     float64
	BaseOpacity float64

	Rotation      float64
	RotationSpeed float64

	// ColorIndex cycles in [0,1) through a palette for cycling
	// styles; Color is the resolved fixed color for discrete-palette
	// styles (confetti, autumn leaves, firework bursts).
	ColorIndex      float64
	ColorCycleSpeed float64
	Color           color.RGBA

	// Shimmer drives the per-tick size/alpha pulse.
	ShimmerPhase float64
	ShimmerSpeed float64

	// Ambient wandering.
	DriftAngle float64
	DriftSpeed float64
	DriftPhase float64

	// Explosion-flagged entities skip the ambient forces and decay
	// ExplosionLife from 1 to 0, which drives their opacity and size.
	IsExplosion   bool
	ExplosionLife float64

	// Terminal fall speed for gravity-affected styles (snow, leaves).
	FallSpeed float64

	// Active marks pool membership. Managed by Pool only.
	Active bool
}
