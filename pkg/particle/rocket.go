package particle

import "image/color"

// Rocket is a fireworks-style ascending projectile. Rockets are not
// pool-managed: at most a dozen exist at a time, so the fireworks
// style keeps them in a plain slice. A rocket ascends until its
// vertical speed decays near zero, then detonates into a burst of
// explosion entities and is discarded. A rocket that leaves the top
// of the viewport before reaching apex is discarded without a burst.
type Rocket struct {
	X, Y   float64
	VX, VY float64

	// Previous position, kept one tick behind for the glow trail.
	PrevX, PrevY float64

	// Color assigned to the rocket head and to every entity of its
	// burst.
	Color color.RGBA
}

// MaxRockets bounds the number of concurrently ascending rockets.
const MaxRockets = 12
