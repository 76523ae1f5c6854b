package systems

import (
	"math"

	"github.com/gonewx/glimmer/pkg/particle"
)

// Tuning constants for the base field algorithm. Velocities are in
// pixels per 60 Hz tick.
const (
	// attractRadius bounds the pointer attraction; the force scales
	// with (1 - d/attractRadius)^3.
	attractRadius = 240.0
	attractAccel  = 0.55

	// homeSpring is the weak linear spring back toward the home
	// position when the pointer is outside the viewport.
	homeSpring = 0.002

	// repelRadius/repelAccel shape the pairwise soft repulsion. The
	// pass is O(n²) per tick, acceptable only because n ≤ 500.
	repelRadius = 28.0
	repelAccel  = 0.08

	damping = 0.95

	// explosionDecay drains ExplosionLife per tick; a burst entity
	// lives 1/explosionDecay = 50 ticks.
	explosionDecay = 0.02

	burstCount       = 40
	burstSpeedMin    = 3.0
	burstSpeedMax    = 8.0
	burstRepelRadius = 180.0
	burstRepelAccel  = 10.0
)

// seedFieldEntity places e at a uniform-random viewport position and
// initializes the shared field attributes. sizeScale lets styles bias
// their size distribution around the configured range.
func seedFieldEntity(w *World, e *particle.Entity, sizeScale float64) {
	e.X = w.Rand.Float64() * w.Width
	e.Y = w.Rand.Float64() * w.Height
	e.HomeX, e.HomeY = e.X, e.Y

	e.BaseSize = w.randSize() * sizeScale
	e.Size = e.BaseSize
	e.BaseOpacity = 0.6 + w.Rand.Float64()*0.4
	e.Opacity = e.BaseOpacity

	e.ShimmerPhase = w.Rand.Float64() * 2 * math.Pi
	e.ShimmerSpeed = 0.03 + w.Rand.Float64()*0.05

	e.DriftAngle = w.Rand.Float64() * 2 * math.Pi
	e.DriftSpeed = 0.1 + w.Rand.Float64()*0.3
	e.DriftPhase = w.Rand.Float64() * 2 * math.Pi

	e.ColorIndex = w.Rand.Float64()
	e.ColorCycleSpeed = 0.001 + w.Rand.Float64()*0.003

	e.Rotation = w.Rand.Float64() * 2 * math.Pi
	e.RotationSpeed = (w.Rand.Float64() - 0.5) * 0.02
}

// stepDrift advances the ambient wandering phase and adds a small
// drift-derived acceleration.
func stepDrift(e *particle.Entity) {
	e.DriftPhase += 0.01 * e.DriftSpeed * 4
	wobble := math.Sin(e.DriftPhase) * 0.6
	e.VX += math.Cos(e.DriftAngle+wobble) * 0.01 * e.DriftSpeed
	e.VY += math.Sin(e.DriftAngle+wobble) * 0.01 * e.DriftSpeed
}

// stepPointer applies the pointer attraction when the pointer is in
// the viewport, falling back to the weak home spring otherwise.
func stepPointer(w *World, e *particle.Entity) {
	if w.PointerIn {
		dx := w.PointerX - e.X
		dy := w.PointerY - e.Y
		d := math.Hypot(dx, dy)
		if d > 1 && d < attractRadius {
			f := 1 - d/attractRadius
			f = f * f * f * w.Cfg.Attraction * attractAccel
			e.VX += dx / d * f
			e.VY += dy / d * f
		}
		return
	}
	e.VX += (e.HomeX - e.X) * homeSpring
	e.VY += (e.HomeY - e.Y) * homeSpring
}

// softRepulsion applies the pairwise entity repulsion within
// repelRadius. Explosion entities neither push nor get pushed.
func softRepulsion(w *World) {
	if w.Cfg.Spread <= 0 {
		return
	}
	strength := repelAccel * w.Cfg.Spread
	acts := w.Pool.Active()
	for i := 0; i < len(acts); i++ {
		a := acts[i]
		if a.IsExplosion {
			continue
		}
		for j := i + 1; j < len(acts); j++ {
			b := acts[j]
			if b.IsExplosion {
				continue
			}
			dx := b.X - a.X
			dy := b.Y - a.Y
			if dx > repelRadius || dx < -repelRadius || dy > repelRadius || dy < -repelRadius {
				continue
			}
			d := math.Hypot(dx, dy)
			if d < 0.01 || d >= repelRadius {
				continue
			}
			f := (1 - d/repelRadius) * strength
			nx, ny := dx/d*f, dy/d*f
			a.VX -= nx
			a.VY -= ny
			b.VX += nx
			b.VY += ny
		}
	}
}

// integrateWrap integrates velocity into position with damping and
// wraps across the viewport edges.
func integrateWrap(w *World, e *particle.Entity) {
	e.X += e.VX
	e.Y += e.VY
	e.VX *= damping
	e.VY *= damping
	wrap(w, e)
}

func wrap(w *World, e *particle.Entity) {
	m := e.Size + 4
	switch {
	case e.X < -m:
		e.X += w.Width + 2*m
	case e.X > w.Width+m:
		e.X -= w.Width + 2*m
	}
	switch {
	case e.Y < -m:
		e.Y += w.Height + 2*m
	case e.Y > w.Height+m:
		e.Y -= w.Height + 2*m
	}
}

// wrapX wraps horizontally only; the falling styles respawn at the
// top instead of wrapping vertically.
func wrapX(w *World, e *particle.Entity) {
	m := e.Size + 4
	switch {
	case e.X < -m:
		e.X += w.Width + 2*m
	case e.X > w.Width+m:
		e.X -= w.Width + 2*m
	}
}

// stepShimmer advances the shimmer and rotation phases and derives
// the rendered size from the base size.
func stepShimmer(e *particle.Entity) {
	e.ShimmerPhase += e.ShimmerSpeed
	e.Size = e.BaseSize * (1 + 0.25*math.Sin(e.ShimmerPhase))
	e.Rotation += e.RotationSpeed
	e.ColorIndex += e.ColorCycleSpeed
	if e.ColorIndex >= 1 {
		e.ColorIndex -= 1
	}
}

// stepExplosion decays an explosion-flagged entity and reports
// whether it should be released. Opacity and size are derived from
// the remaining life, so opacity is non-increasing over ticks.
func stepExplosion(e *particle.Entity) bool {
	e.ExplosionLife -= explosionDecay
	if e.ExplosionLife <= 0 {
		return true
	}
	e.X += e.VX
	e.Y += e.VY
	e.VX *= 0.96
	e.VY *= 0.96
	e.Opacity = e.BaseOpacity * e.ExplosionLife
	e.Size = e.BaseSize * (0.5 + 0.5*e.ExplosionLife)
	e.Rotation += e.RotationSpeed
	return false
}

// burstOptions tweak spawnBurst per style.
type burstOptions struct {
	count int
	// upwardBias restricts burst angles to the upper hemisphere
	// (snow's kicked-drift look).
	upwardBias bool
	// sizeScale multiplies the configured size range.
	sizeScale float64
}

// spawnBurst acquires a radial burst of explosion entities at (x, y):
// evenly distributed angles with jitter, speed in [burstSpeedMin,
// burstSpeedMax]. color is resolved per entity by pick.
func spawnBurst(w *World, x, y float64, opt burstOptions, pick func(*particle.Entity)) {
	n := opt.count
	if n <= 0 {
		n = burstCount
	}
	scale := opt.sizeScale
	if scale == 0 {
		scale = 1
	}
	for i := 0; i < n; i++ {
		e := w.Pool.Acquire()
		e.X, e.Y = x, y
		e.HomeX, e.HomeY = x, y

		angle := (float64(i)/float64(n))*2*math.Pi + (w.Rand.Float64()-0.5)*0.4
		if opt.upwardBias {
			// Fold the angle into the upper hemisphere.
			angle = math.Pi + (float64(i)/float64(n))*math.Pi + (w.Rand.Float64()-0.5)*0.3
		}
		speed := burstSpeedMin + w.Rand.Float64()*(burstSpeedMax-burstSpeedMin)
		e.VX = math.Cos(angle) * speed
		e.VY = math.Sin(angle) * speed

		e.BaseSize = w.randSize() * scale
		e.Size = e.BaseSize
		e.BaseOpacity = 1
		e.Opacity = 1
		e.IsExplosion = true
		e.ExplosionLife = 1
		e.RotationSpeed = (w.Rand.Float64() - 0.5) * 0.3
		e.ShimmerPhase = w.Rand.Float64() * 2 * math.Pi
		pick(e)
	}
}

// repelFrom applies the instantaneous click repulsion impulse to all
// nearby non-explosion entities, closer = stronger.
func repelFrom(w *World, x, y float64) {
	for _, e := range w.Pool.Active() {
		if e.IsExplosion {
			continue
		}
		dx := e.X - x
		dy := e.Y - y
		d := math.Hypot(dx, dy)
		if d < 1 || d > burstRepelRadius {
			continue
		}
		f := (1 - d/burstRepelRadius) * burstRepelAccel * (0.3 + 0.7*w.Cfg.Spread)
		e.VX += dx / d * f
		e.VY += dy / d * f
	}
}
