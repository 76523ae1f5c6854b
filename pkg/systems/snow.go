package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// Snow tuning. Flakes fall toward a per-entity terminal speed, drift
// sideways on a sinusoid, and the pointer acts as rising warm air.
const (
	snowGravityEase   = 0.05
	snowSwayAccel     = 0.012
	snowWarmRadius    = 160.0
	snowWarmLift      = 0.35
	snowRespawnMargin = 20.0
)

// Snow is the falling-flake field style. Flakes that exit the bottom
// respawn at the top with a fresh horizontal position; they are never
// released back to the pool.
type Snow struct {
	w *World
}

func NewSnow(w *World) Style {
	return &Snow{w: w}
}

func (s *Snow) Name() string { return config.FieldSnow }

func (s *Snow) Seed(count int) {
	s.w.Pool.ReleaseAll()
	for i := 0; i < count; i++ {
		e := s.w.Pool.Acquire()
		seedFieldEntity(s.w, e, 1)
		s.initFlake(e)
	}
}

// initFlake applies the snow-specific distribution on top of the base
// field seeding: sizes biased small via a power curve, terminal fall
// speed proportional to size, a fixed white-to-blue tint.
func (s *Snow) initFlake(e *particle.Entity) {
	r := s.w.sizeRange()
	t := s.w.Rand.Float64()
	e.BaseSize = r.Min + (r.Max-r.Min)*t*t
	e.Size = e.BaseSize
	e.FallSpeed = 0.4 + e.BaseSize/r.Max*1.1
	e.VX = 0
	e.VY = s.w.Rand.Float64() * e.FallSpeed
	e.ColorCycleSpeed = 0

	// Larger (closer) flakes read whiter, small ones shade blue.
	blue := 1 - t*0.5
	e.Color = color.RGBA{
		R: uint8(200 + 55*blue),
		G: uint8(215 + 40*blue),
		B: 255,
		A: 255,
	}
}

func (s *Snow) Update() {
	w := s.w
	acts := w.Pool.Active()
	for i := len(acts) - 1; i >= 0; i-- {
		e := acts[i]
		if e.IsExplosion {
			if stepExplosion(e) {
				w.Pool.Release(e)
			}
			continue
		}

		// Horizontal sinusoidal drift.
		e.DriftPhase += 0.02 * (0.5 + e.DriftSpeed)
		e.VX += math.Sin(e.DriftPhase) * snowSwayAccel

		// Gravity eases the vertical speed toward the terminal fall
		// speed instead of accumulating.
		e.VY += (e.FallSpeed - e.VY) * snowGravityEase

		// Pointer reads as warm air: flakes near it get an upward
		// push.
		if w.PointerIn {
			dx := e.X - w.PointerX
			dy := e.Y - w.PointerY
			d := math.Hypot(dx, dy)
			if d < snowWarmRadius {
				f := 1 - d/snowWarmRadius
				e.VY -= f * snowWarmLift
				if d > 1 {
					e.VX += dx / d * f * 0.08
				}
			}
		}
	}

	softRepulsion(w)

	for _, e := range w.Pool.Active() {
		if e.IsExplosion {
			continue
		}
		e.X += e.VX
		e.Y += e.VY
		e.VX *= 0.95
		wrapX(w, e)
		if e.Y > w.Height+e.Size {
			s.respawnTop(e)
		}
		e.ShimmerPhase += e.ShimmerSpeed
		e.Size = e.BaseSize * (1 + 0.15*math.Sin(e.ShimmerPhase))
	}
}

// respawnTop recycles a flake that fell out the bottom: fresh random
// x, just above the viewport, small downward velocity. The entity
// stays active the whole time.
func (s *Snow) respawnTop(e *particle.Entity) {
	e.X = s.w.Rand.Float64() * s.w.Width
	e.Y = -e.Size - s.w.Rand.Float64()*snowRespawnMargin
	e.HomeX, e.HomeY = e.X, e.Y
	e.VX = 0
	e.VY = 0.2 + s.w.Rand.Float64()*0.4
}

func (s *Snow) Draw(dst *ebiten.Image) {
	a := s.w.Alpha()
	for _, e := range s.w.Pool.Active() {
		alpha := e.Opacity * a
		if alpha <= 0 {
			continue
		}
		drawSoftDisc(dst, e.X, e.Y, e.Size*2, e.Color, alpha)
	}
}

// Explode biases the burst into the upper hemisphere, like a kicked
// snowdrift.
func (s *Snow) Explode(x, y float64) {
	spawnBurst(s.w, x, y, burstOptions{upwardBias: true, sizeScale: 0.8}, func(e *particle.Entity) {
		e.Color = color.RGBA{R: 235, G: 245, B: 255, A: 255}
	})
	repelFrom(s.w, x, y)
}
