package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// Autumn-leaves tuning. Like snow but heavier: bigger sizes, a
// stronger horizontal sway, tumbling rotation, and the pointer acts
// as a sideways gust instead of warm air.
const (
	leafGravityEase = 0.04
	leafSwayAccel   = 0.03
	leafWindRadius  = 180.0
	leafWindPush    = 0.3
	leafSizeScale   = 1.7
)

// Leaves is the falling autumn-leaf field style. Leaves respawn at
// the top after exiting the bottom edge, never releasing to the pool.
type Leaves struct {
	w *World
}

func NewLeaves(w *World) Style {
	return &Leaves{w: w}
}

func (l *Leaves) Name() string { return config.FieldLeaves }

func (l *Leaves) Seed(count int) {
	l.w.Pool.ReleaseAll()
	for i := 0; i < count; i++ {
		e := l.w.Pool.Acquire()
		seedFieldEntity(l.w, e, 1)
		l.initLeaf(e)
	}
}

// initLeaf biases sizes large via a sqrt curve, sets the terminal
// fall speed proportional to size and assigns a fixed autumn color.
func (l *Leaves) initLeaf(e *particle.Entity) {
	r := l.w.sizeRange()
	t := l.w.Rand.Float64()
	e.BaseSize = (r.Min + (r.Max-r.Min)*math.Sqrt(t)) * leafSizeScale
	e.Size = e.BaseSize
	e.FallSpeed = 0.3 + e.BaseSize/(r.Max*leafSizeScale)*0.9
	e.VX = 0
	e.VY = l.w.Rand.Float64() * e.FallSpeed
	e.Color = particle.Autumn.Pick(l.w.Rand)
	e.ColorCycleSpeed = 0
	e.RotationSpeed = (l.w.Rand.Float64() - 0.5) * 0.06
}

func (l *Leaves) Update() {
	w := l.w
	acts := w.Pool.Active()
	for i := len(acts) - 1; i >= 0; i-- {
		e := acts[i]
		if e.IsExplosion {
			if stepExplosion(e) {
				w.Pool.Release(e)
			}
			continue
		}

		// Horizontal sway, stronger than snow's.
		e.DriftPhase += 0.025 * (0.5 + e.DriftSpeed)
		e.VX += math.Sin(e.DriftPhase) * leafSwayAccel

		e.VY += (e.FallSpeed - e.VY) * leafGravityEase

		// Pointer reads as a gust: leaves near it get pushed
		// sideways, away from the pointer.
		if w.PointerIn {
			dx := e.X - w.PointerX
			dy := e.Y - w.PointerY
			d := math.Hypot(dx, dy)
			if d > 1 && d < leafWindRadius {
				f := (1 - d/leafWindRadius) * leafWindPush
				dir := 1.0
				if dx < 0 {
					dir = -1
				}
				e.VX += dir * f
				e.VY -= f * 0.1
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
			l.respawnTop(e)
		}
		// Tumble harder the faster the leaf slides sideways.
		e.Rotation += e.RotationSpeed * (1 + math.Abs(e.VX)*0.6)
		e.ShimmerPhase += e.ShimmerSpeed
	}
}

func (l *Leaves) respawnTop(e *particle.Entity) {
	e.X = l.w.Rand.Float64() * l.w.Width
	e.Y = -e.Size - l.w.Rand.Float64()*20
	e.HomeX, e.HomeY = e.X, e.Y
	e.VX = 0
	e.VY = 0.2 + l.w.Rand.Float64()*0.3
}

func (l *Leaves) Draw(dst *ebiten.Image) {
	a := l.w.Alpha()
	for _, e := range l.w.Pool.Active() {
		alpha := e.Opacity * a
		if alpha <= 0 {
			continue
		}
		drawLeaf(dst, e, alpha)
	}
}

func (l *Leaves) Explode(x, y float64) {
	spawnBurst(l.w, x, y, burstOptions{sizeScale: 1.2}, func(e *particle.Entity) {
		e.Color = particle.Autumn.Pick(l.w.Rand)
		e.RotationSpeed = (l.w.Rand.Float64() - 0.5) * 0.2
	})
	repelFrom(l.w, x, y)
}

// drawLeaf renders the two-curve silhouette with a midrib and a short
// stem stroke in a darkened shade of the leaf color.
func drawLeaf(dst *ebiten.Image, e *particle.Entity, alpha float64) {
	var p vector.Path
	appendLeaf(&p, e.X, e.Y, e.Size, e.Rotation)
	fillPath(dst, &p, e.Color, alpha)

	dark := color.RGBA{
		R: uint8(float64(e.Color.R) * 0.6),
		G: uint8(float64(e.Color.G) * 0.6),
		B: uint8(float64(e.Color.B) * 0.6),
		A: 255,
	}
	sin, cos := sinCos(e.Rotation)
	tipX, tipY := rotated(e.X, e.Y, 0, -e.Size, sin, cos)
	stemX, stemY := rotated(e.X, e.Y, 0, e.Size*1.4, sin, cos)
	var rib vector.Path
	rib.MoveTo(tipX, tipY)
	rib.LineTo(stemX, stemY)
	strokePath(dst, &rib, float32(math.Max(e.Size*0.08, 0.6)), dark, alpha*0.9)
}
