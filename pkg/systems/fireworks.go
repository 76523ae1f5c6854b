package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// Fireworks tuning. Rockets are plain slice-managed (bounded, not
// pooled); only their bursts go through the entity pool.
const (
	rocketGravity    = 0.045
	rocketApexSpeed  = -0.8
	burstGravity     = 0.05
	burstDrag        = 0.985
	fireworkDecay    = 0.012
	fireworkBurstMin = 60
	fireworkBurstMax = 90
	launchDelayMin   = 40 // ticks
	launchDelayMax   = 150
)

// Fireworks launches rockets from the bottom edge on a randomized
// timer and detonates them at apex into gravity-affected bursts. A
// click detonates an ad-hoc rocket at the click point immediately,
// bypassing the launch timer.
type Fireworks struct {
	w           *World
	rockets     []*particle.Rocket
	launchDelay int
}

func NewFireworks(w *World) Style {
	return &Fireworks{w: w}
}

func (f *Fireworks) Name() string { return config.FieldFireworks }

// Seed spawns no field entities; it resets the rockets and schedules
// the first launch. count is ignored (burst sizes are fixed).
func (f *Fireworks) Seed(count int) {
	f.w.Pool.ReleaseAll()
	f.rockets = f.rockets[:0]
	f.launchDelay = launchDelayMin / 2
}

func (f *Fireworks) Update() {
	w := f.w

	f.launchDelay--
	if f.launchDelay <= 0 {
		if len(f.rockets) < particle.MaxRockets {
			f.launch()
		}
		f.launchDelay = launchDelayMin + w.Rand.Intn(launchDelayMax-launchDelayMin)
	}

	for i := len(f.rockets) - 1; i >= 0; i-- {
		r := f.rockets[i]
		r.PrevX, r.PrevY = r.X, r.Y
		r.VY += rocketGravity
		r.X += r.VX
		r.Y += r.VY
		switch {
		case r.Y < -40:
			// Exited upward before apex: discarded without
			// detonating.
			f.removeRocket(i)
		case r.VY >= rocketApexSpeed:
			f.detonateAt(r.X, r.Y, r.Color)
			f.removeRocket(i)
		}
	}

	// Burst entities fall under gravity with drag until their life
	// runs out or they drop off-screen, then release.
	acts := w.Pool.Active()
	for i := len(acts) - 1; i >= 0; i-- {
		e := acts[i]
		e.ExplosionLife -= fireworkDecay
		if e.ExplosionLife <= 0 || e.Y > w.Height+50 {
			w.Pool.Release(e)
			continue
		}
		e.VY += burstGravity
		e.VX *= burstDrag
		e.VY *= burstDrag
		e.X += e.VX
		e.Y += e.VY
		e.Opacity = e.BaseOpacity * e.ExplosionLife
		e.Size = e.BaseSize * (0.4 + 0.6*e.ExplosionLife)
	}
}

func (f *Fireworks) launch() {
	w := f.w
	// Initial speed chosen so the apex lands between roughly 15% and
	// 55% of the viewport height.
	apex := w.Height * (0.45 + w.Rand.Float64()*0.4)
	vy := -math.Sqrt(2 * rocketGravity * apex)
	r := &particle.Rocket{
		X:     w.Width * (0.1 + w.Rand.Float64()*0.8),
		Y:     w.Height + 10,
		VX:    (w.Rand.Float64() - 0.5) * 1.2,
		VY:    vy,
		Color: particle.Rockets.Pick(w.Rand),
	}
	r.PrevX, r.PrevY = r.X, r.Y
	f.rockets = append(f.rockets, r)
}

func (f *Fireworks) removeRocket(i int) {
	f.rockets = append(f.rockets[:i], f.rockets[i+1:]...)
}

// detonateAt spawns the radial burst of explosion entities carrying
// the rocket's color with a little per-entity variation.
func (f *Fireworks) detonateAt(x, y float64, clr color.RGBA) {
	w := f.w
	n := fireworkBurstMin + w.Rand.Intn(fireworkBurstMax-fireworkBurstMin)
	spawnBurst(w, x, y, burstOptions{count: n, sizeScale: 0.6}, func(e *particle.Entity) {
		e.Color = jitterColor(w, clr, 30)
	})
}

func jitterColor(w *World, clr color.RGBA, spread int) color.RGBA {
	j := func(v uint8) uint8 {
		n := int(v) + w.Rand.Intn(2*spread+1) - spread
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{R: j(clr.R), G: j(clr.G), B: j(clr.B), A: 255}
}

func (f *Fireworks) Draw(dst *ebiten.Image) {
	a := f.w.Alpha()

	// Ascending rockets: glow trail line plus a bright head. The
	// trail extends back along the last tick's travel.
	for _, r := range f.rockets {
		tx := r.X + (r.PrevX-r.X)*4
		ty := r.Y + (r.PrevY-r.Y)*4
		vector.StrokeLine(dst, float32(tx), float32(ty), float32(r.X), float32(r.Y),
			2, withAlpha(r.Color, 0.6*a), true)
		drawSoftDisc(dst, r.X, r.Y, 7, r.Color, 0.5*a)
		vector.DrawFilledCircle(dst, float32(r.X), float32(r.Y), 1.8,
			withAlpha(color.RGBA{255, 255, 240, 255}, a), true)
	}

	// Burst entities: soft glow under a bright core.
	for _, e := range f.w.Pool.Active() {
		alpha := e.Opacity * a
		if alpha <= 0 {
			continue
		}
		drawSoftDisc(dst, e.X, e.Y, e.Size*2.4, e.Color, alpha*0.7)
		vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), float32(e.Size*0.6),
			withAlpha(e.Color, alpha), true)
	}
}

// Explode detonates an ad-hoc rocket at the click point immediately.
func (f *Fireworks) Explode(x, y float64) {
	f.detonateAt(x, y, particle.Rockets.Pick(f.w.Rand))
}
