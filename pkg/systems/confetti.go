package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// Confetti is the pride variant of the glitter base: each entity
// keeps one fixed color from the six-color set (no cycling) and
// tumbles with a faster signed rotation. Drawn as a flat rotating
// rectangle instead of the sparkle shape.
type Confetti struct {
	w *World
}

func NewConfetti(w *World) Style {
	return &Confetti{w: w}
}

func (c *Confetti) Name() string { return config.FieldConfetti }

func (c *Confetti) Seed(count int) {
	c.w.Pool.ReleaseAll()
	for i := 0; i < count; i++ {
		e := c.w.Pool.Acquire()
		seedFieldEntity(c.w, e, 0.8+c.w.Rand.Float64()*0.5)
		e.Color = particle.Pride.Pick(c.w.Rand)
		e.ColorCycleSpeed = 0
		// Faster signed tumble.
		e.RotationSpeed = (c.w.Rand.Float64() - 0.5) * 0.24
	}
}

func (c *Confetti) Update() {
	fieldUpdate(c.w, nil)
}

func (c *Confetti) Draw(dst *ebiten.Image) {
	a := c.w.Alpha()
	for _, e := range c.w.Pool.Active() {
		alpha := e.Opacity * a
		if alpha <= 0 {
			continue
		}
		drawConfettiRect(dst, e, alpha)
	}
}

func (c *Confetti) Explode(x, y float64) {
	spawnBurst(c.w, x, y, burstOptions{}, func(e *particle.Entity) {
		e.Color = particle.Pride.Pick(c.w.Rand)
		e.RotationSpeed = (c.w.Rand.Float64() - 0.5) * 0.4
	})
	repelFrom(c.w, x, y)
}

func drawConfettiRect(dst *ebiten.Image, e *particle.Entity, alpha float64) {
	hw := e.Size * 1.1
	hh := e.Size * 0.65
	sin, cos := sinCos(e.Rotation)
	var p vector.Path
	x0, y0 := rotated(e.X, e.Y, -hw, -hh, sin, cos)
	x1, y1 := rotated(e.X, e.Y, hw, -hh, sin, cos)
	x2, y2 := rotated(e.X, e.Y, hw, hh, sin, cos)
	x3, y3 := rotated(e.X, e.Y, -hw, hh, sin, cos)
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()
	fillPath(dst, &p, e.Color, alpha)
}
