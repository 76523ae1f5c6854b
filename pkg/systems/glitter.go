package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// Glitter is the default field style: palette-cycling sparkles drawn
// as a 5-spike star polygon over a core disc.
type Glitter struct {
	w   *World
	pal particle.Palette
}

// NewGlitter builds the glitter style with the configured cycling
// palette, blending in the custom color as an extra stop when set.
func NewGlitter(w *World) Style {
	pal := particle.ByName(w.Cfg.FieldPalette)
	if w.Cfg.CustomColor != "" {
		pal = pal.WithAccent(particle.ParseHex(w.Cfg.CustomColor))
	}
	return &Glitter{w: w, pal: pal}
}

func (g *Glitter) Name() string { return config.FieldGlitter }

func (g *Glitter) Seed(count int) {
	g.w.Pool.ReleaseAll()
	for i := 0; i < count; i++ {
		e := g.w.Pool.Acquire()
		seedFieldEntity(g.w, e, 0.7+g.w.Rand.Float64()*0.6)
	}
}

func (g *Glitter) Update() {
	fieldUpdate(g.w, nil)
}

func (g *Glitter) Draw(dst *ebiten.Image) {
	a := g.w.Alpha()
	for _, e := range g.w.Pool.Active() {
		clr := g.pal.At(e.ColorIndex)
		drawSparkle(dst, e, clr, e.Opacity*a)
	}
}

func (g *Glitter) Explode(x, y float64) {
	spawnBurst(g.w, x, y, burstOptions{}, func(e *particle.Entity) {
		e.ColorIndex = g.w.Rand.Float64()
		e.ColorCycleSpeed = 0.002
	})
	repelFrom(g.w, x, y)
}

// drawSparkle renders the shared glitter base shape: star polygon
// plus core disc.
func drawSparkle(dst *ebiten.Image, e *particle.Entity, clr color.RGBA, alpha float64) {
	if alpha <= 0 || e.Size <= 0 {
		return
	}
	var p vector.Path
	appendStar(&p, e.X, e.Y, e.Size*1.6, e.Rotation)
	fillPath(dst, &p, clr, alpha*0.85)
	vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), float32(e.Size*0.55),
		withAlpha(clr, alpha), true)
}

// withAlpha converts a palette color and a [0,1] alpha into the
// straight-alpha color the vector helpers expect.
func withAlpha(clr color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(alpha * 255)}
}

// fieldUpdate runs the base field algorithm for one tick: explosion
// decay (reverse iteration, entities may release mid-loop), ambient
// drift and pointer forces with an optional per-style extra force,
// the pairwise soft repulsion, then integration, edge wrap and
// shimmer advance.
func fieldUpdate(w *World, extra func(e *particle.Entity)) {
	acts := w.Pool.Active()
	for i := len(acts) - 1; i >= 0; i-- {
		e := acts[i]
		if e.IsExplosion {
			if stepExplosion(e) {
				w.Pool.Release(e)
			}
			continue
		}
		stepDrift(e)
		stepPointer(w, e)
		if extra != nil {
			extra(e)
		}
	}
	softRepulsion(w)
	for _, e := range w.Pool.Active() {
		if e.IsExplosion {
			continue
		}
		integrateWrap(w, e)
		stepShimmer(e)
	}
}
