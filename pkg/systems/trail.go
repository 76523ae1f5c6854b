package systems

import (
	"bytes"
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// Trail spacing thresholds in pixels: a new segment spawns only once
// the pointer moved at least this far since the last spawn. Touch
// input uses the coarser threshold.
const (
	trailSpacingPointer = 8.0
	trailSpacingTouch   = 16.0

	trailBurstDisc  = 18
	trailBurstGlyph = 12
)

// Trail implements the cursor/touch-following family: compact discs,
// scattered discs, or single glyphs, fading by the minimum of an
// age-based and a rank-based decay.
type Trail struct {
	w       *World
	variant string
	pal     particle.Palette
	glyph   string

	// decayPerTick converts the configured fade duration into a
	// per-tick opacity decrement.
	decayPerTick float64

	lastX, lastY float64
	hasLast      bool
}

func NewTrail(w *World) Style {
	pal := particle.ByName(w.Cfg.TrailPalette)
	if w.Cfg.CustomColor != "" {
		pal = pal.WithAccent(particle.ParseHex(w.Cfg.CustomColor))
	}
	ticks := float64(w.Cfg.DurationMs) / 1000 * 60
	return &Trail{
		w:            w,
		variant:      w.Cfg.TrailStyle,
		pal:          pal,
		glyph:        w.Cfg.TrailGlyphRune,
		decayPerTick: 1 / ticks,
	}
}

func (t *Trail) Name() string { return "trail-" + t.variant }

// Seed drops any leftover segments and resets spawn tracking. The
// count argument is ignored; trail length is driven by movement and
// the configured particle cap.
func (t *Trail) Seed(count int) {
	t.w.Pool.ReleaseAll()
	t.hasLast = false
}

func (t *Trail) spacing() float64 {
	if t.w.Touch {
		return trailSpacingTouch
	}
	return trailSpacingPointer
}

func (t *Trail) Update() {
	w := t.w

	if w.PointerIn {
		if !t.hasLast {
			t.hasLast = true
			t.lastX, t.lastY = w.PointerX, w.PointerY
			t.spawnSegment(w.PointerX, w.PointerY)
		} else if math.Hypot(w.PointerX-t.lastX, w.PointerY-t.lastY) >= t.spacing() {
			t.spawnSegment(w.PointerX, w.PointerY)
			t.lastX, t.lastY = w.PointerX, w.PointerY
		}
	} else {
		t.hasLast = false
	}

	acts := w.Pool.Active()
	for i := len(acts) - 1; i >= 0; i-- {
		e := acts[i]
		if e.IsExplosion {
			if stepExplosion(e) {
				w.Pool.Release(e)
			}
			continue
		}
		e.X += e.VX
		e.Y += e.VY
		e.VX *= 0.9
		e.VY *= 0.9
		e.Rotation += e.RotationSpeed
		e.Opacity -= e.BaseOpacity * t.decayPerTick
		if e.Opacity <= 0 {
			w.Pool.Release(e)
		}
	}
}

// spawnSegment acquires one entity at the pointer location. When the
// configured cap is reached the oldest segment is recycled first.
func (t *Trail) spawnSegment(x, y float64) {
	w := t.w
	if w.Pool.ActiveCount() >= w.Cfg.MaxParticles {
		if acts := w.Pool.Active(); len(acts) > 0 {
			w.Pool.Release(acts[0])
		}
	}
	e := w.Pool.Acquire()
	e.X, e.Y = x, y
	e.HomeX, e.HomeY = x, y
	e.BaseSize = w.randSize()
	e.Size = e.BaseSize
	e.BaseOpacity = 0.7 + w.Rand.Float64()*0.3
	e.Opacity = e.BaseOpacity
	e.ColorIndex = w.Rand.Float64()
	e.RotationSpeed = (w.Rand.Float64() - 0.5) * 0.1
	if t.variant == config.TrailScatter {
		// Small random scatter velocity; compact and glyph variants
		// stay put.
		e.VX = (w.Rand.Float64() - 0.5) * 2.4
		e.VY = (w.Rand.Float64() - 0.5) * 2.4
	}
}

func (t *Trail) Draw(dst *ebiten.Image) {
	w := t.w
	a := w.Alpha()
	acts := w.Pool.Active()
	n := len(acts)
	for i, e := range acts {
		var alpha float64
		if e.IsExplosion {
			alpha = e.Opacity * a
		} else {
			// Fade by the minimum of the age decay and the rank
			// decay: under fast motion the oldest surviving segment
			// is always the dimmest.
			rank := e.BaseOpacity * float64(i+1) / float64(n)
			alpha = math.Min(e.Opacity, rank) * a
		}
		if alpha <= 0 {
			continue
		}
		clr := t.pal.At(e.ColorIndex)
		if t.variant == config.TrailGlyph && !e.IsExplosion {
			drawGlyph(dst, t.glyph, e.X, e.Y, e.Size*4, withAlpha(clr, alpha))
			continue
		}
		vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), float32(e.Size),
			withAlpha(clr, alpha), true)
	}
}

// Explode spawns the smaller trail burst; glyph trails use a slightly
// smaller count than disc trails.
func (t *Trail) Explode(x, y float64) {
	count := trailBurstDisc
	if t.variant == config.TrailGlyph {
		count = trailBurstGlyph
	}
	spawnBurst(t.w, x, y, burstOptions{count: count, sizeScale: 0.8}, func(e *particle.Entity) {
		e.ColorIndex = t.w.Rand.Float64()
	})
}

// Glyph face, shared across trail instances and loaded on first use.
var (
	glyphOnce   sync.Once
	glyphSource *text.GoTextFaceSource
)

func glyphFaceSource() *text.GoTextFaceSource {
	glyphOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("[Trail] glyph face unavailable, falling back to discs: %v", err)
			return
		}
		glyphSource = s
	})
	return glyphSource
}

func drawGlyph(dst *ebiten.Image, glyph string, x, y, size float64, clr color.Color) {
	src := glyphFaceSource()
	if src == nil {
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(size/4), clr, true)
		return
	}
	face := &text.GoTextFace{Source: src, Size: size}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, glyph, face, op)
}
