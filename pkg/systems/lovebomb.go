package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// LoveBomb floats bezier hearts across the field. It always cycles
// the dedicated love palette, regardless of the configured palette.
type LoveBomb struct {
	w *World
}

func NewLoveBomb(w *World) Style {
	return &LoveBomb{w: w}
}

func (l *LoveBomb) Name() string { return config.FieldLoveBomb }

func (l *LoveBomb) Seed(count int) {
	l.w.Pool.ReleaseAll()
	for i := 0; i < count; i++ {
		e := l.w.Pool.Acquire()
		seedFieldEntity(l.w, e, 0.9+l.w.Rand.Float64()*0.5)
		// Hearts swing gently rather than spin.
		e.RotationSpeed = (l.w.Rand.Float64() - 0.5) * 0.01
	}
}

func (l *LoveBomb) Update() {
	fieldUpdate(l.w, nil)
}

func (l *LoveBomb) Draw(dst *ebiten.Image) {
	a := l.w.Alpha()
	for _, e := range l.w.Pool.Active() {
		alpha := e.Opacity * a
		if alpha <= 0 {
			continue
		}
		clr := particle.Love.At(e.ColorIndex)
		var p vector.Path
		appendHeart(&p, e.X, e.Y, e.Size, e.Rotation)
		fillPath(dst, &p, clr, alpha)
	}
}

func (l *LoveBomb) Explode(x, y float64) {
	spawnBurst(l.w, x, y, burstOptions{}, func(e *particle.Entity) {
		e.ColorIndex = l.w.Rand.Float64()
		e.ColorCycleSpeed = 0.004
	})
	repelFrom(l.w, x, y)
}
