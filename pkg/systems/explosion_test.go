package systems

import (
	"math"
	"testing"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// TestBurstShape verifies the click burst contract: 40 entities, all
// explosion-flagged, speeds in [3, 8].
func TestBurstShape(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 100, 800, 600)
	spawnBurst(w, 400, 300, burstOptions{}, func(e *particle.Entity) {})

	if got := w.Pool.ActiveCount(); got != burstCount {
		t.Fatalf("burst spawned %d entities, want %d", got, burstCount)
	}
	for i, e := range w.Pool.Active() {
		if !e.IsExplosion {
			t.Errorf("entity %d not explosion-flagged", i)
		}
		if e.ExplosionLife != 1 {
			t.Errorf("entity %d: explosionLife = %v, want 1", i, e.ExplosionLife)
		}
		speed := math.Hypot(e.VX, e.VY)
		if speed < burstSpeedMin-1e-9 || speed > burstSpeedMax+1e-9 {
			t.Errorf("entity %d: speed = %v, want [%v, %v]", i, speed, burstSpeedMin, burstSpeedMax)
		}
	}
}

// TestExplosionDecayBound verifies an explosion entity's opacity
// never increases and the entity is released within ~50 ticks at the
// 0.02/tick decay rate.
func TestExplosionDecayBound(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 100, 800, 600)
	s := New(w)
	spawnBurst(w, 400, 300, burstOptions{}, func(e *particle.Entity) {})

	prev := make(map[*particle.Entity]float64)
	for _, e := range w.Pool.Active() {
		prev[e] = e.Opacity
	}

	released := -1
	for tick := 1; tick <= 60; tick++ {
		s.Update()
		for _, e := range w.Pool.Active() {
			if last, ok := prev[e]; ok && e.Opacity > last+1e-9 {
				t.Fatalf("tick %d: opacity increased %v -> %v", tick, last, e.Opacity)
			}
			prev[e] = e.Opacity
		}
		if w.Pool.ActiveCount() == 0 {
			released = tick
			break
		}
	}
	if released < 0 {
		t.Fatal("burst entities not released within 60 ticks")
	}
	if released > 55 {
		t.Errorf("burst released after %d ticks, want ~50 for decay 0.02", released)
	}
}

// TestClickRepulsionImpulse verifies the instantaneous impulse pushes
// nearby field entities away from the click point, closer = stronger.
func TestClickRepulsionImpulse(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 100, 800, 600)

	near := w.Pool.Acquire()
	near.X, near.Y = 420, 300
	far := w.Pool.Acquire()
	far.X, far.Y = 520, 300

	repelFrom(w, 400, 300)

	if near.VX <= 0 {
		t.Errorf("near entity vx = %v, want pushed away (positive)", near.VX)
	}
	if far.VX <= 0 {
		t.Errorf("far entity vx = %v, want pushed away (positive)", far.VX)
	}
	if near.VX <= far.VX {
		t.Errorf("near impulse %v not stronger than far impulse %v", near.VX, far.VX)
	}
}

// TestRepulsionIgnoresExplosionEntities verifies explosion particles
// are not kicked by a subsequent click.
func TestRepulsionIgnoresExplosionEntities(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 100, 800, 600)
	e := w.Pool.Acquire()
	e.X, e.Y = 420, 300
	e.IsExplosion = true
	e.ExplosionLife = 1

	repelFrom(w, 400, 300)
	if e.VX != 0 || e.VY != 0 {
		t.Errorf("explosion entity received impulse: (%v, %v)", e.VX, e.VY)
	}
}
