package systems

import (
	"testing"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/particle"
)

// TestFireworksLaunchCycle runs the style for a while and verifies
// rockets launch, stay bounded, and detonate into pooled burst
// entities that eventually release again.
func TestFireworksLaunchCycle(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldFireworks, 100, 800, 600)
	s := New(w)
	s.Seed(0)

	fw := s.(*Fireworks)
	sawRocket := false
	sawBurst := false
	for tick := 0; tick < 3000; tick++ {
		s.Update()
		if len(fw.rockets) > particle.MaxRockets {
			t.Fatalf("tick %d: %d rockets, want at most %d", tick, len(fw.rockets), particle.MaxRockets)
		}
		if len(fw.rockets) > 0 {
			sawRocket = true
		}
		if w.Pool.ActiveCount() > 0 {
			sawBurst = true
		}
	}
	if !sawRocket {
		t.Error("no rocket ever launched over 3000 ticks")
	}
	if !sawBurst {
		t.Error("no burst entities ever spawned over 3000 ticks")
	}
	// Every pooled entity in this style is an explosion particle.
	for i, e := range w.Pool.Active() {
		if !e.IsExplosion {
			t.Errorf("entity %d is not explosion-flagged", i)
		}
	}
}

// TestFireworksBurstsDecayAndRelease verifies burst entities drain
// back to the pool within their lifetime.
func TestFireworksBurstsDecayAndRelease(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldFireworks, 100, 800, 600)
	s := New(w)
	s.Seed(0)
	fw := s.(*Fireworks)
	fw.launchDelay = 1 << 30 // no timed launches during the test

	s.Explode(400, 300)
	if w.Pool.ActiveCount() < fireworkBurstMin {
		t.Fatalf("click burst spawned %d entities, want at least %d", w.Pool.ActiveCount(), fireworkBurstMin)
	}

	// 1/fireworkDecay ticks drains the life; add slack for the
	// off-screen release path.
	decay := float64(fireworkDecay)
	limit := int(1/decay) + 20
	for tick := 0; tick < limit; tick++ {
		s.Update()
	}
	if got := w.Pool.ActiveCount(); got != 0 {
		t.Errorf("%d burst entities still active after %d ticks", got, limit)
	}
	if got := w.Pool.ActiveCount() + w.Pool.FreeCount(); got != w.Pool.Allocated() {
		t.Errorf("pool conservation broken: %d != %d", got, w.Pool.Allocated())
	}
}

// TestFireworksClickDetonatesImmediately verifies a click bypasses
// the launch timer: the burst appears at the click point on the same
// tick, carried by no ascending rocket.
func TestFireworksClickDetonatesImmediately(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldFireworks, 100, 800, 600)
	s := New(w)
	s.Seed(0)
	fw := s.(*Fireworks)

	s.Explode(250, 180)

	if len(fw.rockets) != 0 {
		t.Errorf("click added %d ascending rockets, want 0", len(fw.rockets))
	}
	n := w.Pool.ActiveCount()
	if n < fireworkBurstMin || n >= fireworkBurstMax {
		t.Fatalf("click burst = %d entities, want [%d, %d)", n, fireworkBurstMin, fireworkBurstMax)
	}
	for i, e := range w.Pool.Active() {
		if e.X != 250 || e.Y != 180 {
			t.Errorf("entity %d spawned at (%v, %v), want click point (250, 180)", i, e.X, e.Y)
		}
	}
}

// TestRocketDiscardedAboveViewport verifies a rocket that exits the
// top before apex is dropped without a burst.
func TestRocketDiscardedAboveViewport(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldFireworks, 100, 800, 600)
	s := New(w)
	s.Seed(0)
	fw := s.(*Fireworks)
	fw.launchDelay = 1 << 30

	fw.rockets = append(fw.rockets, &particle.Rocket{X: 400, Y: -35, VX: 0, VY: -6})
	s.Update()

	if len(fw.rockets) != 0 {
		t.Errorf("escaped rocket still tracked: %d rockets", len(fw.rockets))
	}
	if got := w.Pool.ActiveCount(); got != 0 {
		t.Errorf("escaped rocket spawned %d burst entities, want 0", got)
	}
}
