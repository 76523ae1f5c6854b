package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/glimmer/pkg/config"
)

func newTestWorld(mode, style string, count int, width, height float64) *World {
	cfg := config.Default()
	cfg.Mode = mode
	if mode == config.ModeTrail {
		cfg.TrailStyle = style
	} else {
		cfg.FieldStyle = style
	}
	cfg.MaxParticles = count
	cfg.Clamp()
	return NewWorld(cfg, width, height, rand.New(rand.NewSource(42)))
}

// TestFieldSeedScenario verifies the seeding contract: glitter with
// count 200 on a 1000x800 viewport populates exactly 200 active
// entities, all inside the viewport with opacity in [0.6, 1.0].
func TestFieldSeedScenario(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 200, 1000, 800)
	s := New(w)
	s.Seed(200)

	if got := w.Pool.ActiveCount(); got != 200 {
		t.Fatalf("active count after seed = %d, want 200", got)
	}
	for i, e := range w.Pool.Active() {
		if e.X < 0 || e.X >= 1000 {
			t.Errorf("entity %d: x = %v, want [0, 1000)", i, e.X)
		}
		if e.Y < 0 || e.Y >= 800 {
			t.Errorf("entity %d: y = %v, want [0, 800)", i, e.Y)
		}
		if e.Opacity < 0.6 || e.Opacity > 1.0 {
			t.Errorf("entity %d: opacity = %v, want [0.6, 1.0]", i, e.Opacity)
		}
	}
}

// TestReseedReplacesField verifies seeding twice does not leak
// entities past the configured count.
func TestReseedReplacesField(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 50, 640, 480)
	s := New(w)
	s.Seed(50)
	s.Seed(50)
	if got := w.Pool.ActiveCount(); got != 50 {
		t.Errorf("active count after reseed = %d, want 50", got)
	}
	if got := w.Pool.ActiveCount() + w.Pool.FreeCount(); got != w.Pool.Allocated() {
		t.Errorf("pool conservation broken after reseed: %d != %d", got, w.Pool.Allocated())
	}
}

// TestPointerAttraction verifies an in-viewport pointer pulls nearby
// entities toward it.
func TestPointerAttraction(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 10, 800, 600)
	w.Cfg.Attraction = 1.0
	s := New(w)

	e := w.Pool.Acquire()
	seedFieldEntity(w, e, 1)
	e.X, e.Y = 300, 300
	e.VX, e.VY = 0, 0
	e.DriftSpeed = 0 // isolate the attraction force

	w.PointerIn = true
	w.PointerX, w.PointerY = 400, 300

	for i := 0; i < 30; i++ {
		s.Update()
	}
	if e.X <= 301 {
		t.Errorf("entity x = %v after 30 ticks, want pulled toward pointer at 400", e.X)
	}
}

// TestHomeSpringWhenPointerOut verifies the weak return-to-rest
// spring takes over when the pointer leaves the viewport.
func TestHomeSpringWhenPointerOut(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 10, 800, 600)
	s := New(w)

	e := w.Pool.Acquire()
	seedFieldEntity(w, e, 1)
	e.HomeX, e.HomeY = 400, 300
	e.X, e.Y = 500, 300
	e.VX, e.VY = 0, 0
	e.DriftSpeed = 0
	w.PointerIn = false

	before := math.Abs(e.X - e.HomeX)
	for i := 0; i < 120; i++ {
		s.Update()
	}
	after := math.Abs(e.X - e.HomeX)
	if after >= before {
		t.Errorf("home distance grew from %v to %v, want spring pull-back", before, after)
	}
}

// TestWrapAcrossEdges verifies position wrapping on all four edges.
func TestWrapAcrossEdges(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 4, 800, 600)
	e := w.Pool.Acquire()
	e.Size = 4

	e.X, e.Y = 900, 300
	wrap(w, e)
	if e.X > 100 {
		t.Errorf("x = %v after wrapping right edge, want near left edge", e.X)
	}

	e.X, e.Y = -50, 300
	wrap(w, e)
	if e.X < 700 {
		t.Errorf("x = %v after wrapping left edge, want near right edge", e.X)
	}

	e.X, e.Y = 400, 700
	wrap(w, e)
	if e.Y > 100 {
		t.Errorf("y = %v after wrapping bottom edge, want near top", e.Y)
	}

	e.X, e.Y = 400, -60
	wrap(w, e)
	if e.Y < 500 {
		t.Errorf("y = %v after wrapping top edge, want near bottom", e.Y)
	}
}

// TestSoftRepulsionSeparates verifies two overlapping entities push
// each other apart.
func TestSoftRepulsionSeparates(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 10, 800, 600)
	w.Cfg.Spread = 1.0

	a := w.Pool.Acquire()
	b := w.Pool.Acquire()
	a.X, a.Y = 400, 300
	b.X, b.Y = 410, 300

	softRepulsion(w)

	if a.VX >= 0 {
		t.Errorf("left entity vx = %v, want pushed left", a.VX)
	}
	if b.VX <= 0 {
		t.Errorf("right entity vx = %v, want pushed right", b.VX)
	}
}

// TestSoftRepulsionDisabledAtZeroSpread verifies the repulsion pass
// is a no-op when the spread strength is zero.
func TestSoftRepulsionDisabledAtZeroSpread(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 10, 800, 600)
	w.Cfg.Spread = 0

	a := w.Pool.Acquire()
	b := w.Pool.Acquire()
	a.X, a.Y = 400, 300
	b.X, b.Y = 405, 300

	softRepulsion(w)
	if a.VX != 0 || b.VX != 0 {
		t.Errorf("repulsion applied at zero spread: %v, %v", a.VX, b.VX)
	}
}

// TestRegistryFallback verifies unknown style names resolve to the
// glitter default.
func TestRegistryFallback(t *testing.T) {
	w := newTestWorld(config.ModeField, config.FieldGlitter, 10, 800, 600)
	w.Cfg.FieldStyle = "does-not-exist"
	s := New(w)
	if s.Name() != config.FieldGlitter {
		t.Errorf("fallback style = %q, want %q", s.Name(), config.FieldGlitter)
	}
}
