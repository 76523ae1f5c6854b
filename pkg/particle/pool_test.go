package particle

import "testing"

// TestPoolConservation verifies that for any sequence of acquires and
// releases, free + active always equals the total allocated count and
// no entity sits in both sets.
func TestPoolConservation(t *testing.T) {
	p := NewPool(16)

	check := func(step string) {
		t.Helper()
		if got := p.ActiveCount() + p.FreeCount(); got != p.Allocated() {
			t.Errorf("%s: active(%d)+free(%d) = %d, want allocated %d",
				step, p.ActiveCount(), p.FreeCount(), got, p.Allocated())
		}
		seen := make(map[*Entity]bool)
		for _, e := range p.Active() {
			if !e.Active {
				t.Errorf("%s: inactive entity in active set", step)
			}
			seen[e] = true
		}
		for _, e := range p.free {
			if e.Active {
				t.Errorf("%s: active entity on free list", step)
			}
			if seen[e] {
				t.Errorf("%s: entity reachable from both free list and active set", step)
			}
		}
	}

	check("initial")

	var held []*Entity
	for i := 0; i < 10; i++ {
		held = append(held, p.Acquire())
	}
	check("after 10 acquires")

	// Release every other entity.
	for i := 0; i < len(held); i += 2 {
		p.Release(held[i])
	}
	check("after interleaved releases")

	// Exhaust the pool; growth must keep the books balanced.
	for i := 0; i < 20; i++ {
		p.Acquire()
	}
	check("after growth past capacity")

	p.ReleaseAll()
	check("after ReleaseAll")
	if p.ActiveCount() != 0 {
		t.Errorf("ReleaseAll left %d active entities", p.ActiveCount())
	}
}

// TestPoolInsertionOrder verifies that the active set preserves
// insertion order across releases. Trail fading uses this order as a
// recency signal.
func TestPoolInsertionOrder(t *testing.T) {
	p := NewPool(8)
	a := p.Acquire()
	b := p.Acquire()
	c := p.Acquire()
	d := p.Acquire()

	p.Release(b)

	want := []*Entity{a, c, d}
	got := p.Active()
	if len(got) != len(want) {
		t.Fatalf("active count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("active[%d] out of order after release", i)
		}
	}
}

// TestPoolReleaseIsIdempotent verifies that releasing an already
// released entity does not corrupt the free list.
func TestPoolReleaseIsIdempotent(t *testing.T) {
	p := NewPool(4)
	e := p.Acquire()
	p.Release(e)
	p.Release(e)

	if got := p.FreeCount(); got != 4 {
		t.Errorf("free count after double release = %d, want 4", got)
	}
	if got := p.ActiveCount() + p.FreeCount(); got != p.Allocated() {
		t.Errorf("conservation broken: %d != %d", got, p.Allocated())
	}
}

// TestPoolAcquireResets verifies that a recycled entity carries no
// state over from its previous life.
func TestPoolAcquireResets(t *testing.T) {
	p := NewPool(1)
	e := p.Acquire()
	e.X, e.Y = 40, 50
	e.IsExplosion = true
	e.ExplosionLife = 0.5
	p.Release(e)

	e2 := p.Acquire()
	if e2 != e {
		t.Fatal("expected the single pooled entity to be recycled")
	}
	if e2.X != 0 || e2.Y != 0 || e2.IsExplosion || e2.ExplosionLife != 0 {
		t.Errorf("recycled entity not reset: %+v", e2)
	}
	if !e2.Active {
		t.Error("acquired entity not marked active")
	}
}
