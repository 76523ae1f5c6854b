package particle

// Pool is a fixed-capacity reusable-entity allocator. It eliminates
// per-frame allocation: every entity is created up front and shuttled
// between the free list and the active set.
//
// The active set preserves insertion order. Trail styles rely on that
// order as a recency signal (oldest entity first), so Release keeps
// the remaining entities in order rather than swap-deleting.
type Pool struct {
	free      []*Entity
	active    []*Entity
	allocated int
}

// NewPool creates a pool pre-sized to capacity entities. Capacity
// should include explosion headroom on top of the target particle
// count so the pool never grows mid-animation.
func NewPool(capacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	p := &Pool{
		free:      make([]*Entity, 0, capacity),
		active:    make([]*Entity, 0, capacity),
		allocated: capacity,
	}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, &Entity{})
	}
	return p
}

// Acquire removes one entity from the free list, resets it and marks
// it active. If the pool is exhausted a fresh entity is allocated;
// growth is permitted but the initial sizing heuristic should make it
// rare.
func (p *Pool) Acquire() *Entity {
	var e *Entity
	if n := len(p.free); n > 0 {
		e = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		e = &Entity{}
		p.allocated++
	}
	*e = Entity{Active: true}
	p.active = append(p.active, e)
	return e
}

// Release returns e to the free list. Callers must not retain the
// reference past this call. Releasing an entity that is not active is
// a no-op.
//
// The scan runs from the end of the active set because releases
// almost always happen during a reverse iteration over it.
func (p *Pool) Release(e *Entity) {
	if e == nil || !e.Active {
		return
	}
	for i := len(p.active) - 1; i >= 0; i-- {
		if p.active[i] == e {
			copy(p.active[i:], p.active[i+1:])
			p.active[len(p.active)-1] = nil
			p.active = p.active[:len(p.active)-1]
			e.Active = false
			p.free = append(p.free, e)
			return
		}
	}
}

// ReleaseAll drains every active entity back into the pool.
func (p *Pool) ReleaseAll() {
	for _, e := range p.active {
		e.Active = false
		p.free = append(p.free, e)
	}
	p.active = p.active[:0]
}

// Active returns the live working set in insertion order. The slice
// is owned by the pool; callers iterate it but must not keep it
// across a Release or Acquire.
func (p *Pool) Active() []*Entity {
	return p.active
}

// ActiveCount returns the number of entities currently active.
func (p *Pool) ActiveCount() int { return len(p.active) }

// FreeCount returns the number of entities on the free list.
func (p *Pool) FreeCount() int { return len(p.free) }

// Allocated returns the total number of entities ever allocated.
// ActiveCount()+FreeCount() always equals Allocated().
func (p *Pool) Allocated() int { return p.allocated }
