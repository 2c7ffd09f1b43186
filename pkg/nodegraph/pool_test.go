package nodegraph

import "testing"

type poolItem struct {
	id    int
	value int
}

func newTestPool() objectPool[poolItem] {
	return newObjectPool(func(id int) poolItem { return poolItem{id: id} })
}

func TestPoolSlotStableAcrossFrames(t *testing.T) {
	p := newTestPool()

	idx, created := p.findOrCreate(7)
	if !created {
		t.Fatal("first declaration should create")
	}
	p.slots[idx].value = 42

	// Entity state survives redeclaration in later frames
	for frame := 0; frame < 3; frame++ {
		p.reset()
		got, created := p.findOrCreate(7)
		if created {
			t.Fatalf("frame %d: redeclared id should not create", frame)
		}
		if got != idx {
			t.Fatalf("frame %d: slot moved from %d to %d", frame, idx, got)
		}
		p.reclaim(nil)
	}
	if p.slots[idx].value != 42 {
		t.Errorf("slot state lost: %d", p.slots[idx].value)
	}
}

func TestPoolReclaimAndReuse(t *testing.T) {
	p := newTestPool()
	a, _ := p.findOrCreate(1)
	b, _ := p.findOrCreate(2)

	// Frame where id 1 goes missing
	p.reset()
	p.findOrCreate(2)
	evictions := 0
	p.reclaim(func(slot int) {
		evictions++
		if slot != a {
			t.Errorf("evicted slot %d, want %d", slot, a)
		}
	})
	if evictions != 1 {
		t.Fatalf("evictions = %d, want 1", evictions)
	}
	if _, ok := p.find(1); ok {
		t.Error("id 1 should be unmapped after reclaim")
	}
	if got, ok := p.find(2); !ok || got != b {
		t.Errorf("id 2 mapping disturbed: %d %v", got, ok)
	}

	// A new id takes the freed slot instead of growing the arena
	p.reset()
	p.findOrCreate(2)
	c, created := p.findOrCreate(3)
	if !created || c != a {
		t.Errorf("id 3 got slot %d (created=%v), want freed slot %d", c, created, a)
	}
	if len(p.slots) != 2 {
		t.Errorf("arena grew to %d slots, want 2", len(p.slots))
	}
}

func TestPoolEvictionFiresOncePerDisappearance(t *testing.T) {
	p := newTestPool()
	p.findOrCreate(1)
	p.findOrCreate(2)

	// id 2 stays missing for several frames; the eviction callback must
	// fire only on the first one.
	evictions := 0
	for frame := 0; frame < 3; frame++ {
		p.reset()
		p.findOrCreate(1)
		p.reclaim(func(int) { evictions++ })
	}
	if evictions != 1 {
		t.Errorf("evictions = %d, want 1", evictions)
	}
}

func TestPoolRecreateAfterEviction(t *testing.T) {
	p := newTestPool()
	orig, _ := p.findOrCreate(5)
	p.slots[orig].value = 9

	p.reset()
	p.reclaim(nil)

	p.reset()
	idx, created := p.findOrCreate(5)
	if !created {
		t.Fatal("evicted id should create a fresh slot")
	}
	if p.slots[idx].value != 0 {
		t.Errorf("resurrected slot kept stale state: %d", p.slots[idx].value)
	}
}

func TestPoolReclaimKeepsRecreatedID(t *testing.T) {
	p := newTestPool()
	p.findOrCreate(1)
	p.findOrCreate(2)

	// id 1 vanishes, freeing slot 0
	p.reset()
	p.findOrCreate(2)
	p.reclaim(nil)

	// id 3 takes slot 0, then id 1 comes back into a new slot
	p.reset()
	p.findOrCreate(2)
	three, _ := p.findOrCreate(3)
	one, _ := p.findOrCreate(1)
	p.reclaim(nil)

	if got, ok := p.find(3); !ok || got != three {
		t.Errorf("id 3 mapping broken: %d %v", got, ok)
	}
	if got, ok := p.find(1); !ok || got != one {
		t.Errorf("id 1 mapping broken: %d %v", got, ok)
	}
	if one == three {
		t.Error("distinct ids share a slot")
	}
}
