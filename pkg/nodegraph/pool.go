// Identity pools map caller-supplied ids to stable storage slots.
// Entities are redeclared every frame; the pool keeps a slot alive as
// long as its id keeps appearing and recycles it once the id goes
// missing for a frame.

package nodegraph

// objectPool is a slot arena keyed by external id. Slot indices are
// stable for as long as an entity stays live; after reclamation the
// same id may land in a different slot.
type objectPool[T any] struct {
	slots []T
	ids   []int
	inUse []bool
	free  []int
	index map[int]int

	create func(id int) T
}

func newObjectPool[T any](create func(id int) T) objectPool[T] {
	return objectPool[T]{
		index:  make(map[int]int),
		create: create,
	}
}

// find returns the live slot for id without marking it in use.
func (p *objectPool[T]) find(id int) (int, bool) {
	idx, ok := p.index[id]
	return idx, ok
}

// findOrCreate returns the slot for id, resurrecting a free slot or
// appending a new one when the id is unknown, and marks it in use.
// The second return reports whether a fresh slot was allocated.
func (p *objectPool[T]) findOrCreate(id int) (int, bool) {
	idx, ok := p.index[id]
	created := false
	if !ok {
		created = true
		if n := len(p.free); n > 0 {
			idx = p.free[n-1]
			p.free = p.free[:n-1]
			p.slots[idx] = p.create(id)
			p.ids[idx] = id
		} else {
			p.slots = append(p.slots, p.create(id))
			p.ids = append(p.ids, id)
			p.inUse = append(p.inUse, false)
			idx = len(p.slots) - 1
		}
		p.index[id] = idx
	}
	p.inUse[idx] = true
	return idx, created
}

// reset clears all in-use flags. Called once at the start of a frame,
// before declarations are ingested.
func (p *objectPool[T]) reset() {
	for i := range p.inUse {
		p.inUse[i] = false
	}
}

// reclaim frees every slot left unused this frame and drops its id
// mapping. evicted, if non-nil, runs once per slot on the frame its
// mapping is removed. The mapping check guards against a stale free
// slot whose id has since been recreated elsewhere.
func (p *objectPool[T]) reclaim(evicted func(slot int)) {
	p.free = p.free[:0]
	for i, used := range p.inUse {
		if used {
			continue
		}
		if idx, ok := p.index[p.ids[i]]; ok && idx == i {
			delete(p.index, p.ids[i])
			if evicted != nil {
				evicted(i)
			}
		}
		p.free = append(p.free, i)
	}
}
