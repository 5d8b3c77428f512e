package engine

import (
	"github.com/lixenwraith/hectic/core"
)

// entityAllocator hands out generation-checked entity handles and recycles freed slots
type entityAllocator struct {
	generations []uint32 // Current generation per slot
	alive       []bool
	free        []uint32 // LIFO stack of reusable slots
	count       int
}

func (a *entityAllocator) allocate() core.Entity {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.generations))
		a.generations = append(a.generations, 1)
		a.alive = append(a.alive, false)
	}
	a.alive[idx] = true
	a.count++
	return core.NewEntity(idx, a.generations[idx])
}

func (a *entityAllocator) isAlive(e core.Entity) bool {
	idx := e.Index()
	return int(idx) < len(a.generations) && a.alive[idx] && a.generations[idx] == e.Generation()
}

// release frees the slot and bumps its generation so outstanding handles go stale
func (a *entityAllocator) release(e core.Entity) bool {
	if !a.isAlive(e) {
		return false
	}
	idx := e.Index()
	a.alive[idx] = false
	a.generations[idx]++
	if a.generations[idx] == 0 {
		a.generations[idx] = 1
	}
	a.free = append(a.free, idx)
	a.count--
	return true
}

// releaseAll frees every live slot. Slots are pushed highest first so reuse starts from slot 0
func (a *entityAllocator) releaseAll() {
	for i := len(a.alive) - 1; i >= 0; i-- {
		if a.alive[i] {
			a.release(core.NewEntity(uint32(i), a.generations[i]))
		}
	}
	a.free = a.free[:0]
	for i := len(a.alive) - 1; i >= 0; i-- {
		a.free = append(a.free, uint32(i))
	}
}
