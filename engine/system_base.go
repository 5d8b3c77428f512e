package engine

import (
	"sync/atomic"
)

// SystemBase carries the world handles every system reads
// Embed in system struct and build once with NewSystemBase
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
	}
}

// Stat returns the named counter from the status registry; cache the pointer at construction
func (b *SystemBase) Stat(name string) *atomic.Int64 {
	return b.Resource.Status.Ints.Get(name)
}
