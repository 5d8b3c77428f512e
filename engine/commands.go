package engine

import (
	"sync"

	"github.com/lixenwraith/hectic/core"
)

// command is one deferred world mutation, applied at Maintain
type command func(w *World)

// commandBuffer queues deferred mutations in submission order
type commandBuffer struct {
	mu      sync.Mutex
	pending []command
}

func (b *commandBuffer) push(c command) {
	b.mu.Lock()
	b.pending = append(b.pending, c)
	b.mu.Unlock()
}

func (b *commandBuffer) take() []command {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}

func (b *commandBuffer) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *commandBuffer) reset() {
	b.mu.Lock()
	b.pending = nil
	b.mu.Unlock()
}

// LazyInsert queues a component insertion for the next Maintain
// Dropped silently if e dies before then
func LazyInsert[T any](w *World, store *Store[T], e core.Entity, val T) {
	w.commands.push(func(w *World) {
		if w.IsAlive(e) {
			store.SetComponent(e, val)
		}
	})
}

// LazyRemove queues a component removal for the next Maintain
func LazyRemove[T any](w *World, store *Store[T], e core.Entity) {
	w.commands.push(func(w *World) {
		if w.IsAlive(e) {
			store.RemoveEntity(e)
		}
	})
}

// LazyDelete queues entity deletion for the next Maintain
func (w *World) LazyDelete(e core.Entity) {
	w.commands.push(func(w *World) {
		w.DeleteEntity(e)
	})
}

// Maintain applies queued lazy operations in submission order. This is the
// per-frame sync point; operations queued while applying run in the same call
func (w *World) Maintain() {
	for {
		batch := w.commands.take()
		if len(batch) == 0 {
			return
		}
		for _, c := range batch {
			c(w)
		}
	}
}

// PendingCommands returns the number of lazy operations awaiting Maintain
func (w *World) PendingCommands() int {
	return w.commands.len()
}
