package engine

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/event"
)

// World contains all entities, their components in typed stores, and the
// singleton resources systems share
type World struct {
	mu       sync.Mutex
	entities entityAllocator
	stores   []AnyStore
	commands commandBuffer

	Components    ComponentStore
	Resources     Resource
	ResourceStore *ResourceStore
}

// NewWorld creates a world with every component store and default core resources
func NewWorld() *World {
	w := &World{
		ResourceStore: NewResourceStore(),
	}
	initComponentStores(w)
	initCoreResources(w)
	return w
}

// CreateEntity allocates a live entity with no components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entities.allocate()
}

// IsAlive reports whether e refers to a live entity of the current generation
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entities.isAlive(e)
}

// DeleteEntity removes e and all its components immediately
// Returns false, doing nothing, if e is already dead
func (w *World) DeleteEntity(e core.Entity) bool {
	w.mu.Lock()
	released := w.entities.release(e)
	w.mu.Unlock()
	if !released {
		return false
	}
	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
	return true
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entities.count
}

// Clear deletes every entity, drops pending lazy operations and per-frame scratch resources
func (w *World) Clear() {
	w.mu.Lock()
	w.entities.releaseAll()
	w.mu.Unlock()

	for _, s := range w.stores {
		s.ClearAllComponents()
	}
	w.commands.reset()
	w.Resources.Damage.Contacts = w.Resources.Damage.Contacts[:0]
	w.Resources.Spawner.Requests = w.Resources.Spawner.Requests[:0]
	w.Resources.Players.Positions = w.Resources.Players.Positions[:0]
}

// Insert adds a component to a live entity immediately
// Panics on a dead entity: a dangling handle reaching here is a logic error
func Insert[T any](w *World, store *Store[T], e core.Entity, val T) {
	if !w.IsAlive(e) {
		panic(fmt.Sprintf("insert on dead entity %d (index %d, generation %d)", e, e.Index(), e.Generation()))
	}
	store.SetComponent(e, val)
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.Frame,
	})
}
