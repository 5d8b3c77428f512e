package engine

import (
	"github.com/lixenwraith/hectic/core"
)

// EntityBuilder reserves an entity handle up front and attaches components to it,
// either immediately or, for a lazy builder, at the next Maintain
//
// Example usage:
//
//	eb := world.LazyEntity()
//	engine.With(eb, world.Components.Position, component.Position(x, y))
//	engine.With(eb, world.Components.Image, component.ImageComponent{Image: asset.ImageBat})
//	e := eb.Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	lazy   bool
	built  bool
}

// NewEntity creates a builder whose components are inserted immediately
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{world: w, entity: w.CreateEntity()}
}

// LazyEntity creates a builder that reserves the handle now and queues its
// component insertions for the next Maintain
func (w *World) LazyEntity() *EntityBuilder {
	return &EntityBuilder{world: w, entity: w.CreateEntity(), lazy: true}
}

// With adds a component of type T to the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	if eb.lazy {
		LazyInsert(eb.world, store, eb.entity, component)
	} else {
		Insert(eb.world, store, eb.entity, component)
	}
	return eb
}

// Entity returns the reserved handle without finishing the builder
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes construction and returns the reserved handle
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
