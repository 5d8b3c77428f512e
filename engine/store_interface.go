package engine

import (
	"github.com/lixenwraith/hectic/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World tears entities down through this without knowing component types
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	ClearAllComponents()
}

// QueryableStore extends AnyStore with the enumeration the query builder intersects
type QueryableStore interface {
	AnyStore
	GetAllEntities() []core.Entity
}
