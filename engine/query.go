package engine

import (
	"sort"

	"github.com/lixenwraith/hectic/core"
)

// QueryBuilder finds entities present in every With store and absent from every
// Without store. Candidates come from the smallest With store
type QueryBuilder struct {
	world    *World
	with     []QueryableStore
	without  []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	entities := world.Query().
//	    With(world.Components.Position).
//	    With(world.Components.Movement).
//	    Without(world.Components.FrozenUntil).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world: w,
		with:  make([]QueryableStore, 0, 4),
	}
}

// With requires the component. Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.with = append(qb.with, store)
	return qb
}

// Without excludes entities having the component. Panics if called after Execute()
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.without = append(qb.without, store)
	return qb
}

// Execute returns matching entities as a snapshot; repeated calls return the cached result
// A query with no With store matches nothing
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.with) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes membership checks; stable keeps ties in declaration order
	sort.SliceStable(qb.with, func(i, j int) bool {
		return qb.with[i].CountEntities() < qb.with[j].CountEntities()
	})

	candidates := qb.with[0].GetAllEntities()
	filtered := candidates[:0]
	for _, e := range candidates {
		if qb.matches(e) {
			filtered = append(filtered, e)
		}
	}

	qb.results = filtered
	return qb.results
}

func (qb *QueryBuilder) matches(e core.Entity) bool {
	for _, s := range qb.with[1:] {
		if !s.HasEntity(e) {
			return false
		}
	}
	for _, s := range qb.without {
		if s.HasEntity(e) {
			return false
		}
	}
	return true
}
