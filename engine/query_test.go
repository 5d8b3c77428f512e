package engine

import (
	"testing"

	"github.com/lixenwraith/hectic/component"
)

// TestQueryJoin verifies N-way intersection and negated joins
func TestQueryJoin(t *testing.T) {
	w := NewTestWorld()
	c := w.Components

	e1 := w.CreateEntity()
	c.Position.SetComponent(e1, component.Position(1, 1))
	c.Movement.SetComponent(e1, component.Linear(component.Position(0, 1).Vec2))

	e2 := w.CreateEntity()
	c.Position.SetComponent(e2, component.Position(2, 2))
	c.Movement.SetComponent(e2, component.Linear(component.Position(0, 1).Vec2))
	c.FrozenUntil.SetComponent(e2, component.FrozenUntilComponent{Time: 5})

	e3 := w.CreateEntity()
	c.Position.SetComponent(e3, component.Position(3, 3))

	both := w.Query().With(c.Position).With(c.Movement).Execute()
	if len(both) != 2 {
		t.Errorf("Expected 2 moving entities, got %d", len(both))
	}

	active := w.Query().With(c.Position).With(c.Movement).Without(c.FrozenUntil).Execute()
	if len(active) != 1 || active[0] != e1 {
		t.Errorf("Expected only e1 unfrozen, got %v", active)
	}

	if got := w.Query().Without(c.FrozenUntil).Execute(); len(got) != 0 {
		t.Errorf("Expected query without With to match nothing, got %v", got)
	}
}

// TestQueryPanicAfterExecute verifies builders are single use
func TestQueryPanicAfterExecute(t *testing.T) {
	w := NewTestWorld()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when modifying executed query")
		}
	}()

	q := w.Query().With(w.Components.Position)
	q.Execute()
	q.With(w.Components.Movement)
}
