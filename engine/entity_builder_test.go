package engine

import (
	"testing"

	"github.com/lixenwraith/hectic/component"
)

// TestEntityBuilderImmediate verifies components land as they are added
func TestEntityBuilderImmediate(t *testing.T) {
	w := NewTestWorld()
	eb := w.NewEntity()
	With(eb, w.Components.Position, component.Position(5, 10))
	With(eb, w.Components.Health, component.Health(2))
	e := eb.Build()

	pos, ok := w.Components.Position.GetComponent(e)
	if !ok || pos.X != 5 || pos.Y != 10 {
		t.Errorf("Expected position (5,10), got %+v %v", pos, ok)
	}
	if !w.Components.Health.HasEntity(e) {
		t.Error("Expected health component")
	}
}

// TestEntityBuilderLazy verifies the handle is reserved now and components arrive at Maintain
func TestEntityBuilderLazy(t *testing.T) {
	w := NewTestWorld()
	eb := w.LazyEntity()
	reserved := eb.Entity()
	With(eb, w.Components.Position, component.Position(1, 1))
	e := eb.Build()

	if e != reserved {
		t.Errorf("Expected reserved handle %d, got %d", reserved, e)
	}
	if !w.IsAlive(e) {
		t.Error("Expected reserved entity alive before Maintain")
	}
	if w.Components.Position.HasEntity(e) {
		t.Error("Expected component deferred")
	}
	w.Maintain()
	if !w.Components.Position.HasEntity(e) {
		t.Error("Expected component after Maintain")
	}
}

// TestEntityBuilderPanicsAfterBuild verifies builders are sealed by Build
func TestEntityBuilderPanicsAfterBuild(t *testing.T) {
	w := NewTestWorld()
	eb := w.NewEntity()
	eb.Build()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic adding after Build")
		}
	}()
	With(eb, w.Components.Position, component.Position(0, 0))
}
