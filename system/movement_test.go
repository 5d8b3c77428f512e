package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/physics"
	"github.com/lixenwraith/hectic/vmath"
)

func spawnMover(w *engine.World, x, y float64, mv component.MovementComponent) core.Entity {
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.Position(x, y))
	w.Components.Movement.SetComponent(e, mv)
	return e
}

func positionOf(w *engine.World, e core.Entity) vmath.Vec2 {
	pos, _ := w.Components.Position.GetComponent(e)
	return pos.Vec2
}

// TestMovementKinds verifies one tick of each movement variant
func TestMovementKinds(t *testing.T) {
	w := engine.NewTestWorld()
	linear := spawnMover(w, 10, 10, component.Linear(vmath.V2(1, -2)))
	fallDown := spawnMover(w, 10, 10, component.Falling(1, true))
	fallUp := spawnMover(w, 10, 10, component.Falling(1, false))
	towards := spawnMover(w, 0, 0, component.MoveTowards(vmath.V2(3, 4), 2))
	arrive := spawnMover(w, 0, 0, component.MoveTowards(vmath.V2(1, 1), 5))

	NewMovementSystem(w).Update()

	if got := positionOf(w, linear); got != vmath.V2(11, 8) {
		t.Errorf("Linear moved to %v", got)
	}
	if got := positionOf(w, fallDown); got != vmath.V2(10, 11) {
		t.Errorf("Falling down moved to %v", got)
	}
	if got := positionOf(w, fallUp); got != vmath.V2(10, 9) {
		t.Errorf("Falling up moved to %v", got)
	}
	mv, _ := w.Components.Movement.GetComponent(fallDown)
	if mv.FallSpeed != 1+parameter.FallAcceleration {
		t.Errorf("Expected fall speed to accelerate, got %f", mv.FallSpeed)
	}
	if got := positionOf(w, towards); math.Abs(got.X-1.2) > 1e-9 || math.Abs(got.Y-1.6) > 1e-9 {
		t.Errorf("Towards moved to %v", got)
	}
	if got := positionOf(w, arrive); got != vmath.V2(1, 1) {
		t.Errorf("Expected snap onto target, got %v", got)
	}
}

// TestFiringMovePhases verifies advance, hold and retreat around the stop and return times
func TestFiringMovePhases(t *testing.T) {
	w := engine.NewTestWorld()
	e := spawnMover(w, 100, 0, component.FiringMove(10, 1, 2))
	move := NewMovementSystem(w)

	move.Update()
	if y := positionOf(w, e).Y; y != 10 {
		t.Errorf("Expected advance to 10, got %f", y)
	}

	w.Resources.Time.Total = 1.5
	move.Update()
	if y := positionOf(w, e).Y; y != 10 {
		t.Errorf("Expected hold at 10, got %f", y)
	}

	w.Resources.Time.Total = 2
	move.Update()
	if y := positionOf(w, e).Y; y != 0 {
		t.Errorf("Expected retreat to 0, got %f", y)
	}
}

// TestFiringMoveStopsAtCentre verifies advancing never overshoots the screen centre
func TestFiringMoveStopsAtCentre(t *testing.T) {
	w := engine.NewTestWorld()
	centre := w.Resources.Config.Height / 2
	e := spawnMover(w, 100, centre-3, component.FiringMove(10, 5, 6))
	NewMovementSystem(w).Update()
	if y := positionOf(w, e).Y; y != centre {
		t.Errorf("Expected clamp at centre %f, got %f", centre, y)
	}
}

// TestCurveMovementSpeed verifies curve followers travel at the curve speed
func TestCurveMovementSpeed(t *testing.T) {
	w := engine.NewTestWorld()
	curve := physics.HorizontalCurve(100, 300, true, 3)
	start := curve.Point(0)
	e := spawnMover(w, start.X, start.Y, component.FollowCurve(curve))
	move := NewMovementSystem(w)

	prev := start
	for i := 0; i < 50; i++ {
		move.Update()
		cur := positionOf(w, e)
		if d := vmath.V2Dist(prev, cur); math.Abs(d-3) > physics.CurveTolerance+1e-9 {
			t.Fatalf("Step %d travelled %.3f", i, d)
		}
		prev = cur
	}
}

// TestFrozenDoesNotMove verifies frozen entities keep their position
func TestFrozenDoesNotMove(t *testing.T) {
	w := engine.NewTestWorld()
	e := spawnMover(w, 10, 10, component.Linear(vmath.V2(5, 5)))
	w.Components.FrozenUntil.SetComponent(e, component.FrozenUntilComponent{Time: 1})
	NewMovementSystem(w).Update()
	if got := positionOf(w, e); got != vmath.V2(10, 10) {
		t.Errorf("Frozen entity moved to %v", got)
	}
}

// TestUnknownMovementPanics verifies a corrupt tagged union is a fault
func TestUnknownMovementPanics(t *testing.T) {
	w := engine.NewTestWorld()
	spawnMover(w, 0, 0, component.MovementComponent{Kind: 99})
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on unknown movement kind")
		}
	}()
	NewMovementSystem(w).Update()
}

// TestTargetingLocksOnce verifies homing entities get a fixed heading toward a player
func TestTargetingLocksOnce(t *testing.T) {
	w := engine.NewTestWorld()
	w.Resources.Players.Positions = []vmath.Vec2{vmath.V2(100, 200)}
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.Position(100, 0))
	w.Components.TargetPlayer.SetComponent(e, component.TargetPlayerComponent{Speed: 4})

	step(w, NewTargetingSystem(w))

	if w.Components.TargetPlayer.HasEntity(e) {
		t.Error("Expected trigger removed after lock")
	}
	mv, ok := w.Components.Movement.GetComponent(e)
	if !ok || mv.Kind != component.MovementLinear {
		t.Fatal("Expected linear movement")
	}
	if math.Abs(mv.Velocity.X) > 1e-9 || math.Abs(mv.Velocity.Y-4) > 1e-9 {
		t.Errorf("Expected heading (0,4), got %v", mv.Velocity)
	}
}

// TestTargetingFallback verifies targeting still resolves with no players alive
func TestTargetingFallback(t *testing.T) {
	w := engine.NewTestWorld()
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.Position(100, 0))
	w.Components.TargetPlayer.SetComponent(e, component.TargetPlayerComponent{Speed: 4})

	step(w, NewTargetingSystem(w))

	mv, ok := w.Components.Movement.GetComponent(e)
	if !ok {
		t.Fatal("Expected movement from fallback target")
	}
	if s := vmath.V2Mag(mv.Velocity); s > 4+1e-9 {
		t.Errorf("Expected speed at most 4, got %f", s)
	}
}

// TestBackgroundWrap verifies layers past twice their height jump back four heights
func TestBackgroundWrap(t *testing.T) {
	w := engine.NewTestWorld()
	e := w.CreateEntity()
	_, h := testBackground.Size()
	w.Components.Position.SetComponent(e, component.Position(240, 2*h+1))
	w.Components.Image.SetComponent(e, component.ImageComponent{Image: testBackground})
	w.Components.BackgroundLayer.SetComponent(e, component.BackgroundLayerComponent{})

	NewBackgroundSystem(w).Update()
	if y := positionOf(w, e).Y; y != 1-2*h {
		t.Errorf("Expected wrap to %f, got %f", 1-2*h, y)
	}
}
