package component

import (
	"github.com/lixenwraith/hectic/physics"
	"github.com/lixenwraith/hectic/vmath"
)

// MovementKind discriminates MovementComponent
type MovementKind uint8

const (
	MovementLinear  MovementKind = iota // Constant velocity per tick
	MovementFalling                     // Accelerating vertical fall
	MovementCurve                       // Catmull-Rom curve following
	MovementFiring                      // Advance, hold while firing, retreat
	MovementTowards                     // Straight line to a target point
)

func (k MovementKind) String() string {
	switch k {
	case MovementLinear:
		return "linear"
	case MovementFalling:
		return "falling"
	case MovementCurve:
		return "curve"
	case MovementFiring:
		return "firing"
	case MovementTowards:
		return "towards"
	}
	return "unknown"
}

// MovementComponent describes how an entity's position changes each tick
// Tagged union: only fields matching Kind are valid
type MovementComponent struct {
	Kind MovementKind

	Velocity vmath.Vec2 // Linear: units per tick

	FallSpeed float64 // Falling: current speed, grows every tick
	FallDown  bool    // Falling: direction, true towards +Y

	Curve physics.Curve // Curve

	Speed      float64    // Firing, Towards: units per tick
	StopTime   float64    // Firing: game time the advance ends
	ReturnTime float64    // Firing: game time the retreat begins
	Target     vmath.Vec2 // Towards
}

func Linear(velocity vmath.Vec2) MovementComponent {
	return MovementComponent{Kind: MovementLinear, Velocity: velocity}
}

func Falling(speed float64, down bool) MovementComponent {
	return MovementComponent{Kind: MovementFalling, FallSpeed: speed, FallDown: down}
}

func FollowCurve(c physics.Curve) MovementComponent {
	return MovementComponent{Kind: MovementCurve, Curve: c}
}

func FiringMove(speed, stopTime, returnTime float64) MovementComponent {
	return MovementComponent{Kind: MovementFiring, Speed: speed, StopTime: stopTime, ReturnTime: returnTime}
}

func MoveTowards(target vmath.Vec2, speed float64) MovementComponent {
	return MovementComponent{Kind: MovementTowards, Target: target, Speed: speed}
}
