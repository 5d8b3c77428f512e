package system

import (
	"fmt"

	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/physics"
)

// MovementSystem advances every unfrozen entity with a movement
type MovementSystem struct {
	engine.SystemBase
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return constant.PriorityMovement }

func (s *MovementSystem) Update() {
	now := s.Resource.Time.Total
	centerY := s.Resource.Config.Height / 2

	entities := s.World.Query().
		With(s.Component.Movement).
		With(s.Component.Position).
		Without(s.Component.FrozenUntil).
		Execute()

	for _, e := range entities {
		mv, _ := s.Component.Movement.GetComponent(e)
		pos, _ := s.Component.Position.GetComponent(e)

		switch mv.Kind {
		case component.MovementLinear:
			pos.X += mv.Velocity.X
			pos.Y += mv.Velocity.Y

		case component.MovementFalling:
			if mv.FallDown {
				pos.Y += mv.FallSpeed
			} else {
				pos.Y -= mv.FallSpeed
			}
			mv.FallSpeed += parameter.FallAcceleration
			s.Component.Movement.SetComponent(e, mv)

		case component.MovementCurve:
			pos.Vec2 = mv.Curve.Step(pos.Vec2)
			s.Component.Movement.SetComponent(e, mv)

		case component.MovementFiring:
			switch {
			case now < mv.StopTime:
				// Advance towards the vertical centre, never past it
				if pos.Y < centerY {
					pos.Y = min(pos.Y+mv.Speed, centerY)
				} else {
					pos.Y = max(pos.Y-mv.Speed, centerY)
				}
			case now >= mv.ReturnTime:
				if pos.Y <= centerY {
					pos.Y -= mv.Speed
				} else {
					pos.Y += mv.Speed
				}
			}

		case component.MovementTowards:
			pos.Vec2, _ = physics.MoveTowards(pos.Vec2, mv.Target, mv.Speed)

		default:
			panic(fmt.Sprintf("movement: unknown kind %d on entity %d", mv.Kind, e))
		}

		s.Component.Position.SetComponent(e, pos)
	}
}
