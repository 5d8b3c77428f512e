package system

import (
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/physics"
	"github.com/lixenwraith/hectic/vmath"
)

// TargetingSystem locks newly active homing entities onto a player, once
type TargetingSystem struct {
	engine.SystemBase
}

func NewTargetingSystem(world *engine.World) engine.System {
	s := &TargetingSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *TargetingSystem) Init() {}

func (s *TargetingSystem) Name() string { return "targeting" }

func (s *TargetingSystem) Priority() int { return constant.PriorityTargeting }

func (s *TargetingSystem) Update() {
	entities := s.World.Query().
		With(s.Component.TargetPlayer).
		With(s.Component.Position).
		Without(s.Component.FrozenUntil).
		Execute()
	if len(entities) == 0 {
		return
	}

	cfg := s.Resource.Config
	rng := s.Resource.RNG.Rand
	for _, e := range entities {
		tp, _ := s.Component.TargetPlayer.GetComponent(e)
		pos, _ := s.Component.Position.GetComponent(e)

		target := s.Resource.Players.Random(rng, cfg.Width, cfg.Height)
		vel := physics.Heading(pos.Vec2, target, tp.Speed)

		engine.LazyInsert(s.World, s.Component.Movement, e, component.Linear(vel))
		engine.LazyInsert(s.World, s.Component.Rotation, e, component.RotationComponent{Angle: vmath.V2Angle(vel)})
		engine.LazyRemove(s.World, s.Component.TargetPlayer, e)
	}
}
