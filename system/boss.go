package system

import (
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
)

// BossSystem runs the boss move cycle: travel to the move's target, fire its
// pattern for the move's duration, then advance to the next move
type BossSystem struct {
	engine.SystemBase
}

func NewBossSystem(world *engine.World) engine.System {
	s := &BossSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *BossSystem) Init() {}

func (s *BossSystem) Name() string { return "boss" }

func (s *BossSystem) Priority() int { return constant.PriorityBoss }

func (s *BossSystem) Update() {
	dt := s.Resource.Time.Delta

	bosses := s.World.Query().
		With(s.Component.Boss).
		With(s.Component.Position).
		Without(s.Component.FrozenUntil).
		Execute()

	for _, e := range bosses {
		boss, _ := s.Component.Boss.GetComponent(e)
		if len(boss.Moves) == 0 {
			continue
		}
		pos, _ := s.Component.Position.GetComponent(e)
		move := boss.Move()

		if pos.Vec2 != move.Target {
			s.travel(e, &boss)
			continue
		}

		if boss.MoveTimer == 0 && !s.Component.FiresBullets.HasEntity(e) {
			s.Component.FiresBullets.SetComponent(e, move.Fires.Clone())
		}

		boss.MoveTimer += dt
		if boss.MoveTimer >= move.Duration {
			s.Component.FiresBullets.RemoveEntity(e)
			boss.Advance()
			s.travel(e, &boss)
		}
		s.Component.Boss.SetComponent(e, boss)
	}
}

// travel points the boss at its current move's target
func (s *BossSystem) travel(e core.Entity, boss *component.BossComponent) {
	target := boss.Move().Target
	if mv, ok := s.Component.Movement.GetComponent(e); ok &&
		mv.Kind == component.MovementTowards && mv.Target == target && mv.Speed == boss.Speed {
		return
	}
	s.Component.Movement.SetComponent(e, component.MoveTowards(target, boss.Speed))
}
