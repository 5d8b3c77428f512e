package system

import (
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/vmath"
)

// BombSystem grows bombs and clears bomb-sensitive entities inside their radius
type BombSystem struct {
	engine.SystemBase
}

func NewBombSystem(world *engine.World) engine.System {
	s := &BombSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *BombSystem) Init() {}

func (s *BombSystem) Name() string { return "bomb" }

func (s *BombSystem) Priority() int { return constant.PriorityBomb }

func (s *BombSystem) Update() {
	bombs := s.World.Query().With(s.Component.Bomb).With(s.Component.Position).Execute()
	if len(bombs) == 0 {
		return
	}
	targets := s.World.Query().With(s.Component.CollidesWithBomb).With(s.Component.Position).Execute()

	for _, b := range bombs {
		bomb, _ := s.Component.Bomb.GetComponent(b)
		center, _ := s.Component.Position.GetComponent(b)

		bomb.Radius += bomb.Growth
		if bomb.Radius > bomb.MaxRadius {
			s.World.LazyDelete(b)
			continue
		}
		s.Component.Bomb.SetComponent(b, bomb)

		r2 := bomb.Radius * bomb.Radius
		for _, t := range targets {
			pos, ok := s.Component.Position.GetComponent(t)
			if !ok {
				continue
			}
			if vmath.V2MagSq(vmath.V2Sub(pos.Vec2, center.Vec2)) <= r2 {
				s.World.LazyDelete(t)
			}
		}
	}
}
