package system

import (
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/event"
	"github.com/lixenwraith/hectic/physics"
)

// OrbSystem lets players collect power orbs into their power bar
type OrbSystem struct {
	engine.SystemBase
}

func NewOrbSystem(world *engine.World) engine.System {
	s := &OrbSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *OrbSystem) Init() {}

func (s *OrbSystem) Name() string { return "orb" }

func (s *OrbSystem) Priority() int { return constant.PriorityOrb }

func (s *OrbSystem) Update() {
	orbs := s.World.Query().
		With(s.Component.PowerOrb).
		With(s.Component.Position).
		With(s.Component.Hitbox).
		Execute()
	if len(orbs) == 0 {
		return
	}
	players := s.World.Query().
		With(s.Component.Player).
		With(s.Component.PowerBar).
		With(s.Component.Position).
		With(s.Component.Hitbox).
		Execute()

	for _, p := range players {
		pPos, _ := s.Component.Position.GetComponent(p)
		pBox, _ := s.Component.Hitbox.GetComponent(p)
		for _, o := range orbs {
			if !s.World.IsAlive(o) {
				continue
			}
			oPos, _ := s.Component.Position.GetComponent(o)
			oBox, _ := s.Component.Hitbox.GetComponent(o)
			if !physics.IsTouching(pPos.Vec2, pBox.Half, oPos.Vec2, oBox.Half) {
				continue
			}
			orb, _ := s.Component.PowerOrb.GetComponent(o)
			bar, _ := s.Component.PowerBar.GetComponent(p)
			bar.Add(orb.Value)
			s.Component.PowerBar.SetComponent(p, bar)
			s.World.DeleteEntity(o)
			s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundPickup})
		}
	}
}
