package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/physics"
)

// CollisionSystem records every touching friendly/enemy pair for the damage pass
type CollisionSystem struct {
	engine.SystemBase

	statContacts *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{SystemBase: engine.NewSystemBase(world)}
	s.statContacts = s.Stat("collision.contacts")
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return constant.PriorityCollision }

func (s *CollisionSystem) Update() {
	friendlies := s.World.Query().
		With(s.Component.Friendly).
		With(s.Component.Position).
		With(s.Component.Hitbox).
		Without(s.Component.FrozenUntil).
		Execute()
	enemies := s.World.Query().
		With(s.Component.Enemy).
		With(s.Component.Position).
		With(s.Component.Hitbox).
		Without(s.Component.FrozenUntil).
		Execute()

	tracker := s.Resource.Damage
	for _, f := range friendlies {
		fPos, _ := s.Component.Position.GetComponent(f)
		fBox, _ := s.Component.Hitbox.GetComponent(f)
		for _, en := range enemies {
			ePos, _ := s.Component.Position.GetComponent(en)
			eBox, _ := s.Component.Hitbox.GetComponent(en)
			if !physics.IsTouching(fPos.Vec2, fBox.Half, ePos.Vec2, eBox.Half) {
				continue
			}
			tracker.Contacts = append(tracker.Contacts, engine.Contact{
				Friendly: f,
				Enemy:    en,
				Position: physics.ContactPoint(fPos.Vec2, fBox.Half, ePos.Vec2, eBox.Half),
			})
			s.statContacts.Add(1)
		}
	}
}
