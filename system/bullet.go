package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/vmath"
)

// BulletSystem materializes queued bullet requests as entities
type BulletSystem struct {
	engine.SystemBase

	statSpawned *atomic.Int64
}

func NewBulletSystem(world *engine.World) engine.System {
	s := &BulletSystem{SystemBase: engine.NewSystemBase(world)}
	s.statSpawned = s.Stat("bullet.spawned")
	s.Init()
	return s
}

func (s *BulletSystem) Init() {}

func (s *BulletSystem) Name() string { return "bullet" }

func (s *BulletSystem) Priority() int { return constant.PriorityBullet }

func (s *BulletSystem) Update() {
	requests := s.Resource.Spawner.Drain()
	for _, r := range requests {
		eb := s.World.LazyEntity()
		engine.With(eb, s.Component.Position, component.PositionComponent{Vec2: r.Position})
		engine.With(eb, s.Component.Movement, component.Linear(r.Velocity))
		engine.With(eb, s.Component.Image, component.ImageComponent{Image: r.Bullet.Image})
		engine.With(eb, s.Component.Rotation, component.RotationComponent{Angle: vmath.V2Angle(r.Velocity)})
		engine.With(eb, s.Component.Hitbox, component.Hitbox(0, 0))
		engine.With(eb, s.Component.Health, component.Health(parameter.BulletHealth))
		engine.With(eb, s.Component.DieOffscreen, component.DieOffscreenComponent{})
		if r.Friendly {
			engine.With(eb, s.Component.Friendly, component.FriendlyComponent{})
		} else {
			engine.With(eb, s.Component.Enemy, component.EnemyComponent{})
			engine.With(eb, s.Component.CollidesWithBomb, component.CollidesWithBombComponent{})
		}
		if r.Bullet.Colour != nil {
			engine.With(eb, s.Component.ColourOverlay, component.ColourOverlayComponent{Colour: *r.Bullet.Colour, Alpha: 1})
		}
		eb.Build()
	}
	s.statSpawned.Add(int64(len(requests)))
}
