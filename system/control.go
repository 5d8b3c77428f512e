package system

import (
	"math"

	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/event"
	"github.com/lixenwraith/hectic/input"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/vmath"
)

// ControlSystem translates control state into player movement, volleys and bombs
type ControlSystem struct {
	engine.SystemBase
}

func NewControlSystem(world *engine.World) engine.System {
	s := &ControlSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *ControlSystem) Init() {}

func (s *ControlSystem) Name() string { return "control" }

func (s *ControlSystem) Priority() int { return constant.PriorityControl }

func (s *ControlSystem) Update() {
	controls := s.Resource.Input.Controls
	now := s.Resource.Time.Total

	if controls.ConsumeAny(input.ActionDebug) {
		s.Resource.Debug.Hitboxes = !s.Resource.Debug.Hitboxes
	}

	cfg := s.Resource.Config
	for _, e := range s.World.Query().With(s.Component.Player).With(s.Component.Position).Execute() {
		player, _ := s.Component.Player.GetComponent(e)
		pos, _ := s.Component.Position.GetComponent(e)
		idx := player.Index

		var dir vmath.Vec2
		if controls.Held(idx, input.ActionLeft) {
			dir.X--
		}
		if controls.Held(idx, input.ActionRight) {
			dir.X++
		}
		if controls.Held(idx, input.ActionUp) {
			dir.Y--
		}
		if controls.Held(idx, input.ActionDown) {
			dir.Y++
		}
		pos.Vec2 = vmath.V2Clamp(
			vmath.V2Add(pos.Vec2, vmath.V2Scale(dir, parameter.PlayerSpeed)),
			vmath.Vec2{},
			vmath.V2(cfg.Width, cfg.Height),
		)
		s.Component.Position.SetComponent(e, pos)

		if controls.Held(idx, input.ActionFire) {
			if cd, ok := s.Component.Cooldown.GetComponent(e); ok && cd.IsReady(now) {
				s.Component.Cooldown.SetComponent(e, cd)
				s.volley(pos.Vec2)
			}
		}

		if controls.Consume(idx, input.ActionBomb) {
			if bar, ok := s.Component.PowerBar.GetComponent(e); ok && bar.Empty() {
				s.Component.PowerBar.SetComponent(e, bar)
				s.bomb(pos)
			}
		}
	}
}

func (s *ControlSystem) volley(origin vmath.Vec2) {
	for _, d := range parameter.PlayerVolleyAngles {
		s.Resource.Spawner.Push(engine.BulletRequest{
			Position: origin,
			Velocity: vmath.V2(math.Sin(d)*parameter.PlayerBulletSpeed, -math.Cos(d)*parameter.PlayerBulletSpeed),
			Bullet:   component.BulletSetup{Image: playerBulletImage, Speed: parameter.PlayerBulletSpeed},
			Friendly: true,
		})
	}
	s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundShot})
}

func (s *ControlSystem) bomb(pos component.PositionComponent) {
	eb := s.World.LazyEntity()
	engine.With(eb, s.Component.Position, pos)
	engine.With(eb, s.Component.Bomb, component.BombComponent{
		Growth:    parameter.BombGrowth,
		MaxRadius: parameter.BombMaxRadius,
	})
	eb.Build()
	s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundBomb})
}
