package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/event"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/vmath"
)

// DamageSystem resolves recorded contacts: the friendly side is hit first and,
// only if that hit lands, the enemy is hit and an explosion spawns
type DamageSystem struct {
	engine.SystemBase

	statKills *atomic.Int64
}

func NewDamageSystem(world *engine.World) engine.System {
	s := &DamageSystem{SystemBase: engine.NewSystemBase(world)}
	s.statKills = s.Stat("damage.kills")
	s.Init()
	return s
}

func (s *DamageSystem) Init() {}

func (s *DamageSystem) Name() string { return "damage" }

func (s *DamageSystem) Priority() int { return constant.PriorityDamage }

func (s *DamageSystem) Update() {
	rng := s.Resource.RNG.Rand

	for _, c := range s.Resource.Damage.Drain() {
		landed, _ := s.damage(c.Friendly)
		if !landed {
			continue
		}

		pos, _ := s.Component.Position.GetComponent(c.Enemy)
		boss := s.Component.Boss.HasEntity(c.Enemy)
		_, killed := s.damage(c.Enemy)

		at := vmath.V2Add(c.Position, vmath.V2(
			rng.Range(-parameter.ExplosionJitter, parameter.ExplosionJitter),
			rng.Range(-parameter.ExplosionJitter, parameter.ExplosionJitter),
		))
		s.explosion(at)

		if !killed {
			continue
		}
		s.statKills.Add(1)
		s.World.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{Entity: c.Enemy, Position: pos.Vec2, Boss: boss})
		s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundExplosion})

		if rng.Float64() > parameter.OrbDropChance {
			s.orb(at, rng.Float64() > parameter.BigOrbChance)
		}
	}
}

// damage applies one hit to e if it has health and its invulnerability window allows.
// Returns whether the hit landed and whether it killed e
func (s *DamageSystem) damage(e core.Entity) (landed, killed bool) {
	if !s.World.IsAlive(e) {
		return false, false
	}
	health, ok := s.Component.Health.GetComponent(e)
	if !ok {
		return false, false
	}
	if invul, ok := s.Component.Invulnerability.GetComponent(e); ok {
		if !invul.CanDamage(s.Resource.Time.Total) {
			return false, false
		}
		s.Component.Invulnerability.SetComponent(e, invul)
	}

	health.Damage()
	if health.Dead() {
		s.World.DeleteEntity(e)
		return true, true
	}
	s.Component.Health.SetComponent(e, health)
	return true, false
}

func (s *DamageSystem) explosion(at vmath.Vec2) {
	eb := s.World.LazyEntity()
	engine.With(eb, s.Component.Position, component.PositionComponent{Vec2: at})
	engine.With(eb, s.Component.Explosion, component.ExplosionComponent{Start: s.Resource.Time.Total})
	engine.With(eb, s.Component.Image, component.ImageComponent{Image: asset.ImageExplosion1})
	eb.Build()
}

func (s *DamageSystem) orb(at vmath.Vec2, big bool) {
	img, value := orbImage, uint32(parameter.OrbValue)
	if big {
		img, value = bigOrbImage, parameter.BigOrbValue
	}
	eb := s.World.LazyEntity()
	engine.With(eb, s.Component.Position, component.PositionComponent{Vec2: at})
	engine.With(eb, s.Component.Image, component.ImageComponent{Image: img})
	engine.With(eb, s.Component.Movement, component.Falling(0, true))
	engine.With(eb, s.Component.Hitbox, component.Hitbox(parameter.OrbHitboxHalf, parameter.OrbHitboxHalf))
	engine.With(eb, s.Component.PowerOrb, component.PowerOrbComponent{Value: value})
	engine.With(eb, s.Component.DieOffscreen, component.DieOffscreenComponent{})
	eb.Build()
}
