package system

import (
	"math"

	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/vmath"
)

// WeaponSystem fires the patterns of every unfrozen shooter that has been on screen
type WeaponSystem struct {
	engine.SystemBase
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) Priority() int { return constant.PriorityWeapon }

func (s *WeaponSystem) Update() {
	entities := s.World.Query().
		With(s.Component.FiresBullets).
		With(s.Component.Position).
		With(s.Component.BeenOnscreen).
		Without(s.Component.FrozenUntil).
		Execute()

	for _, e := range entities {
		fires, _ := s.Component.FiresBullets.GetComponent(e)
		pos, _ := s.Component.Position.GetComponent(e)
		friendly := s.Component.Friendly.HasEntity(e)

		s.fire(&fires, pos.Vec2, friendly)
		s.Component.FiresBullets.SetComponent(e, fires)

		if fires.Done() {
			engine.LazyRemove(s.World, s.Component.FiresBullets, e)
		}
	}
}

// fire advances one pattern node, recursing into composites
func (s *WeaponSystem) fire(f *component.FiresBulletsComponent, origin vmath.Vec2, friendly bool) {
	now := s.Resource.Time.Total

	switch f.Kind {
	case component.FireMultiple:
		for i := range f.Patterns {
			s.fire(&f.Patterns[i], origin, friendly)
		}
		return
	case component.FireArc:
		if f.Done() {
			return
		}
	}

	if !f.Cooldown.IsReady(now) {
		return
	}

	switch f.Kind {
	case component.FireAtPlayer:
		cfg := s.Resource.Config
		target := s.Resource.Players.Random(s.Resource.RNG.Rand, cfg.Width, cfg.Height)
		base := vmath.V2Angle(vmath.V2Sub(target, origin))
		mid := float64(f.Count-1) / 2
		for i := 0; i < f.Count; i++ {
			s.emit(f.Bullet, origin, base+f.Spread*(mid-float64(i))/float64(f.Count), friendly)
		}

	case component.FireCircle:
		for i := 0; i < f.Count; i++ {
			s.emit(f.Bullet, origin, f.Rotation+float64(i)*2*math.Pi/float64(f.Count), friendly)
		}
		f.Rotation += f.RotationStep

	case component.FireArc:
		n := min(f.Count, f.Total-f.Fired)
		for i := 0; i < n; i++ {
			s.emit(f.Bullet, origin, arcAngle(f, f.Fired), friendly)
			f.Fired++
		}
	}
}

// arcAngle is the bearing of the index-th bullet of a sweep that starts at the
// initial rotation and ends spread radians later
func arcAngle(f *component.FiresBulletsComponent, index int) float64 {
	if f.Total <= 1 {
		return f.Rotation
	}
	return f.Rotation + f.Spread*float64(index)/float64(f.Total-1)
}

func (s *WeaponSystem) emit(bullet component.BulletSetup, origin vmath.Vec2, angle float64, friendly bool) {
	s.Resource.Spawner.Push(engine.BulletRequest{
		Position: origin,
		Velocity: vmath.V2FromAngle(angle, bullet.Speed),
		Bullet:   bullet,
		Friendly: friendly,
	})
}
