package system

import (
	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/parameter"
)

// ExplosionSystem animates explosions and removes them after the last frame
type ExplosionSystem struct {
	engine.SystemBase
}

func NewExplosionSystem(world *engine.World) engine.System {
	s := &ExplosionSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *ExplosionSystem) Init() {}

func (s *ExplosionSystem) Name() string { return "explosion" }

func (s *ExplosionSystem) Priority() int { return constant.PriorityExplosion }

func (s *ExplosionSystem) Update() {
	now := s.Resource.Time.Total
	frames := len(asset.ExplosionFrames)

	for _, e := range s.World.Query().With(s.Component.Explosion).Execute() {
		ex, _ := s.Component.Explosion.GetComponent(e)
		frame := int((now - ex.Start) / parameter.ExplosionDuration * float64(frames))
		if frame >= frames {
			s.World.LazyDelete(e)
			continue
		}
		s.Component.Image.SetComponent(e, component.ImageComponent{Image: asset.ExplosionFrames[max(frame, 0)]})
	}
}
