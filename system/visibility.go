package system

import (
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/vmath"
)

// VisibilitySystem marks entities that have entered the screen and deletes
// offscreen-killable ones after they leave it
type VisibilitySystem struct {
	engine.SystemBase
}

func NewVisibilitySystem(world *engine.World) engine.System {
	s := &VisibilitySystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *VisibilitySystem) Init() {}

func (s *VisibilitySystem) Name() string { return "visibility" }

func (s *VisibilitySystem) Priority() int { return constant.PriorityVisibility }

func (s *VisibilitySystem) Update() {
	entities := s.World.Query().
		With(s.Component.Position).
		With(s.Component.Image).
		Without(s.Component.BackgroundLayer).
		Execute()

	for _, e := range entities {
		pos, _ := s.Component.Position.GetComponent(e)
		img, _ := s.Component.Image.GetComponent(e)
		w, h := img.Image.Size()

		seen := s.Component.BeenOnscreen.HasEntity(e)
		if s.onscreen(pos.Vec2, vmath.V2(w/2, h/2)) {
			if !seen {
				engine.LazyInsert(s.World, s.Component.BeenOnscreen, e, component.BeenOnscreenComponent{})
			}
			continue
		}
		if seen && s.Component.DieOffscreen.HasEntity(e) {
			s.World.LazyDelete(e)
		}
	}
}

// onscreen reports whether any part of the sprite box overlaps the screen
func (s *VisibilitySystem) onscreen(pos, half vmath.Vec2) bool {
	cfg := s.Resource.Config
	return pos.X+half.X >= 0 && pos.X-half.X <= cfg.Width &&
		pos.Y+half.Y >= 0 && pos.Y-half.Y <= cfg.Height
}
