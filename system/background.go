package system

import (
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
)

// BackgroundSystem wraps scrolled background layers back above the screen
type BackgroundSystem struct {
	engine.SystemBase
}

func NewBackgroundSystem(world *engine.World) engine.System {
	s := &BackgroundSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *BackgroundSystem) Init() {}

func (s *BackgroundSystem) Name() string { return "background" }

func (s *BackgroundSystem) Priority() int { return constant.PriorityBackground }

func (s *BackgroundSystem) Update() {
	entities := s.World.Query().
		With(s.Component.BackgroundLayer).
		With(s.Component.Position).
		With(s.Component.Image).
		Execute()

	for _, e := range entities {
		img, _ := s.Component.Image.GetComponent(e)
		pos, _ := s.Component.Position.GetComponent(e)
		_, h := img.Image.Size()
		if pos.Y > 2*h {
			pos.Y -= 4 * h
			s.Component.Position.SetComponent(e, pos)
		}
	}
}
