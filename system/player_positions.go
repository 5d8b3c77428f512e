package system

import (
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
)

// PlayerPositionsSystem publishes live player positions for aiming
type PlayerPositionsSystem struct {
	engine.SystemBase
}

func NewPlayerPositionsSystem(world *engine.World) engine.System {
	s := &PlayerPositionsSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *PlayerPositionsSystem) Init() {
	s.Resource.Players.Positions = s.Resource.Players.Positions[:0]
}

func (s *PlayerPositionsSystem) Name() string { return "player_positions" }

func (s *PlayerPositionsSystem) Priority() int { return constant.PriorityPlayerPositions }

func (s *PlayerPositionsSystem) Update() {
	players := s.Resource.Players
	players.Positions = players.Positions[:0]
	for _, e := range s.World.Query().With(s.Component.Player).With(s.Component.Position).Execute() {
		pos, _ := s.Component.Position.GetComponent(e)
		players.Positions = append(players.Positions, pos.Vec2)
	}
}
