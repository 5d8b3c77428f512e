package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
)

// TimeKeeperSystem advances the game clock and thaws entities whose freeze has expired
type TimeKeeperSystem struct {
	engine.SystemBase

	statEntities *atomic.Int64
	statFrozen   *atomic.Int64
}

func NewTimeKeeperSystem(world *engine.World) engine.System {
	s := &TimeKeeperSystem{SystemBase: engine.NewSystemBase(world)}
	s.statEntities = s.Stat("world.entities")
	s.statFrozen = s.Stat("world.frozen")
	s.Init()
	return s
}

func (s *TimeKeeperSystem) Init() {}

func (s *TimeKeeperSystem) Name() string { return "timekeeper" }

func (s *TimeKeeperSystem) Priority() int { return constant.PriorityTimekeeper }

func (s *TimeKeeperSystem) Update() {
	s.Resource.Time.Tick()
	now := s.Resource.Time.Total

	for _, e := range s.Component.FrozenUntil.GetAllEntities() {
		frozen, _ := s.Component.FrozenUntil.GetComponent(e)
		if frozen.Time <= now {
			s.Component.FrozenUntil.RemoveEntity(e)
		}
	}

	s.statEntities.Store(int64(s.World.EntityCount()))
	s.statFrozen.Store(int64(s.Component.FrozenUntil.CountEntities()))
}
