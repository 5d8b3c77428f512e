package system

import (
	"log"

	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/event"
)

// StageProgressSystem watches the running stage and reports its outcome once:
// cleared when the boss (or, for a boss-less stage, every enemy body) is gone,
// game over when no player is left
type StageProgressSystem struct {
	engine.SystemBase
}

func NewStageProgressSystem(world *engine.World) engine.System {
	s := &StageProgressSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *StageProgressSystem) Init() {}

func (s *StageProgressSystem) Name() string { return "stage_progress" }

func (s *StageProgressSystem) Priority() int { return constant.PriorityStageProgress }

func (s *StageProgressSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventEnemyKilled}
}

func (s *StageProgressSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventEnemyKilled {
		s.Resource.Stage.Kills++
	}
}

func (s *StageProgressSystem) Update() {
	stage := s.Resource.Stage
	if !stage.Active {
		return
	}

	if s.Component.Player.CountEntities() == 0 {
		stage.Active = false
		log.Printf("[stage] %q lost at %.1fs, %d kills", stage.Name, s.Resource.Time.Total, stage.Kills)
		s.World.PushEvent(event.EventGameOver, nil)
		return
	}

	if s.cleared() {
		stage.Active = false
		log.Printf("[stage] %q cleared at %.1fs, %d kills", stage.Name, s.Resource.Time.Total, stage.Kills)
		s.World.PushEvent(event.EventStageCleared, &event.StageClearedPayload{Stage: stage.ID})
	}
}

func (s *StageProgressSystem) cleared() bool {
	if s.Resource.Stage.BossSpawned {
		return s.Component.Boss.CountEntities() == 0
	}
	// Enemy bodies carry hitboxes larger than the zero-size bullet marker
	for _, e := range s.World.Query().With(s.Component.Enemy).With(s.Component.Hitbox).Execute() {
		box, _ := s.Component.Hitbox.GetComponent(e)
		if box.Half.X > 0 || box.Half.Y > 0 {
			return false
		}
	}
	return true
}
