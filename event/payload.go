package event

import (
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/vmath"
)

// GameEvent is one queued event, stamped with the frame it was pushed on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

type SoundRequestPayload struct {
	Sound core.SoundType
}

type StageClearedPayload struct {
	Stage int
}

type EnemyKilledPayload struct {
	Entity   core.Entity
	Position vmath.Vec2
	Boss     bool
}
