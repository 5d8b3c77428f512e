package event

// EventType represents the type of game event
type EventType int

const (
	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest EventType = iota

	// EventStageCleared reports the stage boss is gone
	// Trigger: StageProgressSystem
	// Consumer: mode machine | Payload: *StageClearedPayload
	EventStageCleared

	// EventGameOver reports every player is dead
	// Trigger: StageProgressSystem
	// Consumer: mode machine | Payload: nil
	EventGameOver

	// EventEnemyKilled reports an enemy removed by damage
	// Trigger: DamageSystem
	// Consumer: StageProgressSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled
)

func (t EventType) String() string {
	switch t {
	case EventSoundRequest:
		return "sound_request"
	case EventStageCleared:
		return "stage_cleared"
	case EventGameOver:
		return "game_over"
	case EventEnemyKilled:
		return "enemy_killed"
	}
	return "unknown"
}
