package mode

// Mode is the top-level game state; it selects which pipeline runs each frame
type Mode uint8

const (
	ModeMainMenu Mode = iota
	ModePlaying
	ModePaused
	ModeStageTransition
	ModeGameOver
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeStageTransition:
		return "stage_transition"
	case ModeGameOver:
		return "game_over"
	case ModeQuit:
		return "quit"
	}
	return "unknown"
}
