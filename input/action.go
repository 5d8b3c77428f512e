package input

// Action is a logical control, independent of the key bound to it
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionBomb
	ActionPause // Global
	ActionDebug // Global
	ActionCount
)

// MaxPlayers is the number of control slots
const MaxPlayers = 2

var actionNames = [ActionCount]string{
	ActionUp:    "up",
	ActionDown:  "down",
	ActionLeft:  "left",
	ActionRight: "right",
	ActionFire:  "fire",
	ActionBomb:  "bomb",
	ActionPause: "pause",
	ActionDebug: "debug",
}

func (a Action) String() string {
	if a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Global reports whether the action belongs to the [global] keymap section
// rather than a player section. Global actions are recorded on player slot 0
func (a Action) Global() bool {
	return a == ActionPause || a == ActionDebug
}

func actionByName(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionCount, false
}
