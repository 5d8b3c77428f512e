package input

// Button tracks one action's held state plus an unconsumed press edge
type Button struct {
	Held    bool
	pressed bool
}

// PlayerControls is one control slot
type PlayerControls struct {
	Buttons [ActionCount]Button
}

// Controls is the per-frame control state written by frontends and read by the simulation
type Controls struct {
	Players [MaxPlayers]PlayerControls
}

func NewControls() *Controls {
	return &Controls{}
}

// Set records a key transition. A release-to-press transition arms the press
// edge, which stays armed until consumed
func (c *Controls) Set(player int, a Action, down bool) {
	if player < 0 || player >= MaxPlayers || a >= ActionCount {
		return
	}
	b := &c.Players[player].Buttons[a]
	if down && !b.Held {
		b.pressed = true
	}
	b.Held = down
}

// Press arms the edge without changing held state, for frontends that only see key-down events
func (c *Controls) Press(player int, a Action) {
	if player < 0 || player >= MaxPlayers || a >= ActionCount {
		return
	}
	c.Players[player].Buttons[a].pressed = true
}

func (c *Controls) Held(player int, a Action) bool {
	if player < 0 || player >= MaxPlayers || a >= ActionCount {
		return false
	}
	return c.Players[player].Buttons[a].Held
}

// Consume reports and clears a pending press
func (c *Controls) Consume(player int, a Action) bool {
	if player < 0 || player >= MaxPlayers || a >= ActionCount {
		return false
	}
	b := &c.Players[player].Buttons[a]
	if b.pressed {
		b.pressed = false
		return true
	}
	return false
}

// ConsumeAny consumes a press from whichever slot has one, lowest slot first
func (c *Controls) ConsumeAny(a Action) bool {
	for p := 0; p < MaxPlayers; p++ {
		if c.Consume(p, a) {
			return true
		}
	}
	return false
}

// Discard drops pending presses of the given actions on every slot, leaving held state intact
func (c *Controls) Discard(actions ...Action) {
	for p := range c.Players {
		for _, a := range actions {
			if a < ActionCount {
				c.Players[p].Buttons[a].pressed = false
			}
		}
	}
}

// Reset releases everything and drops pending presses
func (c *Controls) Reset() {
	*c = Controls{}
}
