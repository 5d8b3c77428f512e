package component

import "github.com/lixenwraith/hectic/vmath"

// BossMove is one phase: travel to Target, then fire Fires for Duration seconds
type BossMove struct {
	Target   vmath.Vec2
	Fires    FiresBulletsComponent
	Duration float64
}

// BossComponent cycles through Moves in order, wrapping at the end
type BossComponent struct {
	Moves       []BossMove
	CurrentMove int
	MoveTimer   float64 // Time held at the current target
	Speed       float64 // Travel speed between targets, units per tick
}

// Move returns the active phase
func (b *BossComponent) Move() *BossMove {
	return &b.Moves[b.CurrentMove]
}

// Advance moves to the next phase and resets the hold timer
func (b *BossComponent) Advance() {
	b.CurrentMove = (b.CurrentMove + 1) % len(b.Moves)
	b.MoveTimer = 0
}
