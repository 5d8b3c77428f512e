package component

// PlayerComponent identifies a player entity and its control slot
type PlayerComponent struct {
	Index int
}

// PowerBarMax is the bar value required to drop a bomb
const PowerBarMax = 35

// PowerBarComponent accumulates collected orb value
type PowerBarComponent struct {
	Value uint32
}

// Add increases the bar, saturating at PowerBarMax
func (p *PowerBarComponent) Add(v uint32) {
	p.Value = min(p.Value+v, PowerBarMax)
}

// Empty drains a full bar and reports true; a bar that is not full is left untouched
func (p *PowerBarComponent) Empty() bool {
	if p.Value >= PowerBarMax {
		p.Value = 0
		return true
	}
	return false
}

func (p PowerBarComponent) Percent() float64 {
	return float64(p.Value) / PowerBarMax
}

// PowerOrbComponent is a collectible worth Value bar points
type PowerOrbComponent struct {
	Value uint32
}

// TargetPlayerComponent converts into a linear heading toward a player once unfrozen
type TargetPlayerComponent struct {
	Speed float64
}

// BombComponent is an expanding circle clearing enemy bullets
type BombComponent struct {
	Radius    float64
	Growth    float64 // Radius added per tick
	MaxRadius float64
}

// CollidesWithBombComponent marks entities a bomb deletes
type CollidesWithBombComponent struct{}
