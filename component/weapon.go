package component

import (
	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/core"
)

// Cooldown fires at most once per Interval of game time
type Cooldown struct {
	Interval  float64
	LastFired float64
}

// NewCooldown starts ready, so the first check passes
func NewCooldown(interval float64) Cooldown {
	return Cooldown{Interval: interval, LastFired: -interval}
}

// IsReady reports whether Interval has elapsed since the last firing and, if so, records now
func (c *Cooldown) IsReady(now float64) bool {
	if now-c.LastFired >= c.Interval {
		c.LastFired = now
		return true
	}
	return false
}

// CooldownComponent gates the player's volley
type CooldownComponent struct {
	Cooldown
}

// BulletSetup describes the projectiles a pattern emits
type BulletSetup struct {
	Image  asset.Image
	Speed  float64   // Units per tick
	Colour *core.RGB // Optional tint
}

// FireKind discriminates FiresBulletsComponent
type FireKind uint8

const (
	FireAtPlayer FireKind = iota // Fan aimed at a random player
	FireCircle                   // Evenly spaced ring, rotating between volleys
	FireArc                      // Finite sweep across a spread
	FireMultiple                 // Composite of independent child patterns
)

func (k FireKind) String() string {
	switch k {
	case FireAtPlayer:
		return "at_player"
	case FireCircle:
		return "circle"
	case FireArc:
		return "arc"
	case FireMultiple:
		return "multiple"
	}
	return "unknown"
}

// FiresBulletsComponent is a firing pattern
// Tagged union: only fields matching Kind are valid. Leaves (all kinds but
// FireMultiple) own Bullet and Cooldown
type FiresBulletsComponent struct {
	Kind     FireKind
	Bullet   BulletSetup
	Cooldown Cooldown

	Count        int     // AtPlayer: bullets per volley; Circle: sides; Arc: bullets per volley
	Spread       float64 // AtPlayer, Arc: radians
	Rotation     float64 // Circle: current rotation; Arc: starting bearing
	RotationStep float64 // Circle: added after each volley
	Total        int     // Arc: bullets to fire in all
	Fired        int     // Arc: bullets fired so far

	Patterns []FiresBulletsComponent // Multiple
}

func AtPlayer(count int, spread float64, bullet BulletSetup, cooldown float64) FiresBulletsComponent {
	return FiresBulletsComponent{Kind: FireAtPlayer, Count: count, Spread: spread, Bullet: bullet, Cooldown: NewCooldown(cooldown)}
}

func Circle(sides int, rotation, step float64, bullet BulletSetup, cooldown float64) FiresBulletsComponent {
	return FiresBulletsComponent{Kind: FireCircle, Count: sides, Rotation: rotation, RotationStep: step, Bullet: bullet, Cooldown: NewCooldown(cooldown)}
}

func Arc(rotation, spread float64, perVolley, total int, bullet BulletSetup, cooldown float64) FiresBulletsComponent {
	return FiresBulletsComponent{Kind: FireArc, Rotation: rotation, Spread: spread, Count: perVolley, Total: total, Bullet: bullet, Cooldown: NewCooldown(cooldown)}
}

func Multiple(patterns ...FiresBulletsComponent) FiresBulletsComponent {
	return FiresBulletsComponent{Kind: FireMultiple, Patterns: patterns}
}

// Clone deep-copies the pattern tree so the copy's leaf state is independent
func (f FiresBulletsComponent) Clone() FiresBulletsComponent {
	c := f
	if f.Bullet.Colour != nil {
		colour := *f.Bullet.Colour
		c.Bullet.Colour = &colour
	}
	if f.Patterns != nil {
		c.Patterns = make([]FiresBulletsComponent, len(f.Patterns))
		for i, p := range f.Patterns {
			c.Patterns[i] = p.Clone()
		}
	}
	return c
}

// Done reports whether the pattern will never fire again
func (f FiresBulletsComponent) Done() bool {
	switch f.Kind {
	case FireArc:
		return f.Fired >= f.Total
	case FireMultiple:
		for _, p := range f.Patterns {
			if !p.Done() {
				return false
			}
		}
		return true
	}
	return false
}
