package component

import "github.com/lixenwraith/hectic/vmath"

// HitboxComponent is an axis-aligned box of half extents around the position
type HitboxComponent struct {
	Half vmath.Vec2
}

func Hitbox(halfW, halfH float64) HitboxComponent {
	return HitboxComponent{Half: vmath.V2(halfW, halfH)}
}

// HealthComponent counts remaining hits; the owning entity is deleted at zero
type HealthComponent struct {
	Points    uint32
	MaxPoints uint32 // Points at creation, scales health bars
}

func Health(points uint32) HealthComponent {
	return HealthComponent{Points: points, MaxPoints: points}
}

// Damage removes one point, saturating at zero
func (h *HealthComponent) Damage() {
	if h.Points > 0 {
		h.Points--
	}
}

func (h HealthComponent) Dead() bool {
	return h.Points == 0
}

// InvulnerabilityComponent gates damage to once per Window of game time
type InvulnerabilityComponent struct {
	LastDamaged float64
	Window      float64
}

// Invulnerability starts ready, so the first hit always lands
func Invulnerability(window float64) InvulnerabilityComponent {
	return InvulnerabilityComponent{LastDamaged: -window, Window: window}
}

// CanDamage reports whether damage may land at now and, if so, opens a new window
func (i *InvulnerabilityComponent) CanDamage(now float64) bool {
	if now-i.LastDamaged >= i.Window {
		i.LastDamaged = now
		return true
	}
	return false
}

// Remaining is the time left in the current window, 0 when vulnerable
func (i InvulnerabilityComponent) Remaining(now float64) float64 {
	return max(0, i.Window-(now-i.LastDamaged))
}

// FriendlyComponent marks the player side: players and their bullets
type FriendlyComponent struct{}

// EnemyComponent marks the hostile side: enemies, bosses and their bullets
type EnemyComponent struct{}

// ExplosionComponent drives the explosion animation from its start time
type ExplosionComponent struct {
	Start float64
}
