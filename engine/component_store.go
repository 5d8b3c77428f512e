package engine

import (
	"github.com/lixenwraith/hectic/component"
)

// ComponentStore provides cached pointers to typed component stores
// Built once with the world; pointers remain valid for the world's lifetime
type ComponentStore struct {
	// Spatial and visual
	Position      *Store[component.PositionComponent]
	Image         *Store[component.ImageComponent]
	Rotation      *Store[component.RotationComponent]
	ColourOverlay *Store[component.ColourOverlayComponent]

	// Motion
	Movement     *Store[component.MovementComponent]
	TargetPlayer *Store[component.TargetPlayerComponent]

	// Combat
	Friendly        *Store[component.FriendlyComponent]
	Enemy           *Store[component.EnemyComponent]
	Hitbox          *Store[component.HitboxComponent]
	Health          *Store[component.HealthComponent]
	Invulnerability *Store[component.InvulnerabilityComponent]
	FiresBullets    *Store[component.FiresBulletsComponent]
	Cooldown        *Store[component.CooldownComponent]
	Boss            *Store[component.BossComponent]

	// Player
	Player           *Store[component.PlayerComponent]
	PowerBar         *Store[component.PowerBarComponent]
	PowerOrb         *Store[component.PowerOrbComponent]
	Bomb             *Store[component.BombComponent]
	CollidesWithBomb *Store[component.CollidesWithBombComponent]

	// Lifecycle
	FrozenUntil     *Store[component.FrozenUntilComponent]
	DieOffscreen    *Store[component.DieOffscreenComponent]
	BeenOnscreen    *Store[component.BeenOnscreenComponent]
	BackgroundLayer *Store[component.BackgroundLayerComponent]
	Explosion       *Store[component.ExplosionComponent]
}

// registerStore creates a store and enrolls it for entity teardown
func registerStore[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.stores = append(w.stores, s)
	return s
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Position:      registerStore[component.PositionComponent](w),
		Image:         registerStore[component.ImageComponent](w),
		Rotation:      registerStore[component.RotationComponent](w),
		ColourOverlay: registerStore[component.ColourOverlayComponent](w),

		Movement:     registerStore[component.MovementComponent](w),
		TargetPlayer: registerStore[component.TargetPlayerComponent](w),

		Friendly:        registerStore[component.FriendlyComponent](w),
		Enemy:           registerStore[component.EnemyComponent](w),
		Hitbox:          registerStore[component.HitboxComponent](w),
		Health:          registerStore[component.HealthComponent](w),
		Invulnerability: registerStore[component.InvulnerabilityComponent](w),
		FiresBullets:    registerStore[component.FiresBulletsComponent](w),
		Cooldown:        registerStore[component.CooldownComponent](w),
		Boss:            registerStore[component.BossComponent](w),

		Player:           registerStore[component.PlayerComponent](w),
		PowerBar:         registerStore[component.PowerBarComponent](w),
		PowerOrb:         registerStore[component.PowerOrbComponent](w),
		Bomb:             registerStore[component.BombComponent](w),
		CollidesWithBomb: registerStore[component.CollidesWithBombComponent](w),

		FrozenUntil:     registerStore[component.FrozenUntilComponent](w),
		DieOffscreen:    registerStore[component.DieOffscreenComponent](w),
		BeenOnscreen:    registerStore[component.BeenOnscreenComponent](w),
		BackgroundLayer: registerStore[component.BackgroundLayerComponent](w),
		Explosion:       registerStore[component.ExplosionComponent](w),
	}
}
