package parameter

// Damage outcome
const (
	ExplosionJitter   = 5.0 // Contact point is offset by up to this on each axis
	ExplosionDuration = 0.5 // Seconds for the full animation

	OrbDropChance     = 0.6 // Roll above this drops an orb
	BigOrbChance      = 0.9 // Second roll above this makes it a big orb
	OrbValue          = 1
	BigOrbValue       = 5
	OrbHitboxHalf     = 25.0
	FallAcceleration  = 0.0625 // Falling speed gained per tick
	BulletHealth      = 1
	BossBarHeight     = 8.0
	BossBarWidthRatio = 0.8
)

// Bomb
const (
	BombGrowth    = 12.0  // Radius gained per tick
	BombMaxRadius = 800.0 // Screen diagonal
)

// Invulnerability flashing
const (
	InvulnerableTint       = 0.2 // Overlay alpha while flashing
	InvulnerableBlinkStart = 1.0 // Seconds remaining when blinking starts
	InvulnerableBlinkCycle = 0.2
)
