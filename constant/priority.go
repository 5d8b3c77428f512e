package constant

// System Execution Priorities (lower runs first)
const (
	PriorityControl         = 10
	PriorityPlayerPositions = 20 // After control, before anything that aims at players
	PriorityMovement        = 30
	PriorityBackground      = 35 // After movement, wraps scrolled layers
	PriorityTargeting       = 40 // After movement, sees previous tick's unfrozen entities
	PriorityWeapon          = 50
	PriorityBullet          = 60 // After weapon, drains spawn requests
	PriorityCollision       = 70
	PriorityDamage          = 80 // After collision, drains contacts
	PriorityOrb             = 85
	PriorityBomb            = 86
	PriorityVisibility      = 90
	PriorityBoss            = 100
	PriorityExplosion       = 110
	PriorityStageProgress   = 120 // After game logic, observes boss and player presence
	PriorityTimekeeper      = 130 // After game logic, final
	PriorityRender          = 900 // Render pipeline only
)
