package parameter

// Player tuning. Speeds are world units per tick
const (
	PlayerSpeed           = 250.0 / 60
	PlayerBulletSpeed     = 500.0 / 60
	PlayerFireCooldown    = 0.075 // Seconds between volleys
	PlayerHealth          = 10
	PlayerHitboxHalf      = 5.0
	PlayerInvulnerability = 5.0 // Seconds after a hit during which further hits are ignored
	PlayerSpawnHeight     = 0.8 // Fraction of screen height
)

// PlayerVolleyAngles are bullet bearings relative to straight up, radians
var PlayerVolleyAngles = [...]float64{-0.2, -0.1, 0, 0.1, 0.2}
