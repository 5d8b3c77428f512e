package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Player volley
	SoundExplosion                  // Confirmed hit
	SoundPickup                     // Power orb collected
	SoundBomb                       // Bomb detonation
	SoundTypeCount
)
