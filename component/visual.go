package component

import (
	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/core"
)

// ImageComponent selects the sprite drawn at the entity's position
type ImageComponent struct {
	Image asset.Image
}

// RotationComponent rotates the sprite, radians clockwise
type RotationComponent struct {
	Angle float64
}

// ColourOverlayComponent tints the sprite
type ColourOverlayComponent struct {
	Colour core.RGB
	Alpha  float64
}
