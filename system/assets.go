package system

import "github.com/lixenwraith/hectic/asset"

const (
	playerBulletImage = asset.ImagePlayerBullet
	orbImage          = asset.ImageOrb
	bigOrbImage       = asset.ImageBigOrb
)
