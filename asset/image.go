package asset

import (
	"fmt"

	"github.com/lixenwraith/hectic/core"
)

// Image identifies a sprite. Frontends draw sprites from the metadata in Images
type Image int

const (
	ImageNone Image = iota
	ImageNightSky
	ImageClouds
	ImageCavern
	ImageEmbers
	ImagePlayer
	ImagePlayerBullet
	ImageBat
	ImageImp
	ImageGargoyle
	ImageWisp
	ImageRockBullet
	ImageColouredBullet
	ImageRingBullet
	ImageOrb
	ImageBigOrb
	ImageExplosion1
	ImageExplosion2
	ImageExplosion3
	ImageExplosion4
	ImageExplosion5
	ImageExplosion6
	ImagePortrait
	ImageDemon
	ImageLich
	ImageCount
)

// ImageSpec is the static description of a sprite
type ImageSpec struct {
	Name   string
	Width  float64
	Height float64
	Glyph  rune     // Terminal rendition
	Colour core.RGB // Flat fill colour for frontends without textures
}

// Images is indexed by Image
var Images = [ImageCount]ImageSpec{
	ImageNone:           {Name: "none"},
	ImageNightSky:       {Name: "night_sky", Width: 480, Height: 640, Glyph: ' ', Colour: core.RGB{10, 12, 40}},
	ImageClouds:         {Name: "clouds", Width: 480, Height: 640, Glyph: '░', Colour: core.RGB{60, 64, 96}},
	ImageCavern:         {Name: "cavern", Width: 480, Height: 640, Glyph: ' ', Colour: core.RGB{30, 12, 8}},
	ImageEmbers:         {Name: "embers", Width: 480, Height: 640, Glyph: '·', Colour: core.RGB{120, 40, 10}},
	ImagePlayer:         {Name: "player", Width: 32, Height: 32, Glyph: 'A', Colour: core.RGB{90, 200, 255}},
	ImagePlayerBullet:   {Name: "player_bullet", Width: 6, Height: 14, Glyph: '|', Colour: core.RGB{200, 240, 255}},
	ImageBat:            {Name: "bat", Width: 32, Height: 24, Glyph: 'w', Colour: core.RGB{140, 60, 180}},
	ImageImp:            {Name: "imp", Width: 24, Height: 24, Glyph: 'i', Colour: core.RGB{220, 80, 40}},
	ImageGargoyle:       {Name: "gargoyle", Width: 48, Height: 48, Glyph: 'G', Colour: core.RGB{150, 150, 140}},
	ImageWisp:           {Name: "wisp", Width: 28, Height: 28, Glyph: '*', Colour: core.RGB{120, 255, 200}},
	ImageRockBullet:     {Name: "rock_bullet", Width: 12, Height: 12, Glyph: 'o', Colour: core.RGB{170, 140, 110}},
	ImageColouredBullet: {Name: "coloured_bullet", Width: 10, Height: 10, Glyph: '•', Colour: core.RGB{255, 255, 255}},
	ImageRingBullet:     {Name: "ring_bullet", Width: 12, Height: 12, Glyph: '○', Colour: core.RGB{255, 120, 200}},
	ImageOrb:            {Name: "orb", Width: 12, Height: 12, Glyph: '+', Colour: core.RGB{255, 220, 60}},
	ImageBigOrb:         {Name: "big_orb", Width: 20, Height: 20, Glyph: '✦', Colour: core.RGB{255, 240, 120}},
	ImageExplosion1:     {Name: "explosion_1", Width: 32, Height: 32, Glyph: '#', Colour: core.RGB{255, 255, 200}},
	ImageExplosion2:     {Name: "explosion_2", Width: 32, Height: 32, Glyph: '#', Colour: core.RGB{255, 230, 120}},
	ImageExplosion3:     {Name: "explosion_3", Width: 32, Height: 32, Glyph: '%', Colour: core.RGB{255, 180, 60}},
	ImageExplosion4:     {Name: "explosion_4", Width: 32, Height: 32, Glyph: '%', Colour: core.RGB{230, 120, 30}},
	ImageExplosion5:     {Name: "explosion_5", Width: 32, Height: 32, Glyph: ':', Colour: core.RGB{170, 70, 20}},
	ImageExplosion6:     {Name: "explosion_6", Width: 32, Height: 32, Glyph: '.', Colour: core.RGB{90, 40, 20}},
	ImagePortrait:       {Name: "portrait", Width: 32, Height: 32, Glyph: '@', Colour: core.RGB{90, 200, 255}},
	ImageDemon:          {Name: "demon", Width: 96, Height: 80, Glyph: 'D', Colour: core.RGB{200, 30, 40}},
	ImageLich:           {Name: "lich", Width: 80, Height: 96, Glyph: 'L', Colour: core.RGB{160, 200, 255}},
}

// ExplosionFrames lists the explosion animation in playback order
var ExplosionFrames = [...]Image{
	ImageExplosion1, ImageExplosion2, ImageExplosion3,
	ImageExplosion4, ImageExplosion5, ImageExplosion6,
}

var imagesByName = func() map[string]Image {
	m := make(map[string]Image, ImageCount)
	for i := Image(1); i < ImageCount; i++ {
		m[Images[i].Name] = i
	}
	return m
}()

// Spec returns the sprite description
func (i Image) Spec() ImageSpec {
	if i < 0 || i >= ImageCount {
		return Images[ImageNone]
	}
	return Images[i]
}

func (i Image) String() string {
	return i.Spec().Name
}

// Size returns width and height in world units
func (i Image) Size() (float64, float64) {
	s := i.Spec()
	return s.Width, s.Height
}

// ImageByName resolves a script name such as "rock_bullet"
func ImageByName(name string) (Image, error) {
	img, ok := imagesByName[name]
	if !ok {
		return ImageNone, fmt.Errorf("unknown image %q", name)
	}
	return img, nil
}
