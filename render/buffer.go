package render

import (
	"sort"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/vmath"
)

// Kind discriminates draw commands
type Kind uint8

const (
	KindSprite Kind = iota
	KindBox
	KindCircle
	KindText
)

// Align controls horizontal text placement relative to Command.Center
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Command is one draw primitive in world coordinates
// Tagged union: fields not used by Kind are zero
type Command struct {
	Kind     Kind
	Image    asset.Image // Sprite
	Center   vmath.Vec2  // Sprite, Box, Circle centre; Text anchor
	Size     vmath.Vec2  // Sprite, Box full size
	Rotation float64     // Sprite, radians clockwise
	Radius   float64     // Circle
	Colour   core.RGB    // Box, Circle, Text colour; Sprite overlay colour
	Alpha    float64     // Box fill alpha; Sprite overlay alpha (0 = none)
	Text     string      // Text
	Scale    float64     // Text size multiplier
	Align    Align       // Text
	Layer    int         // Background layers sort below entities
}

// Buffer is the render sink the simulation writes to once per frame.
// The frontend drains it with Commands and clears it with Reset after drawing
type Buffer struct {
	commands []Command
}

func NewBuffer() *Buffer {
	return &Buffer{commands: make([]Command, 0, 512)}
}

// Sprite queues an image at its native size
func (b *Buffer) Sprite(img asset.Image, center vmath.Vec2, rotation float64, overlay core.RGB, overlayAlpha float64, layer int) {
	w, h := img.Size()
	b.commands = append(b.commands, Command{
		Kind:     KindSprite,
		Image:    img,
		Center:   center,
		Size:     vmath.V2(w, h),
		Rotation: rotation,
		Colour:   overlay,
		Alpha:    overlayAlpha,
		Layer:    layer,
	})
}

// SpriteSized queues an image stretched to size
func (b *Buffer) SpriteSized(img asset.Image, center, size vmath.Vec2, layer int) {
	b.commands = append(b.commands, Command{
		Kind:   KindSprite,
		Image:  img,
		Center: center,
		Size:   size,
		Layer:  layer,
	})
}

// Box queues a filled rectangle
func (b *Buffer) Box(center, size vmath.Vec2, colour core.RGB, alpha float64, layer int) {
	b.commands = append(b.commands, Command{
		Kind:   KindBox,
		Center: center,
		Size:   size,
		Colour: colour,
		Alpha:  alpha,
		Layer:  layer,
	})
}

// Circle queues a circle outline
func (b *Buffer) Circle(center vmath.Vec2, radius float64, colour core.RGB, layer int) {
	b.commands = append(b.commands, Command{
		Kind:   KindCircle,
		Center: center,
		Radius: radius,
		Colour: colour,
		Alpha:  1,
		Layer:  layer,
	})
}

// Text queues a string anchored at pos
func (b *Buffer) Text(s string, pos vmath.Vec2, scale float64, colour core.RGB, align Align, layer int) {
	b.commands = append(b.commands, Command{
		Kind:   KindText,
		Center: pos,
		Text:   s,
		Scale:  scale,
		Colour: colour,
		Alpha:  1,
		Align:  align,
		Layer:  layer,
	})
}

// Commands returns the queued primitives in submission order. The slice is only
// valid until the next Reset
func (b *Buffer) Commands() []Command {
	return b.commands
}

func (b *Buffer) Len() int {
	return len(b.commands)
}

// Reset clears queued commands, keeping capacity
func (b *Buffer) Reset() {
	b.commands = b.commands[:0]
}

// SortByLayer orders commands by layer, keeping submission order within a layer
func (b *Buffer) SortByLayer() {
	sort.SliceStable(b.commands, func(i, j int) bool {
		return b.commands[i].Layer < b.commands[j].Layer
	})
}
