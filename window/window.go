package window

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/game"
	"github.com/lixenwraith/hectic/input"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/render"
)

// Overlay textures drawn over flat backgrounds are faded so the base stays visible
const overlayBackgroundAlpha = 0.35

// Window drives a game in a desktop window and implements ebiten.Game
type Window struct {
	game  *game.Game
	keys  *keyboard
	face  *text.GoXFace
	pixel *ebiten.Image
}

func New(g *game.Game, kt *input.KeyTable) (*Window, error) {
	keys, err := newKeyboard(kt)
	if err != nil {
		return nil, err
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Window{
		game:  g,
		keys:  keys,
		face:  text.NewGoXFace(basicfont.Face7x13),
		pixel: pixel,
	}, nil
}

// Run opens the window and blocks until the player quits or the window closes
func Run(g *game.Game, kt *input.KeyTable, scale int) error {
	w, err := New(g, kt)
	if err != nil {
		return err
	}
	scale = max(scale, 1)
	ebiten.SetWindowSize(int(constant.WorldWidth)*scale, int(constant.WorldHeight)*scale)
	ebiten.SetWindowTitle(parameter.AppName)
	ebiten.SetTPS(constant.TicksPerSecond)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (w *Window) Update() error {
	w.keys.poll(w.game.Controls())
	err := w.game.Step()
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (w *Window) Draw(screen *ebiten.Image) {
	buf := w.game.Render()
	for i := range buf.Commands() {
		cmd := &buf.Commands()[i]
		switch cmd.Kind {
		case render.KindSprite:
			w.drawSprite(screen, cmd)
		case render.KindBox:
			vector.DrawFilledRect(screen,
				float32(cmd.Center.X-cmd.Size.X/2), float32(cmd.Center.Y-cmd.Size.Y/2),
				float32(cmd.Size.X), float32(cmd.Size.Y),
				rgba(cmd.Colour, cmd.Alpha), false)
		case render.KindCircle:
			vector.StrokeCircle(screen, float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius), 2, rgba(cmd.Colour, cmd.Alpha), true)
		case render.KindText:
			w.drawText(screen, cmd)
		}
	}
	buf.Reset()
}

// Layout keeps the logical screen at world size; ebiten scales it to the window
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(constant.WorldWidth), int(constant.WorldHeight)
}

// drawSprite draws the image as a flat rotated quad in its colour
func (w *Window) drawSprite(screen *ebiten.Image, cmd *render.Command) {
	spec := cmd.Image.Spec()
	fill := spec.Colour.Blend(cmd.Colour, cmd.Alpha)
	alpha := 1.0
	if cmd.Layer == render.LayerBackground && spec.Glyph != ' ' {
		alpha = overlayBackgroundAlpha
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cmd.Size.X, cmd.Size.Y)
	op.GeoM.Translate(-cmd.Size.X/2, -cmd.Size.Y/2)
	op.GeoM.Rotate(cmd.Rotation)
	op.GeoM.Translate(cmd.Center.X, cmd.Center.Y)
	op.ColorScale.ScaleWithColor(rgba(fill, alpha))
	screen.DrawImage(w.pixel, op)

	// Glyph mark so sprites of similar colour stay distinguishable
	if cmd.Layer != render.LayerBackground && spec.Glyph != 0 && cmd.Image != asset.ImageNone {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cmd.Center.X, cmd.Center.Y)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, string(spec.Glyph), w.face, op)
	}
}

func (w *Window) drawText(screen *ebiten.Image, cmd *render.Command) {
	scale := cmd.Scale
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(math.Round(cmd.Center.X), math.Round(cmd.Center.Y))
	op.PrimaryAlign = textAlign(cmd.Align)
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(rgba(cmd.Colour, 1))
	text.Draw(screen, cmd.Text, w.face, op)
}

func textAlign(a render.Align) text.Align {
	switch a {
	case render.AlignCenter:
		return text.AlignCenter
	case render.AlignRight:
		return text.AlignEnd
	}
	return text.AlignStart
}

// rgba converts to a non-premultiplied colour; alpha is clamped to [0,1]
func rgba(c core.RGB, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}
