package terminal

import (
	"testing"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/render"
	"github.com/lixenwraith/hectic/vmath"
)

func testGrid() *Grid {
	// 10 world units per column, 20 per row
	return NewGrid(NewViewport(48, 32, 480, 640))
}

// TestViewportCentres verifies wide screens letterbox the playfield
func TestViewportCentres(t *testing.T) {
	v := NewViewport(100, 32, 480, 640)
	if v.Unit != 10 {
		t.Fatalf("Expected unit 10, got %f", v.Unit)
	}
	if v.OffX != 26 || v.OffY != 0 {
		t.Errorf("Expected offset (26, 0), got (%d, %d)", v.OffX, v.OffY)
	}
	col, row := v.Cell(vmath.V2(25, 25))
	if col != 28 || row != 1 {
		t.Errorf("Expected cell (28, 1), got (%d, %d)", col, row)
	}
}

// TestSpriteGlyph verifies entity sprites stamp their glyph over their extent
func TestSpriteGlyph(t *testing.T) {
	g := testGrid()
	buf := render.NewBuffer()
	buf.Sprite(asset.ImageBat, vmath.V2(100, 100), 0, core.RGB{}, 0, render.LayerEntity)
	g.Draw(buf.Commands())

	for col := 8; col <= 10; col++ {
		if c := g.At(col, 4); c.Rune != 'w' {
			t.Errorf("Expected bat glyph at (%d, 4), got %q", col, c.Rune)
		}
	}
	if c := g.At(12, 4); c.Rune != ' ' {
		t.Errorf("Expected blank outside sprite, got %q", c.Rune)
	}
}

// TestBackgroundFill verifies blank-glyph images fill the background colour
func TestBackgroundFill(t *testing.T) {
	g := testGrid()
	buf := render.NewBuffer()
	buf.Sprite(asset.ImageNightSky, vmath.V2(240, 320), 0, core.RGB{}, 0, render.LayerBackground)
	g.Draw(buf.Commands())

	want := asset.ImageNightSky.Spec().Colour
	for _, pos := range [][2]int{{0, 0}, {47, 31}, {20, 16}} {
		if c := g.At(pos[0], pos[1]); c.Bg != want || c.Rune != ' ' {
			t.Errorf("Cell %v: expected fill %v, got %+v", pos, want, c)
		}
	}
}

// TestTextAlign verifies centred text is placed around its anchor
func TestTextAlign(t *testing.T) {
	g := testGrid()
	buf := render.NewBuffer()
	buf.Text("abc", vmath.V2(240, 100), 1, core.RGBWhite, render.AlignCenter, render.LayerUI)
	buf.Text("xy", vmath.V2(480, 200), 1, core.RGBWhite, render.AlignRight, render.LayerUI)
	g.Draw(buf.Commands())

	if g.At(23, 5).Rune != 'a' || g.At(24, 5).Rune != 'b' || g.At(25, 5).Rune != 'c' {
		t.Errorf("Centred text misplaced: %q%q%q", g.At(23, 5).Rune, g.At(24, 5).Rune, g.At(25, 5).Rune)
	}
	if g.At(46, 10).Rune != 'x' || g.At(47, 10).Rune != 'y' {
		t.Errorf("Right-aligned text misplaced: %q%q", g.At(46, 10).Rune, g.At(47, 10).Rune)
	}
}

// TestBoxBlend verifies translucent boxes tint what is underneath
func TestBoxBlend(t *testing.T) {
	g := testGrid()
	buf := render.NewBuffer()
	buf.Box(vmath.V2(240, 320), vmath.V2(480, 640), core.RGBRed, 1, render.LayerOverlay)
	buf.Box(vmath.V2(5, 10), vmath.V2(2, 2), core.RGBWhite, 0.5, render.LayerDebug)
	g.Draw(buf.Commands())

	if c := g.At(10, 10); c.Bg != core.RGBRed {
		t.Errorf("Expected opaque red, got %v", c.Bg)
	}
	c := g.At(0, 0)
	if c.Bg == core.RGBRed || c.Bg.R != 255 {
		t.Errorf("Expected red tinted toward white, got %v", c.Bg)
	}
}

// TestCircleOutline verifies circles leave the centre untouched
func TestCircleOutline(t *testing.T) {
	g := testGrid()
	buf := render.NewBuffer()
	buf.Circle(vmath.V2(240, 320), 100, core.RGBWhite, render.LayerEffect)
	g.Draw(buf.Commands())

	if g.At(24, 16).Rune != ' ' {
		t.Error("Expected empty circle centre")
	}
	// Directly below the centre by the radius
	if g.At(24, 21).Rune != 'o' {
		t.Errorf("Expected outline below centre, got %q", g.At(24, 21).Rune)
	}
}

// TestOffscreenClipped verifies drawing outside the grid is ignored
func TestOffscreenClipped(t *testing.T) {
	g := testGrid()
	buf := render.NewBuffer()
	buf.Sprite(asset.ImageBat, vmath.V2(-500, -500), 0, core.RGB{}, 0, render.LayerEntity)
	buf.Text("far away", vmath.V2(2000, 2000), 1, core.RGBWhite, render.AlignLeft, render.LayerUI)
	g.Draw(buf.Commands())

	for row := 0; row < 32; row++ {
		for col := 0; col < 48; col++ {
			if g.At(col, row).Rune != ' ' {
				t.Fatalf("Unexpected glyph at (%d, %d)", col, row)
			}
		}
	}
}
