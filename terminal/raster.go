package terminal

import (
	"math"

	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/render"
	"github.com/lixenwraith/hectic/vmath"
)

// Cell is one character position of the grid
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

// Viewport maps world units onto grid cells. A cell is twice as tall as it is
// wide, so one row spans 2*Unit world units
type Viewport struct {
	Cols, Rows int
	Unit       float64 // World units per column
	OffX, OffY int     // Cell offset that centres the playfield
}

// NewViewport fits a world of the given size into cols x rows, preserving aspect
func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	cols, rows = max(cols, 1), max(rows, 1)
	unit := math.Max(worldW/float64(cols), worldH/float64(2*rows))
	usedCols := int(math.Ceil(worldW / unit))
	usedRows := int(math.Ceil(worldH / (2 * unit)))
	return Viewport{
		Cols: cols,
		Rows: rows,
		Unit: unit,
		OffX: max((cols-usedCols)/2, 0),
		OffY: max((rows-usedRows)/2, 0),
	}
}

// Cell returns the grid position holding world point p
func (v Viewport) Cell(p vmath.Vec2) (int, int) {
	return v.OffX + int(math.Floor(p.X/v.Unit)), v.OffY + int(math.Floor(p.Y/(2*v.Unit)))
}

// Grid is a cell raster sized to the screen
type Grid struct {
	view  Viewport
	cells []Cell
}

func NewGrid(view Viewport) *Grid {
	g := &Grid{}
	g.Resize(view)
	return g
}

func (g *Grid) Viewport() Viewport { return g.view }

// Resize reallocates for a new viewport and clears
func (g *Grid) Resize(view Viewport) {
	g.view = view
	n := view.Cols * view.Rows
	if cap(g.cells) < n {
		g.cells = make([]Cell, n)
	}
	g.cells = g.cells[:n]
	g.Clear()
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' '}
	}
}

// At returns the cell at col,row; out of range yields a blank cell
func (g *Grid) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= g.view.Cols || row >= g.view.Rows {
		return Cell{Rune: ' '}
	}
	return g.cells[row*g.view.Cols+col]
}

func (g *Grid) cell(col, row int) *Cell {
	if col < 0 || row < 0 || col >= g.view.Cols || row >= g.view.Rows {
		return nil
	}
	return &g.cells[row*g.view.Cols+col]
}

// Draw rasterizes commands in order, later commands on top
func (g *Grid) Draw(cmds []render.Command) {
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Kind {
		case render.KindSprite:
			g.sprite(cmd)
		case render.KindBox:
			g.box(cmd)
		case render.KindCircle:
			g.circle(cmd)
		case render.KindText:
			g.text(cmd)
		}
	}
}

// span returns the inclusive cell rectangle covered by a centred world rectangle,
// never smaller than one cell
func (g *Grid) span(center, size vmath.Vec2) (c0, r0, c1, r1 int) {
	half := vmath.V2Scale(size, 0.5)
	c0, r0 = g.view.Cell(vmath.V2Sub(center, half))
	c1, r1 = g.view.Cell(vmath.V2Add(center, half))
	if c1 > c0 {
		c1--
	}
	if r1 > r0 {
		r1--
	}
	return
}

func (g *Grid) sprite(cmd *render.Command) {
	spec := cmd.Image.Spec()
	colour := spec.Colour.Blend(cmd.Colour, cmd.Alpha)

	c0, r0, c1, r1 := g.span(cmd.Center, cmd.Size)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := g.cell(col, row)
			if cell == nil {
				continue
			}
			// Blank glyphs are flat fills
			if spec.Glyph == ' ' || spec.Glyph == 0 {
				cell.Bg = colour
				continue
			}
			cell.Rune = spec.Glyph
			cell.Fg = colour
		}
	}
}

func (g *Grid) box(cmd *render.Command) {
	c0, r0, c1, r1 := g.span(cmd.Center, cmd.Size)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if cell := g.cell(col, row); cell != nil {
				cell.Bg = cell.Bg.Blend(cmd.Colour, cmd.Alpha)
				cell.Fg = cell.Fg.Blend(cmd.Colour, cmd.Alpha)
			}
		}
	}
}

func (g *Grid) circle(cmd *render.Command) {
	// Enough samples to leave no gaps between neighbouring cells
	steps := max(16, int(cmd.Radius/g.view.Unit*8))
	for i := 0; i < steps; i++ {
		p := vmath.V2Add(cmd.Center, vmath.V2FromAngle(2*math.Pi*float64(i)/float64(steps), cmd.Radius))
		col, row := g.view.Cell(p)
		if cell := g.cell(col, row); cell != nil {
			cell.Rune = 'o'
			cell.Fg = cmd.Colour
		}
	}
}

func (g *Grid) text(cmd *render.Command) {
	runes := []rune(cmd.Text)
	col, row := g.view.Cell(cmd.Center)
	switch cmd.Align {
	case render.AlignCenter:
		col -= len(runes) / 2
	case render.AlignRight:
		col -= len(runes)
	}
	for i, r := range runes {
		if cell := g.cell(col+i, row); cell != nil {
			cell.Rune = r
			cell.Fg = cmd.Colour
		}
	}
}
