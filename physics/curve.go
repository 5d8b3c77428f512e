package physics

import (
	"math"

	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/vmath"
)

const (
	// CurveTolerance is the accepted error between a step's length and the curve speed
	CurveTolerance = 0.1
	// curveMaxIterations bounds the bisection; the last midpoint is used when it runs out
	curveMaxIterations = 64
)

// Curve is a Catmull-Rom segment through B (t=0) and C (t=1) shaped by the outer
// control points A and D. Parameter values past 1 extrapolate the same cubic, so
// an entity keeps moving along the curve's tail after passing C
type Curve struct {
	A, B, C, D vmath.Vec2
	Time       float64 // Current curve parameter
	Speed      float64 // Arc distance covered per step
}

// Point evaluates the curve at parameter t
func (c *Curve) Point(t float64) vmath.Vec2 {
	t2 := t * t
	t3 := t2 * t
	return vmath.Vec2{
		X: catmullRom(c.A.X, c.B.X, c.C.X, c.D.X, t, t2, t3),
		Y: catmullRom(c.A.Y, c.B.Y, c.C.Y, c.D.Y, t, t2, t3),
	}
}

func catmullRom(a, b, c, d, t, t2, t3 float64) float64 {
	return 0.5 * (2*b +
		(-a+c)*t +
		(2*a-5*b+4*c-d)*t2 +
		(-a+3*b-3*c+d)*t3)
}

// Step advances Time to the parameter whose point lies Speed away from prev and
// returns that point. The search bisects [Time, Time+1]
func (c *Curve) Step(prev vmath.Vec2) vmath.Vec2 {
	if c.Speed <= 0 {
		return c.Point(c.Time)
	}

	lo, hi := c.Time, c.Time+1
	mid := hi
	for i := 0; i < curveMaxIterations; i++ {
		mid = (lo + hi) / 2
		d := vmath.V2Dist(c.Point(mid), prev)
		if math.Abs(d-c.Speed) <= CurveTolerance {
			break
		}
		if d < c.Speed {
			lo = mid
		} else {
			hi = mid
		}
	}

	c.Time = mid
	return c.Point(mid)
}

// HorizontalCurve crosses the screen sideways, entering at startY and leaving at endY
// with a downward swoop between
func HorizontalCurve(startY, endY float64, leftToRight bool, speed float64) Curve {
	w, h, m := constant.WorldWidth, constant.WorldHeight, constant.OffscreenMargin
	dir := 1.0
	b := vmath.V2(-m, startY)
	c := vmath.V2(w+m, endY)
	if !leftToRight {
		dir = -1
		b.X, c.X = c.X, b.X
	}
	return Curve{
		A:     vmath.V2(b.X-dir*w/2, b.Y-h),
		B:     b,
		C:     c,
		D:     vmath.V2(c.X+dir*w/2, c.Y-h),
		Speed: speed,
	}
}

// VerticalCurve falls from the top edge at startX to the bottom edge at endX, both
// given as fractions of the screen width
func VerticalCurve(startX, endX, speed float64) Curve {
	w, h, m := constant.WorldWidth, constant.WorldHeight, constant.OffscreenMargin
	b := vmath.V2(startX*w, -m)
	c := vmath.V2(endX*w, h+m)
	return Curve{
		A:     vmath.V2(c.X, b.Y-h),
		B:     b,
		C:     c,
		D:     vmath.V2(b.X, c.Y+h),
		Speed: speed,
	}
}

// ArcCurve sweeps across the screen in an arch that rises above y by roughly height/2
func ArcCurve(y, height float64, leftToRight bool, speed float64) Curve {
	w, m := constant.WorldWidth, constant.OffscreenMargin
	b := vmath.V2(-m, y)
	c := vmath.V2(w+m, y)
	if !leftToRight {
		b.X, c.X = c.X, b.X
	}
	return Curve{
		A:     vmath.V2(b.X, y+height),
		B:     b,
		C:     c,
		D:     vmath.V2(c.X, y+height),
		Speed: speed,
	}
}
