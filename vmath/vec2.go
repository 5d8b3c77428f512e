package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2FromAngle returns a vector of length mag pointing along angle, where 0 is
// straight down the screen and positive angles rotate towards -X
func V2FromAngle(angle, mag float64) Vec2 {
	return Vec2{-math.Sin(angle) * mag, math.Cos(angle) * mag}
}

// V2Angle is the inverse of V2FromAngle for non-zero vectors
func V2Angle(v Vec2) float64 {
	return math.Atan2(-v.X, v.Y)
}

// V2Clamp limits each axis to [lo, hi]
func V2Clamp(v, lo, hi Vec2) Vec2 {
	return Vec2{
		X: math.Max(lo.X, math.Min(hi.X, v.X)),
		Y: math.Max(lo.Y, math.Min(hi.Y, v.Y)),
	}
}
