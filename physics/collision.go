package physics

import (
	"math"

	"github.com/lixenwraith/hectic/vmath"
)

// IsTouching reports whether the boxes centred at posA and posB with the given half
// extents overlap. Two zero-size boxes never touch, even when coincident
func IsTouching(posA, halfA, posB, halfB vmath.Vec2) bool {
	if halfA == (vmath.Vec2{}) && halfB == (vmath.Vec2{}) {
		return false
	}
	return math.Abs(posA.X-posB.X) <= halfA.X+halfB.X &&
		math.Abs(posA.Y-posB.Y) <= halfA.Y+halfB.Y
}

// ContactPoint picks the position of the smaller box; ties go to A
func ContactPoint(posA, halfA, posB, halfB vmath.Vec2) vmath.Vec2 {
	if halfA.X*halfA.Y > halfB.X*halfB.Y {
		return posB
	}
	return posA
}
