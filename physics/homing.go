package physics

import (
	"github.com/lixenwraith/hectic/vmath"
)

// MoveTowards steps pos toward target by at most speed. Arrival snaps exactly onto
// target so equality checks against the target hold afterwards
func MoveTowards(pos, target vmath.Vec2, speed float64) (vmath.Vec2, bool) {
	delta := vmath.V2Sub(target, pos)
	dist := vmath.V2Mag(delta)
	if dist <= speed {
		return target, true
	}
	return vmath.V2Add(pos, vmath.V2Scale(delta, speed/dist)), false
}

// Heading returns a velocity of the given speed pointing from pos to target
func Heading(pos, target vmath.Vec2, speed float64) vmath.Vec2 {
	return vmath.V2Scale(vmath.V2Normalize(vmath.V2Sub(target, pos)), speed)
}
