package component

import "github.com/lixenwraith/hectic/vmath"

// PositionComponent is an entity's centre in world space
type PositionComponent struct {
	vmath.Vec2
}

func Position(x, y float64) PositionComponent {
	return PositionComponent{Vec2: vmath.V2(x, y)}
}
