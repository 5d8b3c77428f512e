package engine

import (
	"github.com/lixenwraith/hectic/vmath"
)

// NewTestWorld creates a world with a fixed random seed for reproducible tests
func NewTestWorld() *World {
	w := NewWorld()
	w.Resources.RNG.Rand = vmath.NewFastRand(0x5eed)
	return w
}
