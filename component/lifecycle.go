package component

// FrozenUntilComponent suspends movement, firing, targeting and collision until
// game time reaches Time
type FrozenUntilComponent struct {
	Time float64
}

// DieOffscreenComponent deletes the entity once it leaves the screen after having entered it
type DieOffscreenComponent struct{}

// BeenOnscreenComponent records that the entity has been visible at least once
type BeenOnscreenComponent struct{}

// BackgroundLayerComponent marks a scrolling background; Depth orders drawing, lowest first
type BackgroundLayerComponent struct {
	Depth int
}
