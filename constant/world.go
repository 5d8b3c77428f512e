package constant

// Simulation space, in world units. Origin is the top-left corner, +Y points down
const (
	WorldWidth  = 480.0
	WorldHeight = 640.0
)

// TicksPerSecond is the fixed simulation rate; game time advances 1/TicksPerSecond per tick
const TicksPerSecond = 60

// TickDuration is the game-time length of one tick in seconds
const TickDuration = 1.0 / TicksPerSecond

// OffscreenMargin is how far outside the visible area scripted curves start and end
const OffscreenMargin = 50.0
