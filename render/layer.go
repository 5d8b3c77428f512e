package render

// Draw layers, lowest first. Frontends draw commands in submission order; the
// render system submits in layer order
const (
	LayerBackground = 0
	LayerEntity     = 100
	LayerEffect     = 200
	LayerDebug      = 300
	LayerUI         = 400
	LayerOverlay    = 500
)
