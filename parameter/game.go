package parameter

// Mode and stage flow
const (
	StageTransitionDuration = 3.0 // Seconds the stage-clear banner shows
	StageBannerDuration     = 2.5 // Seconds the stage name shows after start
	AppName                 = "hectic"
)
