package engine

import (
	"github.com/lixenwraith/hectic/event"
)

// System is one stage of a pipeline
type System interface {
	// Init resets internal state; called at construction and on stage start
	Init()
	Name() string
	// Priority orders systems within a pipeline, lower runs first
	Priority() int
	Update()
}

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event during dispatch, outside any pipeline run
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
