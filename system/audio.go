package system

import (
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/event"
)

// AudioSystem forwards sound requests to the audio player when one is attached
type AudioSystem struct {
	engine.SystemBase
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	if player := s.Resource.Audio.Player; player != nil {
		player.Play(payload.Sound)
	}
}
