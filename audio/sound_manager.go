package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hectic/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// cue describes one sound effect: how long it plays and how its samples are made
type cue struct {
	duration time.Duration
	make     func(sr beep.SampleRate) beep.Streamer
}

var cues = [core.SoundTypeCount]cue{
	core.SoundShot:      {duration: 40 * time.Millisecond, make: func(sr beep.SampleRate) beep.Streamer { return NewSweepGenerator(sr, 1400, 900, 0.05) }},
	core.SoundExplosion: {duration: 250 * time.Millisecond, make: func(sr beep.SampleRate) beep.Streamer { return NewNoiseGenerator(sr, 12, 0.3) }},
	core.SoundPickup:    {duration: 90 * time.Millisecond, make: chime},
	core.SoundBomb:      {duration: 600 * time.Millisecond, make: func(sr beep.SampleRate) beep.Streamer { return NewNoiseGenerator(sr, 4, 0.5) }},
}

// chime is a quiet pure tone
func chime(sr beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(sr, 880)
	if err != nil {
		return NewSweepGenerator(sr, 880, 880, 0.12)
	}
	return &effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(0.12)}
}

// SoundManager plays effect cues through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	// Concurrent voices are capped so dense bullet volleys do not saturate the mix
	maxVoices int
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:     &beep.Mixer{},
		maxVoices: 16,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// 100ms buffer
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything; the speaker stays open for the process lifetime
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Play queues a cue. Returns false when the cue was dropped
func (sm *SoundManager) Play(s core.SoundType) bool {
	if s >= core.SoundTypeCount || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	c := cues[s]
	streamer := beep.Take(sampleRate.N(c.duration), c.make(sampleRate))

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= sm.maxVoices {
		return false
	}
	sm.mixer.Add(streamer)
	return true
}
