package engine

import (
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/event"
	"github.com/lixenwraith/hectic/input"
	"github.com/lixenwraith/hectic/render"
	"github.com/lixenwraith/hectic/status"
	"github.com/lixenwraith/hectic/vmath"
)

// Resource holds cached pointers to the world's singleton resources
// The same pointers are registered in World.ResourceStore
type Resource struct {
	Time    *TimeResource
	Config  *ConfigResource
	Players *PlayerPositionsResource
	Damage  *DamageTrackerResource
	Spawner *BulletSpawnerResource
	Render  *RenderResource
	Event   *EventQueueResource
	Input   *InputResource
	RNG     *RNGResource
	Debug   *DebugResource
	Stage   *StageResource
	Menu    *MenuResource
	Audio   *AudioResource

	// Telemetry
	Status *status.Registry
}

func initCoreResources(w *World) {
	r := Resource{
		Time:    &TimeResource{Delta: constant.TickDuration},
		Config:  &ConfigResource{Width: constant.WorldWidth, Height: constant.WorldHeight},
		Players: &PlayerPositionsResource{},
		Damage:  &DamageTrackerResource{},
		Spawner: &BulletSpawnerResource{},
		Render:  &RenderResource{Buffer: render.NewBuffer()},
		Event:   &EventQueueResource{Queue: event.NewEventQueue()},
		Input:   &InputResource{Controls: input.NewControls()},
		RNG:     &RNGResource{Rand: vmath.NewFastRand(1)},
		Debug:   &DebugResource{},
		Stage:   &StageResource{},
		Menu:    &MenuResource{},
		Audio:   &AudioResource{},
		Status:  status.NewRegistry(),
	}
	w.Resources = r

	rs := w.ResourceStore
	AddResource(rs, r.Time)
	AddResource(rs, r.Config)
	AddResource(rs, r.Players)
	AddResource(rs, r.Damage)
	AddResource(rs, r.Spawner)
	AddResource(rs, r.Render)
	AddResource(rs, r.Event)
	AddResource(rs, r.Input)
	AddResource(rs, r.RNG)
	AddResource(rs, r.Debug)
	AddResource(rs, r.Stage)
	AddResource(rs, r.Menu)
	AddResource(rs, r.Audio)
	AddResource(rs, r.Status)
}

// TimeResource is the game clock, advanced once per simulated tick
type TimeResource struct {
	Total float64 // Game time in seconds
	Frame int64
	Delta float64 // Seconds per tick
}

func (t *TimeResource) Tick() {
	t.Total += t.Delta
	t.Frame++
}

// Reset rewinds game time to zero; scripted timelines are relative to it
func (t *TimeResource) Reset() {
	t.Total = 0
}

// ConfigResource holds static configuration
type ConfigResource struct {
	Width  float64
	Height float64
}

// PlayerPositionsResource is rebuilt every frame from live players
type PlayerPositionsResource struct {
	Positions []vmath.Vec2
}

// Random picks a live player's position, or a uniformly random on-screen point when none exist
func (p *PlayerPositionsResource) Random(rng *vmath.FastRand, width, height float64) vmath.Vec2 {
	if len(p.Positions) == 0 {
		return vmath.V2(rng.Range(0, width), rng.Range(0, height))
	}
	return p.Positions[rng.Intn(len(p.Positions))]
}

// Contact is one friendly/enemy overlap found by collision
type Contact struct {
	Friendly core.Entity
	Enemy    core.Entity
	Position vmath.Vec2
}

// DamageTrackerResource carries contacts from collision to damage within a frame
type DamageTrackerResource struct {
	Contacts []Contact
}

// Drain returns all contacts and empties the tracker
func (d *DamageTrackerResource) Drain() []Contact {
	out := d.Contacts
	d.Contacts = nil
	return out
}

// BulletRequest asks for one bullet to be materialized at the next spawn pass
type BulletRequest struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Bullet   component.BulletSetup
	Friendly bool
}

// BulletSpawnerResource queues bullet requests from the weapon and control systems
type BulletSpawnerResource struct {
	Requests []BulletRequest
}

func (b *BulletSpawnerResource) Push(r BulletRequest) {
	b.Requests = append(b.Requests, r)
}

func (b *BulletSpawnerResource) Drain() []BulletRequest {
	out := b.Requests
	b.Requests = nil
	return out
}

// RenderResource is the draw sink the render system fills
type RenderResource struct {
	Buffer *render.Buffer
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// InputResource exposes frontend control state
type InputResource struct {
	Controls *input.Controls
}

// RNGResource is the simulation's single random source
type RNGResource struct {
	Rand *vmath.FastRand
}

// DebugResource holds developer toggles
type DebugResource struct {
	Hitboxes bool
}

// StageResource describes the stage in progress
type StageResource struct {
	ID          int
	Name        string
	Multiplayer bool
	Active      bool // Started and not yet resolved
	BossSpawned bool
	Kills       int
}

// MenuEntry is one line of a visible menu
type MenuEntry struct {
	Text   string
	Active bool
}

// MenuResource is the menu/banner view the mode machine publishes for rendering
type MenuResource struct {
	Visible  bool
	Title    string
	Items    []MenuEntry
	Selected int
	Banner   string // Centered caption shown without a menu
	Dim      bool   // Darken the playfield behind the menu
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
}

// AudioResource wraps the audio player; Player is nil when audio is disabled
type AudioResource struct {
	Player AudioPlayer
}
