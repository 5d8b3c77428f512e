package mode

import (
	"fmt"
	"log"

	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/event"
	"github.com/lixenwraith/hectic/input"
	"github.com/lixenwraith/hectic/parameter"
)

// menuActions drive menu navigation. Their edges are discarded whenever no menu is shown
var menuActions = []input.Action{input.ActionUp, input.ActionDown, input.ActionFire}

// StageStarter starts stages and knows their order
type StageStarter interface {
	StartStage(id int, multiplayer bool) error
	NextStage(id int) (int, bool)
	FirstStage() int
	StageName(id int) string
}

// Machine is the top-level mode state machine. Menus are driven from control
// edges; stage outcomes arrive as events
type Machine struct {
	mode    Mode
	menu    *Menu
	starter StageStarter
	view    *engine.MenuResource
	coop    bool

	stage       int
	multiplayer bool
	timer       float64 // Seconds spent in the current mode
}

// NewMachine starts on the main menu. coop enables the co-op entry
func NewMachine(starter StageStarter, view *engine.MenuResource, coop bool) *Machine {
	m := &Machine{starter: starter, view: view, coop: coop}
	m.toMainMenu("hectic")
	return m
}

func (m *Machine) Mode() Mode { return m.mode }

// Menu returns the visible menu, nil while playing or in transition
func (m *Machine) Menu() *Menu { return m.menu }

// Stage returns the id of the current or last played stage
func (m *Machine) Stage() int { return m.stage }

// Start jumps straight into a stage, bypassing the menu
func (m *Machine) Start(stage int, multiplayer bool) error {
	if err := m.starter.StartStage(stage, multiplayer); err != nil {
		return fmt.Errorf("start stage %d: %w", stage, err)
	}
	m.stage = stage
	m.multiplayer = multiplayer
	m.set(ModePlaying, nil)
	return nil
}

// Update advances timers and applies menu input for one tick
func (m *Machine) Update(c *input.Controls, dt float64) error {
	m.timer += dt

	switch m.mode {
	case ModePlaying:
		c.Discard(menuActions...)
		if c.ConsumeAny(input.ActionPause) {
			m.set(ModePaused, pauseMenu())
			return nil
		}
		if m.timer >= parameter.StageBannerDuration {
			m.view.Banner = ""
		}

	case ModePaused:
		if c.ConsumeAny(input.ActionPause) {
			m.resume()
			return nil
		}
		return m.navigate(c)

	case ModeMainMenu, ModeGameOver:
		return m.navigate(c)

	case ModeStageTransition:
		c.Discard(menuActions...)
		if m.timer < parameter.StageTransitionDuration {
			return nil
		}
		next, ok := m.starter.NextStage(m.stage)
		if !ok {
			log.Printf("[mode] all stages cleared")
			m.toMainMenu("Victory")
			return nil
		}
		return m.Start(next, m.multiplayer)
	}
	return nil
}

func (m *Machine) navigate(c *input.Controls) error {
	if c.ConsumeAny(input.ActionUp) {
		m.menu.Move(-1)
	}
	if c.ConsumeAny(input.ActionDown) {
		m.menu.Move(1)
	}
	if !c.ConsumeAny(input.ActionFire) {
		m.menu.publish(m.view)
		return nil
	}
	item, ok := m.menu.Current()
	if !ok {
		return nil
	}
	c.Reset()

	switch item.Action {
	case MenuStart:
		return m.Start(m.starter.FirstStage(), false)
	case MenuStartCoop:
		return m.Start(m.starter.FirstStage(), true)
	case MenuRetry:
		return m.Start(m.stage, m.multiplayer)
	case MenuResume:
		m.resume()
	case MenuMainMenu:
		m.toMainMenu("hectic")
	case MenuQuit:
		m.set(ModeQuit, nil)
	}
	return nil
}

func (m *Machine) EventTypes() []event.EventType {
	return []event.EventType{event.EventStageCleared, event.EventGameOver}
}

// HandleEvent reacts to stage outcomes; events arriving outside play are stale and ignored
func (m *Machine) HandleEvent(ev event.GameEvent) {
	if m.mode != ModePlaying {
		return
	}
	switch ev.Type {
	case event.EventStageCleared:
		m.set(ModeStageTransition, nil)
		m.view.Banner = "Stage Clear"
	case event.EventGameOver:
		m.set(ModeGameOver, gameOverMenu())
	}
}

// resume returns to play without replaying the stage banner
func (m *Machine) resume() {
	m.set(ModePlaying, nil)
	m.view.Banner = ""
	m.timer = parameter.StageBannerDuration
}

func (m *Machine) toMainMenu(title string) {
	m.set(ModeMainMenu, mainMenu(title, m.coop))
}

// set switches mode and republishes the menu view
func (m *Machine) set(mode Mode, menu *Menu) {
	if mode != m.mode {
		log.Printf("[mode] %s -> %s", m.mode, mode)
	}
	m.mode = mode
	m.menu = menu
	m.timer = 0

	*m.view = engine.MenuResource{Items: m.view.Items[:0]}
	if menu != nil {
		menu.publish(m.view)
		return
	}
	if mode == ModePlaying {
		m.view.Banner = m.starter.StageName(m.stage)
	}
}
