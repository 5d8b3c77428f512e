package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/input"
	"github.com/lixenwraith/hectic/mode"
	"github.com/lixenwraith/hectic/render"
	"github.com/lixenwraith/hectic/stage"
	"github.com/lixenwraith/hectic/system"
	"github.com/lixenwraith/hectic/vmath"
)

// ErrQuit is returned by Step once the player picks Quit
var ErrQuit = errors.New("quit")

// Config selects how a game starts
type Config struct {
	Seed  uint64
	Stage int  // Jump straight into this stage; 0 opens the main menu
	Coop  bool // Enable the co-op menu entry
	Debug bool // Start with hitboxes and counters visible

	// Scripts overrides the built-in stages when set
	Scripts *stage.Scripts
	// Audio receives sound cues; nil runs silent
	Audio engine.AudioPlayer
}

// Game owns the world and drives it one tick at a time. Not safe for concurrent
// use: frontends call Step, Render and Controls from a single goroutine
type Game struct {
	World    *engine.World
	director *stage.Director
	machine  *mode.Machine
	router   *engine.EventRouter

	playing   *engine.Pipeline
	pipelines map[mode.Mode]*engine.Pipeline
	render    *engine.Pipeline
}

// New builds the world, systems and mode machine
func New(cfg Config) (*Game, error) {
	scripts := cfg.Scripts
	if scripts == nil {
		var err error
		if scripts, err = stage.DefaultScripts(); err != nil {
			return nil, fmt.Errorf("load stages: %w", err)
		}
	}

	w := engine.NewWorld()
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	w.Resources.RNG.Rand = vmath.NewFastRand(seed)
	w.Resources.Debug.Hitboxes = cfg.Debug
	w.Resources.Audio.Player = cfg.Audio

	g := &Game{
		World:    w,
		director: stage.NewDirector(scripts),
		router:   engine.NewEventRouter(w.Resources.Event.Queue),
	}

	stageProgress := system.NewStageProgressSystem(w)
	g.playing = engine.NewPipeline("playing", w,
		system.NewControlSystem(w),
		system.NewPlayerPositionsSystem(w),
		system.NewMovementSystem(w),
		system.NewBackgroundSystem(w),
		system.NewTargetingSystem(w),
		system.NewWeaponSystem(w),
		system.NewBulletSystem(w),
		system.NewCollisionSystem(w),
		system.NewDamageSystem(w),
		system.NewOrbSystem(w),
		system.NewBombSystem(w),
		system.NewVisibilitySystem(w),
		system.NewBossSystem(w),
		system.NewExplosionSystem(w),
		stageProgress,
		system.NewTimeKeeperSystem(w),
	)

	// The world keeps drifting under the stage-clear banner but nothing fires or takes damage
	transition := engine.NewPipeline("transition", w,
		system.NewMovementSystem(w),
		system.NewBackgroundSystem(w),
		system.NewVisibilitySystem(w),
		system.NewExplosionSystem(w),
		system.NewTimeKeeperSystem(w),
	)
	idle := engine.NewPipeline("idle", w)

	g.pipelines = map[mode.Mode]*engine.Pipeline{
		mode.ModeMainMenu:        idle,
		mode.ModePlaying:         g.playing,
		mode.ModePaused:          idle,
		mode.ModeStageTransition: transition,
		mode.ModeGameOver:        idle,
		mode.ModeQuit:            idle,
	}
	g.render = engine.NewPipeline("render", w, system.NewRenderSystem(w))

	g.machine = mode.NewMachine(stageStarter{g}, w.Resources.Menu, cfg.Coop)

	g.router.Register(system.NewAudioSystem(w))
	if h, ok := stageProgress.(engine.EventHandler); ok {
		g.router.Register(h)
	}
	g.router.Register(g.machine)

	if cfg.Stage != 0 {
		if err := g.machine.Start(cfg.Stage, cfg.Coop); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Controls is the input sink frontends write key state into
func (g *Game) Controls() *input.Controls {
	return g.World.Resources.Input.Controls
}

func (g *Game) Mode() mode.Mode {
	return g.machine.Mode()
}

// Step advances one tick: mode input, the mode's pipeline, then event dispatch
func (g *Game) Step() error {
	if err := g.machine.Update(g.Controls(), g.World.Resources.Time.Delta); err != nil {
		log.Printf("[game] %v", err)
		return err
	}
	m := g.machine.Mode()
	if m == mode.ModeQuit {
		return ErrQuit
	}

	g.pipelines[m].Run()
	g.router.DispatchAll()

	if g.machine.Mode() == mode.ModeQuit {
		return ErrQuit
	}
	return nil
}

// Render fills and returns the draw buffer. The caller resets it after drawing
func (g *Game) Render() *render.Buffer {
	g.render.Run()
	return g.World.Resources.Render.Buffer
}

// stageStarter connects the mode machine to the stage director
type stageStarter struct {
	g *Game
}

func (s stageStarter) StartStage(id int, multiplayer bool) error {
	if err := s.g.director.Start(s.g.World, id, multiplayer); err != nil {
		return err
	}
	s.g.playing.Init()
	return nil
}

func (s stageStarter) NextStage(id int) (int, bool) {
	return s.g.director.Scripts().Next(id)
}

func (s stageStarter) FirstStage() int {
	return s.g.director.Scripts().First()
}

func (s stageStarter) StageName(id int) string {
	script, err := s.g.director.Scripts().Stage(id)
	if err != nil {
		return ""
	}
	return script.Name
}
