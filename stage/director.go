package stage

import (
	"log"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/vmath"
)

// Director populates the world from stage scripts
type Director struct {
	scripts *Scripts
}

func NewDirector(scripts *Scripts) *Director {
	return &Director{scripts: scripts}
}

func (d *Director) Scripts() *Scripts {
	return d.scripts
}

// Start resets the world and lays out the whole stage timeline. Entities are
// created up front and frozen until their activation time
func (d *Director) Start(w *engine.World, stageID int, multiplayer bool) error {
	script, err := d.scripts.Stage(stageID)
	if err != nil {
		return err
	}

	w.Clear()
	w.Resources.Time.Reset()
	w.Resources.Event.Queue.Clear()

	cfg := w.Resources.Config
	for _, bg := range script.Backgrounds {
		d.spawnBackground(w, bg, cfg)
	}
	SpawnPlayers(w, multiplayer)

	for _, wave := range script.Waves {
		d.spawnWave(w, wave)
	}
	for _, g := range script.Gunners {
		d.spawnGunners(w, g, cfg)
	}
	if script.Boss != nil {
		d.spawnBoss(w, script.Boss)
	}

	*w.Resources.Stage = engine.StageResource{
		ID:          script.ID,
		Name:        script.Name,
		Multiplayer: multiplayer,
		Active:      true,
		BossSpawned: script.Boss != nil,
	}
	log.Printf("[stage] start %d %q multiplayer=%v entities=%d", script.ID, script.Name, multiplayer, w.EntityCount())
	return nil
}

func (d *Director) spawnBackground(w *engine.World, bg BackgroundSpec, cfg *engine.ConfigResource) {
	c := w.Components
	middle := vmath.V2(cfg.Width/2, cfg.Height/2)
	for _, off := range bg.Offsets {
		eb := w.NewEntity()
		engine.With(eb, c.Position, component.PositionComponent{Vec2: vmath.V2Add(middle, vmath.V2(0, off))})
		engine.With(eb, c.Image, component.ImageComponent{Image: bg.image})
		engine.With(eb, c.BackgroundLayer, component.BackgroundLayerComponent{Depth: bg.Depth})
		if bg.Scroll != 0 {
			engine.With(eb, c.Movement, component.Linear(vmath.V2(0, bg.Scroll)))
		}
		eb.Build()
	}
}

// SpawnPlayers creates one centred player or a side-by-side co-op pair
func SpawnPlayers(w *engine.World, multiplayer bool) []core.Entity {
	cfg := w.Resources.Config
	y := cfg.Height * parameter.PlayerSpawnHeight
	if !multiplayer {
		return []core.Entity{SpawnPlayer(w, 0, vmath.V2(cfg.Width/2, y))}
	}
	return []core.Entity{
		SpawnPlayer(w, 0, vmath.V2(cfg.Width/3, y)),
		SpawnPlayer(w, 1, vmath.V2(cfg.Width*2/3, y)),
	}
}

func SpawnPlayer(w *engine.World, index int, pos vmath.Vec2) core.Entity {
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{Vec2: pos})
	engine.With(eb, c.Image, component.ImageComponent{Image: asset.ImagePlayer})
	engine.With(eb, c.Player, component.PlayerComponent{Index: index})
	engine.With(eb, c.Cooldown, component.CooldownComponent{Cooldown: component.NewCooldown(parameter.PlayerFireCooldown)})
	engine.With(eb, c.Hitbox, component.Hitbox(parameter.PlayerHitboxHalf, parameter.PlayerHitboxHalf))
	engine.With(eb, c.Friendly, component.FriendlyComponent{})
	engine.With(eb, c.Health, component.Health(parameter.PlayerHealth))
	engine.With(eb, c.Invulnerability, component.Invulnerability(parameter.PlayerInvulnerability))
	engine.With(eb, c.PowerBar, component.PowerBarComponent{})
	return eb.Build()
}

// enemy starts a builder with an archetype's body, frozen until activation
func (d *Director) enemy(w *engine.World, name string, pos vmath.Vec2, activation float64) *engine.EntityBuilder {
	spec := d.scripts.Enemies[name]
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{Vec2: pos})
	engine.With(eb, c.Image, component.ImageComponent{Image: spec.image})
	engine.With(eb, c.Enemy, component.EnemyComponent{})
	engine.With(eb, c.Hitbox, component.Hitbox(spec.Hitbox[0], spec.Hitbox[1]))
	engine.With(eb, c.Health, component.Health(spec.Health))
	engine.With(eb, c.FrozenUntil, component.FrozenUntilComponent{Time: activation})
	return eb
}

func (d *Director) spawnWave(w *engine.World, wave WaveSpec) {
	c := w.Components
	// Curves are validated at load
	curves := make([]component.MovementComponent, 0, len(wave.Curves))
	for _, cs := range wave.Curves {
		curve, _ := cs.build()
		curves = append(curves, component.FollowCurve(curve))
	}

	for _, at := range wave.activations() {
		for _, mv := range curves {
			eb := d.enemy(w, wave.Enemy, mv.Curve.B, at)
			engine.With(eb, c.Movement, mv)
			engine.With(eb, c.DieOffscreen, component.DieOffscreenComponent{})
			eb.Build()
		}
		if wave.Homing == nil {
			continue
		}
		for _, p := range wave.Homing.Points {
			eb := d.enemy(w, wave.Enemy, vec(p), at)
			engine.With(eb, c.TargetPlayer, component.TargetPlayerComponent{Speed: wave.Homing.Speed})
			engine.With(eb, c.DieOffscreen, component.DieOffscreenComponent{})
			eb.Build()
		}
	}
}

func (d *Director) spawnGunners(w *engine.World, g GunnerSpec, cfg *engine.ConfigResource) {
	c := w.Components
	fires, _ := g.Fires.build()
	for _, x := range g.Xs {
		eb := d.enemy(w, g.Enemy, vmath.V2(x*cfg.Width, g.Y), g.FrozenUntil)
		engine.With(eb, c.Movement, component.FiringMove(g.Speed, g.Stop, g.Return))
		engine.With(eb, c.FiresBullets, fires.Clone())
		engine.With(eb, c.DieOffscreen, component.DieOffscreenComponent{})
		eb.Build()
	}
}

func (d *Director) spawnBoss(w *engine.World, b *BossSpec) core.Entity {
	c := w.Components
	moves := make([]component.BossMove, 0, len(b.Moves))
	for _, m := range b.Moves {
		fires, _ := m.Fires.build()
		moves = append(moves, component.BossMove{Target: vec(m.Target), Fires: fires, Duration: m.Duration})
	}

	eb := d.enemy(w, b.Enemy, vec(b.Spawn), b.FrozenUntil)
	engine.With(eb, c.Boss, component.BossComponent{Moves: moves, Speed: b.Speed})
	engine.With(eb, c.Movement, component.MoveTowards(moves[0].Target, b.Speed))
	return eb.Build()
}
