package system

import (
	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/parameter"
)

// step runs the given systems once, in argument order, then the sync point
func step(w *engine.World, systems ...engine.System) {
	for _, s := range systems {
		s.Update()
	}
	w.Maintain()
}

func spawnPlayer(w *engine.World, index int, x, y float64) core.Entity {
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Position, component.Position(x, y))
	engine.With(eb, c.Player, component.PlayerComponent{Index: index})
	engine.With(eb, c.Friendly, component.FriendlyComponent{})
	engine.With(eb, c.Hitbox, component.Hitbox(parameter.PlayerHitboxHalf, parameter.PlayerHitboxHalf))
	engine.With(eb, c.Health, component.Health(parameter.PlayerHealth))
	engine.With(eb, c.Invulnerability, component.Invulnerability(parameter.PlayerInvulnerability))
	engine.With(eb, c.PowerBar, component.PowerBarComponent{})
	engine.With(eb, c.Cooldown, component.CooldownComponent{Cooldown: component.NewCooldown(parameter.PlayerFireCooldown)})
	engine.With(eb, c.Image, component.ImageComponent{Image: asset.ImagePlayer})
	return eb.Build()
}

func spawnEnemy(w *engine.World, x, y, half float64, health uint32) core.Entity {
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Position, component.Position(x, y))
	engine.With(eb, c.Enemy, component.EnemyComponent{})
	engine.With(eb, c.Hitbox, component.Hitbox(half, half))
	engine.With(eb, c.Health, component.Health(health))
	engine.With(eb, c.Image, component.ImageComponent{Image: asset.ImageBat})
	return eb.Build()
}

func spawnBullet(w *engine.World, x, y float64, friendly bool) core.Entity {
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Position, component.Position(x, y))
	engine.With(eb, c.Hitbox, component.Hitbox(0, 0))
	engine.With(eb, c.Health, component.Health(1))
	if friendly {
		engine.With(eb, c.Friendly, component.FriendlyComponent{})
	} else {
		engine.With(eb, c.Enemy, component.EnemyComponent{})
	}
	return eb.Build()
}

func countExplosions(w *engine.World) int {
	return w.Components.Explosion.CountEntities()
}

var testBackground = asset.ImageClouds

var testBullet = component.BulletSetup{Image: asset.ImageRockBullet, Speed: 2}
