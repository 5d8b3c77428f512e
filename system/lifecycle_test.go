package system

import (
	"testing"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/event"
	"github.com/lixenwraith/hectic/parameter"
)

// TestOffscreenKill verifies an entity is only culled after it has been on screen
func TestOffscreenKill(t *testing.T) {
	w := engine.NewTestWorld()
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.Position(240, -100))
	w.Components.Image.SetComponent(e, component.ImageComponent{Image: asset.ImageBat})
	w.Components.DieOffscreen.SetComponent(e, component.DieOffscreenComponent{})
	vis := NewVisibilitySystem(w)

	step(w, vis)
	if !w.IsAlive(e) {
		t.Fatal("Expected entity spawned offscreen to survive")
	}
	if w.Components.BeenOnscreen.HasEntity(e) {
		t.Fatal("Expected no onscreen mark yet")
	}

	w.Components.Position.SetComponent(e, component.Position(240, 320))
	step(w, vis)
	if !w.Components.BeenOnscreen.HasEntity(e) {
		t.Fatal("Expected onscreen mark")
	}

	w.Components.Position.SetComponent(e, component.Position(240, 800))
	step(w, vis)
	if w.IsAlive(e) {
		t.Error("Expected entity culled after leaving the screen")
	}
}

// TestOffscreenKeepsUnmarked verifies entities without the die marker survive leaving the screen
func TestOffscreenKeepsUnmarked(t *testing.T) {
	w := engine.NewTestWorld()
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.Position(240, 320))
	w.Components.Image.SetComponent(e, component.ImageComponent{Image: asset.ImageBat})
	vis := NewVisibilitySystem(w)
	step(w, vis)

	w.Components.Position.SetComponent(e, component.Position(-500, 320))
	step(w, vis)
	if !w.IsAlive(e) {
		t.Error("Expected unmarked entity to survive offscreen")
	}
}

// TestExplosionLifecycle verifies frame progression and removal after the animation
func TestExplosionLifecycle(t *testing.T) {
	w := engine.NewTestWorld()
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.Position(0, 0))
	w.Components.Explosion.SetComponent(e, component.ExplosionComponent{Start: 0})
	w.Components.Image.SetComponent(e, component.ImageComponent{Image: asset.ImageExplosion1})
	sys := NewExplosionSystem(w)

	w.Resources.Time.Total = parameter.ExplosionDuration / 2
	step(w, sys)
	img, _ := w.Components.Image.GetComponent(e)
	if img.Image != asset.ImageExplosion4 {
		t.Errorf("Expected fourth frame at half time, got %v", img.Image)
	}

	w.Resources.Time.Total = parameter.ExplosionDuration
	step(w, sys)
	if w.IsAlive(e) {
		t.Error("Expected explosion removed after its duration")
	}
}

// TestTimeKeeperThaws verifies the clock ticks and expired freezes are lifted
func TestTimeKeeperThaws(t *testing.T) {
	w := engine.NewTestWorld()
	soon := w.CreateEntity()
	later := w.CreateEntity()
	w.Components.FrozenUntil.SetComponent(soon, component.FrozenUntilComponent{Time: w.Resources.Time.Delta})
	w.Components.FrozenUntil.SetComponent(later, component.FrozenUntilComponent{Time: 1})

	step(w, NewTimeKeeperSystem(w))

	if w.Resources.Time.Frame != 1 {
		t.Errorf("Expected frame 1, got %d", w.Resources.Time.Frame)
	}
	if w.Components.FrozenUntil.HasEntity(soon) {
		t.Error("Expected expired freeze removed")
	}
	if !w.Components.FrozenUntil.HasEntity(later) {
		t.Error("Expected pending freeze kept")
	}
	if got := w.Resources.Status.Ints.Get("world.entities").Load(); got != 2 {
		t.Errorf("Expected entity gauge 2, got %d", got)
	}
}

// TestOrbPickup verifies collection fills the bar and removes the orb
func TestOrbPickup(t *testing.T) {
	w := engine.NewTestWorld()
	player := spawnPlayer(w, 0, 100, 100)
	orb := w.CreateEntity()
	w.Components.Position.SetComponent(orb, component.Position(110, 100))
	w.Components.Hitbox.SetComponent(orb, component.Hitbox(parameter.OrbHitboxHalf, parameter.OrbHitboxHalf))
	w.Components.PowerOrb.SetComponent(orb, component.PowerOrbComponent{Value: parameter.BigOrbValue})

	step(w, NewOrbSystem(w))

	if w.IsAlive(orb) {
		t.Error("Expected orb collected")
	}
	bar, _ := w.Components.PowerBar.GetComponent(player)
	if bar.Value != parameter.BigOrbValue {
		t.Errorf("Expected bar %d, got %d", parameter.BigOrbValue, bar.Value)
	}
}

// TestBombClearsBullets verifies a growing bomb removes sensitive entities inside its radius
func TestBombClearsBullets(t *testing.T) {
	w := engine.NewTestWorld()
	bomb := w.CreateEntity()
	w.Components.Position.SetComponent(bomb, component.Position(0, 0))
	w.Components.Bomb.SetComponent(bomb, component.BombComponent{Growth: 10, MaxRadius: 25})

	near := spawnBullet(w, 8, 0, false)
	w.Components.CollidesWithBomb.SetComponent(near, component.CollidesWithBombComponent{})
	far := spawnBullet(w, 15, 0, false)
	w.Components.CollidesWithBomb.SetComponent(far, component.CollidesWithBombComponent{})
	body := spawnEnemy(w, 5, 0, 10, 3)

	sys := NewBombSystem(w)
	step(w, sys)
	if w.IsAlive(near) || !w.IsAlive(far) {
		t.Fatal("Expected only the near bullet cleared at radius 10")
	}
	step(w, sys)
	if w.IsAlive(far) {
		t.Error("Expected far bullet cleared at radius 20")
	}
	if !w.IsAlive(body) {
		t.Error("Expected insensitive enemy untouched")
	}
	step(w, sys)
	if w.IsAlive(bomb) {
		t.Error("Expected bomb removed past its max radius")
	}
}

// TestStageProgressOutcomes verifies clear and game-over reporting
func TestStageProgressOutcomes(t *testing.T) {
	t.Run("boss killed", func(t *testing.T) {
		w := engine.NewTestWorld()
		*w.Resources.Stage = engine.StageResource{ID: 2, Active: true, BossSpawned: true}
		spawnPlayer(w, 0, 100, 100)
		boss := w.CreateEntity()
		w.Components.Boss.SetComponent(boss, component.BossComponent{})
		sys := NewStageProgressSystem(w)

		sys.Update()
		if w.Resources.Event.Queue.Len() != 0 {
			t.Fatal("Expected no event with boss alive")
		}
		w.DeleteEntity(boss)
		sys.Update()
		events := w.Resources.Event.Queue.Consume()
		if len(events) != 1 || events[0].Type != event.EventStageCleared {
			t.Fatalf("Expected one stage cleared event, got %v", events)
		}
		if p, _ := events[0].Payload.(*event.StageClearedPayload); p == nil || p.Stage != 2 {
			t.Errorf("Expected stage 2 payload, got %v", events[0].Payload)
		}
		if w.Resources.Stage.Active {
			t.Error("Expected stage resolved")
		}
	})

	t.Run("players dead", func(t *testing.T) {
		w := engine.NewTestWorld()
		*w.Resources.Stage = engine.StageResource{ID: 1, Active: true, BossSpawned: true}
		boss := w.CreateEntity()
		w.Components.Boss.SetComponent(boss, component.BossComponent{})
		NewStageProgressSystem(w).Update()
		events := w.Resources.Event.Queue.Consume()
		if len(events) != 1 || events[0].Type != event.EventGameOver {
			t.Fatalf("Expected game over, got %v", events)
		}
	})
}

// TestStageProgressCountsKills verifies kill events routed to the progress handler
func TestStageProgressCountsKills(t *testing.T) {
	w := engine.NewTestWorld()
	sys := NewStageProgressSystem(w)
	router := engine.NewEventRouter(w.Resources.Event.Queue)
	router.Register(sys.(engine.EventHandler))

	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{})
	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{Boss: true})
	router.DispatchAll()

	if w.Resources.Stage.Kills != 2 {
		t.Errorf("Expected 2 kills, got %d", w.Resources.Stage.Kills)
	}
}

type fakePlayer struct {
	played []core.SoundType
}

func (f *fakePlayer) Play(s core.SoundType) bool {
	f.played = append(f.played, s)
	return true
}

// TestAudioForwarding verifies sound requests reach the attached player
func TestAudioForwarding(t *testing.T) {
	w := engine.NewTestWorld()
	router := engine.NewEventRouter(w.Resources.Event.Queue)
	router.Register(NewAudioSystem(w))

	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundShot})
	router.DispatchAll()

	fake := &fakePlayer{}
	w.Resources.Audio.Player = fake
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundBomb})
	router.DispatchAll()

	if len(fake.played) != 1 || fake.played[0] != core.SoundBomb {
		t.Errorf("Expected only the bomb cue, got %v", fake.played)
	}
}
