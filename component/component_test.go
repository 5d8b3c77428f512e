package component

import (
	"testing"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/core"
)

const tick = 1.0 / 60

// TestCooldownOncePerInterval verifies a cooldown polled every tick never fires twice within its interval
func TestCooldownOncePerInterval(t *testing.T) {
	for _, interval := range []float64{0.075, 0.5, 1.0} {
		c := NewCooldown(interval)
		last := -1e9
		fires := 0
		for i := 0; i < 600; i++ {
			now := float64(i) * tick
			if c.IsReady(now) {
				if now-last < interval-1e-9 {
					t.Fatalf("interval %v: fired at %v only %v after previous", interval, now, now-last)
				}
				last = now
				fires++
			}
		}
		if fires == 0 {
			t.Errorf("interval %v: never fired", interval)
		}
	}
}

// TestCooldownFirstCheckReady verifies a fresh cooldown fires immediately
func TestCooldownFirstCheckReady(t *testing.T) {
	c := NewCooldown(1.0)
	if !c.IsReady(0) {
		t.Error("Expected fresh cooldown to be ready")
	}
	if c.IsReady(0.5) {
		t.Error("Expected cooldown to block within interval")
	}
	if !c.IsReady(1.0) {
		t.Error("Expected cooldown ready after full interval")
	}
}

// TestInvulnerabilityWindow verifies the first hit lands and later hits are gated by the window
func TestInvulnerabilityWindow(t *testing.T) {
	inv := Invulnerability(5)
	if !inv.CanDamage(0) {
		t.Fatal("Expected first hit to land")
	}
	if inv.CanDamage(4.9) {
		t.Error("Expected hit inside window to be blocked")
	}
	if got := inv.Remaining(4); got < 0.99 || got > 1.01 {
		t.Errorf("Remaining(4) = %v, want 1", got)
	}
	if !inv.CanDamage(5) {
		t.Error("Expected hit at window end to land")
	}
	if inv.Remaining(100) != 0 {
		t.Error("Expected no remaining window long after last hit")
	}
}

// TestHealthSaturates verifies damage never wraps below zero
func TestHealthSaturates(t *testing.T) {
	h := Health(2)
	h.Damage()
	h.Damage()
	h.Damage()
	if h.Points != 0 || !h.Dead() {
		t.Errorf("Expected dead at 0, got %d", h.Points)
	}
	if h.MaxPoints != 2 {
		t.Errorf("Expected MaxPoints preserved, got %d", h.MaxPoints)
	}
}

// TestPowerBar verifies saturation and that Empty only succeeds on a full bar
func TestPowerBar(t *testing.T) {
	var p PowerBarComponent
	p.Add(30)
	if p.Empty() {
		t.Fatal("Expected partial bar not to empty")
	}
	if p.Value != 30 {
		t.Errorf("Expected partial bar untouched, got %d", p.Value)
	}
	p.Add(10)
	if p.Value != PowerBarMax {
		t.Errorf("Expected saturation at %d, got %d", PowerBarMax, p.Value)
	}
	if p.Percent() != 1 {
		t.Errorf("Expected full percent, got %v", p.Percent())
	}
	if !p.Empty() || p.Value != 0 {
		t.Errorf("Expected full bar to empty, value %d", p.Value)
	}
}

// TestCloneIndependence verifies cloned patterns do not share mutable leaf state
func TestCloneIndependence(t *testing.T) {
	colour := core.RGB{1, 2, 3}
	bullet := BulletSetup{Image: asset.ImageColouredBullet, Speed: 2, Colour: &colour}
	orig := Multiple(
		Circle(8, 0, 0.1, bullet, 0.5),
		Arc(0, 1, 2, 10, bullet, 0.1),
	)

	clone := orig.Clone()
	clone.Patterns[0].Rotation = 3
	clone.Patterns[1].Fired = 7
	clone.Patterns[0].Cooldown.LastFired = 42
	clone.Patterns[0].Bullet.Colour.R = 200

	if orig.Patterns[0].Rotation != 0 || orig.Patterns[1].Fired != 0 {
		t.Error("Clone shares pattern state with original")
	}
	if orig.Patterns[0].Cooldown.LastFired == 42 {
		t.Error("Clone shares cooldown with original")
	}
	if orig.Patterns[0].Bullet.Colour.R != 1 {
		t.Error("Clone shares bullet colour with original")
	}
}

// TestPatternDone verifies only finished arcs, and composites of them, report done
func TestPatternDone(t *testing.T) {
	bullet := BulletSetup{Image: asset.ImageRockBullet, Speed: 2}
	arc := Arc(0, 1, 1, 2, bullet, 0.1)
	if arc.Done() {
		t.Error("Fresh arc reported done")
	}
	arc.Fired = 2
	if !arc.Done() {
		t.Error("Exhausted arc not done")
	}

	if AtPlayer(3, 1, bullet, 1).Done() {
		t.Error("AtPlayer never finishes")
	}

	m := Multiple(arc, Circle(4, 0, 0, bullet, 1))
	if m.Done() {
		t.Error("Multiple with an endless child reported done")
	}
	if !Multiple(arc).Done() {
		t.Error("Multiple of exhausted arcs not done")
	}
}
