package system

import (
	"strings"
	"testing"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/render"
)

// TestFlashing verifies steady tint then blinking in the final second
func TestFlashing(t *testing.T) {
	tests := []struct {
		remaining float64
		want      bool
	}{
		{0, false},
		{3, true},
		{0.95, true},  // 0.15 into the cycle
		{0.85, false}, // 0.05 into the cycle
	}
	for _, tt := range tests {
		if got := flashing(tt.remaining); got != tt.want {
			t.Errorf("flashing(%.2f) = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

// TestRenderLayersSorted verifies backgrounds precede sprites and the UI comes last
func TestRenderLayersSorted(t *testing.T) {
	w := engine.NewTestWorld()
	spawnPlayer(w, 0, 100, 100)
	bg := w.CreateEntity()
	w.Components.Position.SetComponent(bg, component.Position(240, 320))
	w.Components.Image.SetComponent(bg, component.ImageComponent{Image: asset.ImageNightSky})
	w.Components.BackgroundLayer.SetComponent(bg, component.BackgroundLayerComponent{})

	NewRenderSystem(w).Update()
	cmds := w.Resources.Render.Buffer.Commands()
	if len(cmds) == 0 {
		t.Fatal("Expected draw commands")
	}
	if cmds[0].Image != asset.ImageNightSky {
		t.Errorf("Expected background first, got %v", cmds[0].Image)
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i].Layer < cmds[i-1].Layer {
			t.Fatalf("Command %d on layer %d after layer %d", i, cmds[i].Layer, cmds[i-1].Layer)
		}
	}
}

// TestRenderInvulnerableTint verifies a freshly hit player is drawn with the white overlay
func TestRenderInvulnerableTint(t *testing.T) {
	w := engine.NewTestWorld()
	p := spawnPlayer(w, 0, 100, 100)
	inv, _ := w.Components.Invulnerability.GetComponent(p)
	inv.CanDamage(0)
	w.Components.Invulnerability.SetComponent(p, inv)

	NewRenderSystem(w).Update()
	for _, c := range w.Resources.Render.Buffer.Commands() {
		if c.Kind == render.KindSprite && c.Image == asset.ImagePlayer {
			if c.Colour != core.RGBWhite || c.Alpha != parameter.InvulnerableTint {
				t.Errorf("Expected white tint, got %v alpha %.2f", c.Colour, c.Alpha)
			}
			return
		}
	}
	t.Error("Expected player sprite")
}

// TestRenderBossBar verifies boss bar width scales with remaining health
func TestRenderBossBar(t *testing.T) {
	w := engine.NewTestWorld()
	boss := w.CreateEntity()
	w.Components.Boss.SetComponent(boss, component.BossComponent{})
	w.Components.Health.SetComponent(boss, component.HealthComponent{Points: 25, MaxPoints: 100})

	NewRenderSystem(w).Update()
	want := w.Resources.Config.Width * parameter.BossBarWidthRatio / 4
	for _, c := range w.Resources.Render.Buffer.Commands() {
		if c.Kind == render.KindBox && c.Size.Y == parameter.BossBarHeight {
			if c.Size.X != want {
				t.Errorf("Expected bar width %.1f, got %.1f", want, c.Size.X)
			}
			return
		}
	}
	t.Error("Expected a boss bar")
}

// TestRenderMenu verifies selection marker and inactive colouring
func TestRenderMenu(t *testing.T) {
	w := engine.NewTestWorld()
	*w.Resources.Menu = engine.MenuResource{
		Visible:  true,
		Title:    "Paused",
		Items:    []engine.MenuEntry{{Text: "Resume", Active: true}, {Text: "Co-op", Active: false}},
		Selected: 0,
	}

	NewRenderSystem(w).Update()
	var texts []render.Command
	for _, c := range w.Resources.Render.Buffer.Commands() {
		if c.Kind == render.KindText {
			texts = append(texts, c)
		}
	}
	if len(texts) != 3 {
		t.Fatalf("Expected title and two items, got %d texts", len(texts))
	}
	if texts[1].Text != "> Resume" {
		t.Errorf("Expected selected marker, got %q", texts[1].Text)
	}
	if strings.HasPrefix(texts[2].Text, ">") || texts[2].Colour != core.RGBGrey {
		t.Errorf("Expected plain grey inactive item, got %q %v", texts[2].Text, texts[2].Colour)
	}
}
