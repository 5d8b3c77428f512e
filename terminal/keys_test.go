package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hectic/input"
)

// TestKeyName verifies runes are lower-cased and special keys use keymap names
func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModShift), "z"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), "f3"},
	}
	for _, tt := range tests {
		if got := KeyName(tt.ev); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

// TestHoldWindow verifies a key stays held until its events stop for the hold window
func TestHoldWindow(t *testing.T) {
	c := input.NewControls()
	k := NewKeyboard(input.DefaultKeyTable())

	if !k.Key("z", c) {
		t.Fatal("Expected z to be bound")
	}
	if !c.Held(0, input.ActionFire) {
		t.Fatal("Expected fire held")
	}

	for i := 0; i < holdTicks; i++ {
		k.Tick(c)
	}
	if !c.Held(0, input.ActionFire) {
		t.Fatal("Expected fire still held inside the window")
	}

	// A repeat renews the window
	k.Key("z", c)
	for i := 0; i < holdTicks; i++ {
		k.Tick(c)
	}
	if !c.Held(0, input.ActionFire) {
		t.Fatal("Expected repeat to renew the hold")
	}

	k.Tick(c)
	if c.Held(0, input.ActionFire) {
		t.Error("Expected fire released after the window")
	}
}

// TestKeyboardSlots verifies bindings reach the right player slot
func TestKeyboardSlots(t *testing.T) {
	c := input.NewControls()
	k := NewKeyboard(input.DefaultKeyTable())

	k.Key("g", c)
	if !c.Held(1, input.ActionFire) || c.Held(0, input.ActionFire) {
		t.Error("Expected g to fire for player 2 only")
	}

	k.Key("escape", c)
	if !c.Consume(0, input.ActionPause) {
		t.Error("Expected escape to press pause on slot 0")
	}

	if k.Key("q", c) {
		t.Error("Expected q to be unbound")
	}

	k.ReleaseAll(c)
	if c.Held(1, input.ActionFire) {
		t.Error("Expected release of all holds")
	}
}

// TestRepeatScrollsMenu verifies auto-repeat of a direction re-arms its press
func TestRepeatScrollsMenu(t *testing.T) {
	c := input.NewControls()
	k := NewKeyboard(input.DefaultKeyTable())

	k.Key("down", c)
	c.Consume(0, input.ActionDown)
	k.Key("down", c)
	if !c.Consume(0, input.ActionDown) {
		t.Error("Expected repeat to press down again")
	}

	k.Key("z", c)
	c.Consume(0, input.ActionFire)
	k.Key("z", c)
	if c.Consume(0, input.ActionFire) {
		t.Error("Expected fire repeat to stay a hold")
	}
}
