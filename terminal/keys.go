package terminal

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hectic/input"
)

// holdTicks is how long an action stays held after its last key event. Covers
// the gap before auto-repeat starts on common terminals
const holdTicks = 30

var specialKeyNames = map[tcell.Key]string{
	tcell.KeyUp:        "up",
	tcell.KeyDown:      "down",
	tcell.KeyLeft:      "left",
	tcell.KeyRight:     "right",
	tcell.KeyEscape:    "escape",
	tcell.KeyEnter:     "enter",
	tcell.KeyTab:       "tab",
	tcell.KeyBackspace: "backspace",
	tcell.KeyDelete:    "delete",
	tcell.KeyHome:      "home",
	tcell.KeyEnd:       "end",
	tcell.KeyPgUp:      "page_up",
	tcell.KeyPgDn:      "page_down",
	tcell.KeyInsert:    "insert",
	tcell.KeyF1:        "f1",
	tcell.KeyF2:        "f2",
	tcell.KeyF3:        "f3",
	tcell.KeyF4:        "f4",
	tcell.KeyF5:        "f5",
	tcell.KeyF6:        "f6",
	tcell.KeyF7:        "f7",
	tcell.KeyF8:        "f8",
	tcell.KeyF9:        "f9",
	tcell.KeyF10:       "f10",
	tcell.KeyF11:       "f11",
	tcell.KeyF12:       "f12",
}

// KeyName returns the keymap name of a key event, "" for keys with no name
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return string(unicode.ToLower(r))
	}
	return specialKeyNames[ev.Key()]
}

// keyState is one bound action's synthesized hold
type keyState struct {
	binding  input.Binding
	lastSeen int64
	held     bool
}

// Keyboard turns press-only key events into held controls
type Keyboard struct {
	byName map[string][]*keyState
	states []*keyState
	tick   int64
}

func NewKeyboard(kt *input.KeyTable) *Keyboard {
	k := &Keyboard{byName: make(map[string][]*keyState)}
	for _, b := range kt.Bindings() {
		st := &keyState{binding: b}
		name := strings.ToLower(b.Key)
		k.byName[name] = append(k.byName[name], st)
		k.states = append(k.states, st)
	}
	return k
}

// Key records a key event against every action bound to it. Returns false for unbound keys
func (k *Keyboard) Key(name string, c *input.Controls) bool {
	states, ok := k.byName[name]
	if !ok {
		return false
	}
	for _, st := range states {
		if st.held && (st.binding.Action == input.ActionUp || st.binding.Action == input.ActionDown) {
			// Auto-repeat scrolls menus
			c.Press(st.binding.Player, st.binding.Action)
		}
		st.held = true
		st.lastSeen = k.tick
		c.Set(st.binding.Player, st.binding.Action, true)
	}
	return true
}

// Tick advances one simulation tick and releases actions whose key went quiet
func (k *Keyboard) Tick(c *input.Controls) {
	k.tick++
	for _, st := range k.states {
		if st.held && k.tick-st.lastSeen > holdTicks {
			st.held = false
			c.Set(st.binding.Player, st.binding.Action, false)
		}
	}
}

// ReleaseAll drops every synthesized hold
func (k *Keyboard) ReleaseAll(c *input.Controls) {
	for _, st := range k.states {
		if st.held {
			st.held = false
			c.Set(st.binding.Player, st.binding.Action, false)
		}
	}
}
