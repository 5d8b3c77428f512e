package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/hectic/input"
)

// Held direction keys re-press after this many ticks, then every repeatInterval
const (
	repeatDelay    = 24
	repeatInterval = 6
)

var keysByName = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.Key0, "1": ebiten.Key1, "2": ebiten.Key2, "3": ebiten.Key3, "4": ebiten.Key4,
	"5": ebiten.Key5, "6": ebiten.Key6, "7": ebiten.Key7, "8": ebiten.Key8, "9": ebiten.Key9,

	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"escape":    ebiten.KeyEscape,
	"enter":     ebiten.KeyEnter,
	"space":     ebiten.KeySpace,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"delete":    ebiten.KeyDelete,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"page_up":   ebiten.KeyPageUp,
	"page_down": ebiten.KeyPageDown,
	"insert":    ebiten.KeyInsert,
	"shift":     ebiten.KeyShift,
	"control":   ebiten.KeyControl,
	"alt":       ebiten.KeyAlt,

	"f1": ebiten.KeyF1, "f2": ebiten.KeyF2, "f3": ebiten.KeyF3, "f4": ebiten.KeyF4,
	"f5": ebiten.KeyF5, "f6": ebiten.KeyF6, "f7": ebiten.KeyF7, "f8": ebiten.KeyF8,
	"f9": ebiten.KeyF9, "f10": ebiten.KeyF10, "f11": ebiten.KeyF11, "f12": ebiten.KeyF12,
}

// KeyByName resolves a keymap key name
func KeyByName(name string) (ebiten.Key, bool) {
	k, ok := keysByName[strings.ToLower(name)]
	return k, ok
}

type boundKey struct {
	key     ebiten.Key
	binding input.Binding
}

// keyboard polls bound keys into controls once per tick
type keyboard struct {
	keys []boundKey
}

// newKeyboard resolves every binding. A key name the window cannot map is an error
func newKeyboard(kt *input.KeyTable) (*keyboard, error) {
	k := &keyboard{}
	for _, b := range kt.Bindings() {
		key, ok := KeyByName(b.Key)
		if !ok {
			return nil, fmt.Errorf("keymap: key %q for %s has no window binding", b.Key, b.Action)
		}
		k.keys = append(k.keys, boundKey{key: key, binding: b})
	}
	return k, nil
}

func (k *keyboard) poll(c *input.Controls) {
	for _, bk := range k.keys {
		c.Set(bk.binding.Player, bk.binding.Action, ebiten.IsKeyPressed(bk.key))

		if bk.binding.Action != input.ActionUp && bk.binding.Action != input.ActionDown {
			continue
		}
		if d := inpututil.KeyPressDuration(bk.key); repeats(d) {
			c.Press(bk.binding.Player, bk.binding.Action)
		}
	}
}

// repeats reports whether a key held for d ticks should auto-repeat this tick
func repeats(d int) bool {
	return d > repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
