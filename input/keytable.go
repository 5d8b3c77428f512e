package input

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeyTable maps actions to key names. Key names are lower-case and frontend
// neutral ("up", "z", "escape", "f3"); each frontend resolves them to its own key codes
type KeyTable struct {
	Players [MaxPlayers][ActionCount]string // Player sections, per-player actions only
	Global  [ActionCount]string             // Global section, global actions only
}

// keyFile is the on-disk TOML shape
type keyFile struct {
	Player1 map[string]string `toml:"player1"`
	Player2 map[string]string `toml:"player2"`
	Global  map[string]string `toml:"global"`
}

// DefaultKeyTable is used when no keymap is stored
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{}
	kt.Players[0] = [ActionCount]string{
		ActionUp: "up", ActionDown: "down", ActionLeft: "left", ActionRight: "right",
		ActionFire: "z", ActionBomb: "x",
	}
	kt.Players[1] = [ActionCount]string{
		ActionUp: "w", ActionDown: "s", ActionLeft: "a", ActionRight: "d",
		ActionFire: "g", ActionBomb: "h",
	}
	kt.Global[ActionPause] = "escape"
	kt.Global[ActionDebug] = "f3"
	return kt
}

// Binding is one resolved key assignment
type Binding struct {
	Player int
	Action Action
	Key    string
}

// Bindings lists every assigned key. Global actions report player 0
func (kt *KeyTable) Bindings() []Binding {
	var out []Binding
	for p := 0; p < MaxPlayers; p++ {
		for a := Action(0); a < ActionCount; a++ {
			if k := kt.Players[p][a]; k != "" {
				out = append(out, Binding{Player: p, Action: a, Key: k})
			}
		}
	}
	for a := Action(0); a < ActionCount; a++ {
		if k := kt.Global[a]; k != "" {
			out = append(out, Binding{Player: 0, Action: a, Key: k})
		}
	}
	return out
}

// HasPlayer reports whether the slot has at least one movement key bound
func (kt *KeyTable) HasPlayer(p int) bool {
	if p < 0 || p >= MaxPlayers {
		return false
	}
	for a := ActionUp; a <= ActionRight; a++ {
		if kt.Players[p][a] != "" {
			return true
		}
	}
	return false
}

// ParseKeyTable parses TOML keymap data. Sections or actions absent from data
// keep their defaults. Unknown sections, unknown actions, actions in the wrong
// section and empty key names are errors
func ParseKeyTable(data []byte) (*KeyTable, error) {
	var f keyFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown key %q", undecoded[0].String())
	}

	kt := DefaultKeyTable()
	for p, section := range []map[string]string{f.Player1, f.Player2} {
		name := fmt.Sprintf("player%d", p+1)
		for actionName, key := range section {
			a, err := resolveAction(name, actionName, key, false)
			if err != nil {
				return nil, err
			}
			kt.Players[p][a] = normalizeKey(key)
		}
	}
	for actionName, key := range f.Global {
		a, err := resolveAction("global", actionName, key, true)
		if err != nil {
			return nil, err
		}
		kt.Global[a] = normalizeKey(key)
	}
	return kt, nil
}

func resolveAction(section, actionName, key string, global bool) (Action, error) {
	a, ok := actionByName(actionName)
	if !ok {
		return ActionCount, fmt.Errorf("section [%s]: unknown action %q", section, actionName)
	}
	if a.Global() != global {
		return ActionCount, fmt.Errorf("section [%s]: action %q not allowed here", section, actionName)
	}
	if normalizeKey(key) == "" {
		return ActionCount, fmt.Errorf("section [%s]: empty key for action %q", section, actionName)
	}
	return a, nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// EncodeKeyTable renders the table as TOML
func EncodeKeyTable(kt *KeyTable) ([]byte, error) {
	f := keyFile{
		Player1: make(map[string]string),
		Player2: make(map[string]string),
		Global:  make(map[string]string),
	}
	for a := Action(0); a < ActionCount; a++ {
		if k := kt.Players[0][a]; k != "" {
			f.Player1[a.String()] = k
		}
		if k := kt.Players[1][a]; k != "" {
			f.Player2[a.String()] = k
		}
		if k := kt.Global[a]; k != "" {
			f.Global[a.String()] = k
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("keymap encode: %w", err)
	}
	return buf.Bytes(), nil
}
