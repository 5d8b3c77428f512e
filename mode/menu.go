package mode

import "github.com/lixenwraith/hectic/engine"

// MenuAction is what selecting a menu item does
type MenuAction uint8

const (
	MenuStart MenuAction = iota
	MenuStartCoop
	MenuQuit
	MenuResume
	MenuMainMenu
	MenuRetry
)

type MenuItem struct {
	Text   string
	Action MenuAction
	Active bool
}

// Menu is a vertical list with a cursor that skips inactive items
type Menu struct {
	Title    string
	Items    []MenuItem
	Selected int
	Dim      bool
}

// Move shifts the cursor by delta, wrapping and skipping inactive items
func (m *Menu) Move(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	for range n {
		m.Selected = ((m.Selected+delta)%n + n) % n
		if m.Items[m.Selected].Active {
			return
		}
	}
}

// Current returns the selected item, false for an empty or fully inactive menu
func (m *Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) || !m.Items[m.Selected].Active {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// publish copies the menu into the render-facing resource
func (m *Menu) publish(r *engine.MenuResource) {
	r.Visible = true
	r.Title = m.Title
	r.Selected = m.Selected
	r.Dim = m.Dim
	r.Items = r.Items[:0]
	for _, it := range m.Items {
		r.Items = append(r.Items, engine.MenuEntry{Text: it.Text, Active: it.Active})
	}
}

func mainMenu(title string, coop bool) *Menu {
	return &Menu{
		Title: title,
		Items: []MenuItem{
			{Text: "Start", Action: MenuStart, Active: true},
			{Text: "Co-op", Action: MenuStartCoop, Active: coop},
			{Text: "Quit", Action: MenuQuit, Active: true},
		},
	}
}

func pauseMenu() *Menu {
	return &Menu{
		Title: "Paused",
		Dim:   true,
		Items: []MenuItem{
			{Text: "Resume", Action: MenuResume, Active: true},
			{Text: "Main Menu", Action: MenuMainMenu, Active: true},
		},
	}
}

func gameOverMenu() *Menu {
	return &Menu{
		Title: "Game Over",
		Dim:   true,
		Items: []MenuItem{
			{Text: "Retry", Action: MenuRetry, Active: true},
			{Text: "Main Menu", Action: MenuMainMenu, Active: true},
		},
	}
}
