package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/game"
	"github.com/lixenwraith/hectic/input"
)

// Frontend drives a game on a tcell screen
type Frontend struct {
	screen tcell.Screen
	game   *game.Game
	keys   *Keyboard
	grid   *Grid
	mode   ColorMode
}

// OpenScreen initializes the controlling terminal and registers its teardown as the crash restore hook
func OpenScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	s.HideCursor()
	core.SetCrashRestore(s.Fini)
	return s, nil
}

func New(screen tcell.Screen, g *game.Game, kt *input.KeyTable, mode ColorMode) *Frontend {
	cols, rows := screen.Size()
	return &Frontend{
		screen: screen,
		game:   g,
		keys:   NewKeyboard(kt),
		grid:   NewGrid(NewViewport(cols, rows, constant.WorldWidth, constant.WorldHeight)),
		mode:   mode,
	}
}

// HandleEvent applies one terminal event. Returns false when the user forces quit
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		f.keys.Key(KeyName(ev), f.game.Controls())
	case *tcell.EventResize:
		cols, rows := f.screen.Size()
		f.grid.Resize(NewViewport(cols, rows, constant.WorldWidth, constant.WorldHeight))
		f.screen.Clear()
	}
	return true
}

// Tick releases quiet keys and steps the simulation
func (f *Frontend) Tick() error {
	f.keys.Tick(f.game.Controls())
	return f.game.Step()
}

// Draw renders the current frame to the screen
func (f *Frontend) Draw() {
	buf := f.game.Render()
	f.grid.Clear()
	f.grid.Draw(buf.Commands())
	buf.Reset()

	view := f.grid.Viewport()
	for row := 0; row < view.Rows; row++ {
		for col := 0; col < view.Cols; col++ {
			c := f.grid.At(col, row)
			style := tcell.StyleDefault.
				Foreground(Color(c.Fg, f.mode)).
				Background(Color(c.Bg, f.mode))
			f.screen.SetContent(col, row, c.Rune, nil, style)
		}
	}
	f.screen.Show()
}

// Run polls input on its own goroutine and steps the game at the fixed tick rate
// until the player quits
func (f *Frontend) Run() error {
	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { pollEvents(f.screen, events, done) })

	ticker := time.NewTicker(time.Second / constant.TicksPerSecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			err := f.Tick()
			if errors.Is(err, game.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			f.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		// Nil after Fini
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
