package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/lixenwraith/hectic/audio"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/game"
	"github.com/lixenwraith/hectic/input"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/terminal"
	"github.com/lixenwraith/hectic/window"
)

var (
	termFlag        = flag.Bool("term", false, "Play in the terminal instead of a window")
	coopFlag        = flag.Bool("coop", false, "Enable two-player co-op")
	stageFlag       = flag.Int("stage", 0, "Start directly at this stage, skipping the menu")
	seedFlag        = flag.Uint64("seed", 1, "Random seed")
	debugFlag       = flag.Bool("debug", false, "Write logs/hectic.log and show hitboxes")
	muteFlag        = flag.Bool("mute", false, "Disable sound")
	keymapFlag      = flag.String("keymap", "", "Read key bindings from this TOML file instead of the user store")
	saveKeymapFlag  = flag.Bool("save-keymap", false, "Write the active key bindings to the user store and exit")
	profileFlag     = flag.String("profile", "", "Profile mode: cpu, mem")
	colorModeFlag   = flag.String("color", "auto", "Terminal color mode: auto, truecolor, 256")
	windowScaleFlag = flag.Int("scale", 1, "Window scale factor")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(exitCode())
}

// exitCode runs the game and maps its outcome to a process status. Deferred
// cleanup here finishes before main exits
func exitCode() int {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	session := uuid.New().String()
	core.SetCrashSession(session)
	log.Printf("[main] session %s", session)

	if err := run(); err != nil {
		log.Printf("[main] %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", parameter.AppName, err)
		return 1
	}
	return 0
}

func run() error {
	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", *profileFlag)
	}

	kt, err := loadKeymap()
	if err != nil {
		return err
	}
	if *saveKeymapFlag {
		return saveKeymap(kt)
	}

	if *coopFlag && !kt.HasPlayer(1) {
		return fmt.Errorf("co-op needs movement keys in the [player2] keymap section")
	}
	cfg := game.Config{
		Seed:  *seedFlag,
		Stage: *stageFlag,
		Coop:  *coopFlag,
		Debug: *debugFlag,
	}

	if !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("[audio] %v, continuing without sound", err)
		} else {
			cfg.Audio = sm
			defer sm.Cleanup()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	if !*termFlag {
		return window.Run(g, kt, *windowScaleFlag)
	}

	screen, err := terminal.OpenScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()
	return terminal.New(screen, g, kt, colorMode()).Run()
}

// loadKeymap prefers an explicit file, then the user store, then defaults
func loadKeymap() (*input.KeyTable, error) {
	if *keymapFlag != "" {
		return input.LoadKeyFile(*keymapFlag)
	}
	store, err := input.OpenKeyStore(parameter.AppName)
	if err != nil {
		log.Printf("[input] %v, using default keymap", err)
		return input.DefaultKeyTable(), nil
	}
	return store.Load()
}

func saveKeymap(kt *input.KeyTable) error {
	store, err := input.OpenKeyStore(parameter.AppName)
	if err != nil {
		return err
	}
	if err := store.Save(kt); err != nil {
		return err
	}
	fmt.Println("key bindings saved")
	return nil
}

func colorMode() terminal.ColorMode {
	switch *colorModeFlag {
	case "256":
		return terminal.ColorMode256
	case "truecolor", "true", "24bit":
		return terminal.ColorModeTrueColor
	}
	return terminal.DetectColorMode()
}
