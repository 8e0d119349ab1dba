package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"snake-arena/audio"
	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/game/types"
	"snake-arena/ui"
	"snake-arena/ui/terminal"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	windowWidth  = types.ArenaWidth * types.CellSize
	windowHeight = types.ArenaHeight * types.CellSize
	windowTitle  = "Snake Arena"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "snake-arena: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[APP] [INFO] frontend=%s tick=%d fps=%d seed=%d", cfg.Frontend, cfg.TickInterval, cfg.FPS, seed)

	g := game.NewGame(game.Config{
		Arena:        types.DefaultArena(),
		TickInterval: cfg.TickInterval,
		Source:       rand.NewSource(seed),
	})

	sound := audio.NewSoundManager()
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			log.Printf("[APP] [WARN] sound disabled: %v", err)
		}
	}
	defer sound.Cleanup()

	if cfg.Frontend == config.FrontendTerminal {
		return runTerminal(g, sound, cfg.FPS)
	}
	runWindow(g, sound, cfg.FPS)
	return nil
}

// react plays effects for ticks that changed something
func react(sound *audio.SoundManager, out game.Outcome) {
	if out.Ticked {
		sound.React(out.Verdict, out.State)
	}
}

func runWindow(g *game.Game, sound *audio.SoundManager, fps int) {
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(fps))

	renderer := ui.NewRenderer()
	input := ui.KeyboardInput{}

	for !rl.WindowShouldClose() {
		if input.QuitPressed() {
			break
		}
		react(sound, g.Frame(input))
		renderer.Draw(g.Snapshot())
	}
	log.Printf("[APP] [INFO] window closed after %d sessions", g.Sessions())
}

func runTerminal(g *game.Game, sound *audio.SoundManager, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}
	defer screen.Fini()

	// One status row above the arena
	if w, h := screen.Size(); w < types.ArenaWidth || h < types.ArenaHeight+1 {
		return errors.Errorf("terminal is %dx%d, need at least %dx%d", w, h, types.ArenaWidth, types.ArenaHeight+1)
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	presenter := terminal.NewPresenter(screen)
	input := terminal.NewInput()
	frameTicker := time.NewTicker(time.Second / time.Duration(fps))
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			input.HandleEvent(ev)
		case <-frameTicker.C:
			if input.Quit() {
				log.Printf("[APP] [INFO] quit after %d sessions", g.Sessions())
				return nil
			}
			react(sound, g.Frame(input))
			input.EndFrame()
			presenter.Draw(g.Snapshot())
		}
	}
}
