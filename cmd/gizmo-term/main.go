// Command gizmo-term draws the demo scene into the terminal. Press q or Esc to quit.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gekko3d/gizmos"
	"github.com/gekko3d/gizmos/internal/demo"
	"github.com/gekko3d/gizmos/render/term"
	"github.com/gekko3d/gizmos/render/wire"
	"github.com/go-gl/mathgl/mgl32"
)

const frameBudget = time.Second / 30

var (
	eye    = mgl32.Vec3{6, 5, 8}
	target = mgl32.Vec3{}
)

// terminalState is the resource connecting the tcell screen to the frame loop.
type terminalState struct {
	screen    tcell.Screen
	overlay   *term.Overlay
	projected *wire.Projected
	events    chan tcell.Event
	lastFrame time.Time
}

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	watch := flag.Bool("watch", false, "reload -config when the file changes")
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	cfg := gizmos.DefaultConfig()
	if *configPath != "" {
		loaded, err := gizmos.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	reload := gizmos.ConfigReloadModule{Initial: cfg}
	if *watch {
		reload.Path = *configPath
	}

	// tcell owns the terminal, so log lines go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	state := &terminalState{
		screen:    screen,
		overlay:   term.NewOverlay(screen),
		projected: &wire.Projected{Viewport: wire.NewViewport(eye, target, 45, cols, rows)},
		events:    make(chan tcell.Event, 16),
		lastFrame: time.Now(),
	}
	state.projected.Screen = state.overlay
	go pollEvents(screen, state.events)

	app := gizmos.NewApp().UseModules(
		gizmos.LoggingModule{Prefix: cfg.LogPrefix, Debug: cfg.Debug, Out: logOut, Err: logOut},
		gizmos.TimeModule{FixedStep: time.Duration(cfg.FixedStep)},
		gizmos.GizmosModule{Renderer: wire.New(state.projected)},
		gizmos.EmitterModule{},
		reload,
		demo.Module{Config: cfg},
	)
	app.Commands().AddResources(state)
	app.UseSystem(gizmos.System(inputSystem).InStage(gizmos.PreUpdate))
	app.UseSystem(gizmos.System(clearSystem).InStage(gizmos.PreRender))
	app.UseSystem(gizmos.System(presentSystem).InStage(gizmos.PostRender))

	defer closeLiveConfig(app)

	app.Run()
}

func closeLiveConfig(app *gizmos.App) {
	if live, ok := gizmos.Resource[gizmos.LiveConfig](app); ok {
		live.Close()
	}
}

func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		events <- ev
	}
}

func inputSystem(state *terminalState, cmd *gizmos.Commands) {
	for {
		select {
		case ev, ok := <-state.events:
			if !ok {
				cmd.Quit()
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					cmd.Quit()
				}
			case *tcell.EventResize:
				state.screen.Sync()
				cols, rows := ev.Size()
				state.projected.Viewport = wire.NewViewport(eye, target, 45, cols, rows)
				cmd.Logger().Debugf("Resized to %dx%d", cols, rows)
			}
		default:
			return
		}
	}
}

func clearSystem(state *terminalState) {
	state.overlay.Clear()
}

func presentSystem(state *terminalState) {
	state.overlay.Show()

	if wait := frameBudget - time.Since(state.lastFrame); wait > 0 {
		time.Sleep(wait)
	}
	state.lastFrame = time.Now()
}
