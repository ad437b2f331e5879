// Command gizmo-demo draws the demo scene in a raylib window.
package main

import (
	"flag"
	"log"

	"github.com/gekko3d/gizmos"
	"github.com/gekko3d/gizmos/internal/demo"
	"github.com/gekko3d/gizmos/render/raylib"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	watch := flag.Bool("watch", false, "reload -config when the file changes")
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

	app := gizmos.NewAppBuilder().
		UseModule(cfg.Modules()...).
		UseModule(
			raylib.Module{Width: int32(cfg.Width), Height: int32(cfg.Height), Title: "Gizmos"},
			reload,
			demo.Module{Config: cfg},
		).
		Build()
	defer rl.CloseWindow()
	if live, ok := gizmos.Resource[gizmos.LiveConfig](app); ok {
		defer live.Close()
	}

	app.Run()
}
