// Command gizmo-snapshot runs the demo scene headless for a number of frames
// and writes the last frame's gizmo overlay to a PNG.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gekko3d/gizmos"
	"github.com/gekko3d/gizmos/internal/demo"
	"github.com/gekko3d/gizmos/render/raster"
	"github.com/gekko3d/gizmos/render/wire"
	"github.com/go-gl/mathgl/mgl32"
)

const frameDt = time.Second / 60

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	frames := flag.Int("frames", 0, "frames to simulate (overrides max_frames)")
	out := flag.String("out", "", "output PNG (overrides output)")
	flag.Parse()

	cfg := gizmos.DefaultConfig()
	if *configPath != "" {
		loaded, err := gizmos.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *frames > 0 {
		cfg.MaxFrames = *frames
	}
	if *out != "" {
		cfg.Output = *out
	}

	app := gizmos.NewAppBuilder().
		UseModule(cfg.Modules()...).
		UseModule(demo.Module{Config: cfg}).
		Build()

	canvas := raster.NewCanvas(cfg.Width, cfg.Height)
	defer canvas.Close()
	canvas.Background = gizmos.White

	vp := wire.NewViewport(mgl32.Vec3{6, 5, 8}, mgl32.Vec3{}, 45, cfg.Width, cfg.Height)
	app.UseRenderer(raster.NewRenderer(canvas, vp))
	app.UseSystem(gizmos.System(canvas.Clear).InStage(gizmos.PreRender))

	for i := 0; i < cfg.MaxFrames; i++ {
		app.Step(frameDt)
	}
	if err := canvas.Err(); err != nil {
		app.Logger().Warnf("Stroke errors while rendering: %v", err)
	}

	if err := canvas.SavePNG(cfg.Output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	app.Logger().Infof("Wrote %s after %d frames, %d gizmos pending", cfg.Output, cfg.MaxFrames, app.Gizmos().Len())
}
