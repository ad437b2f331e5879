package raylib

import (
	"github.com/gekko3d/gizmos"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the resource describing the raylib frame the gizmos draw into.
type Window struct {
	Camera     rl.Camera3D
	Background rl.Color
	ShowFPS    bool
}

// Module opens a raylib window, wraps each frame in BeginDrawing/BeginMode3D
// and makes a Renderer the app's gizmo backend. Install it after
// gizmos.GizmosModule. Call rl.CloseWindow once App.Run returns.
type Module struct {
	Width  int32
	Height int32
	Title  string
	FPS    int32
	Camera rl.Camera3D
}

func DefaultCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(6, 5, 8),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (mod Module) Install(app *gizmos.App, cmd *gizmos.Commands) {
	width, height := mod.Width, mod.Height
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	title := mod.Title
	if title == "" {
		title = "Gizmos"
	}
	fps := mod.FPS
	if fps <= 0 {
		fps = 60
	}
	camera := mod.Camera
	if camera.Fovy == 0 {
		camera = DefaultCamera()
	}

	rl.InitWindow(width, height, title)
	rl.SetTargetFPS(fps)
	cmd.Logger().Infof("Created raylib window (%dx%d) '%s'", width, height, title)

	cmd.AddResources(&Window{
		Camera:     camera,
		Background: rl.RayWhite,
		ShowFPS:    true,
	})
	app.UseRenderer(New())

	app.UseSystem(gizmos.System(beginFrameSystem).InStage(gizmos.PreRender))
	app.UseSystem(gizmos.System(endFrameSystem).InStage(gizmos.PostRender))
}

func beginFrameSystem(win *Window) {
	rl.BeginDrawing()
	rl.ClearBackground(win.Background)
	rl.BeginMode3D(win.Camera)
	rl.DrawGrid(10, 1)
}

func endFrameSystem(win *Window, cmd *gizmos.Commands) {
	rl.EndMode3D()
	if win.ShowFPS {
		rl.DrawFPS(10, 10)
	}
	rl.EndDrawing()

	if rl.WindowShouldClose() {
		cmd.Quit()
	}
}
