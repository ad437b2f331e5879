package demo

import (
	"bytes"
	"testing"
	"time"

	"github.com/gekko3d/gizmos"
	"github.com/gekko3d/gizmos/render/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoApp(t *testing.T, rec *recorder.Recorder) *gizmos.App {
	t.Helper()
	cfg := gizmos.DefaultConfig()
	cfg.CircleSides = 12

	app := gizmos.NewAppBuilder().
		UseModule(cfg.Modules()...).
		UseModule(Module{Config: cfg}).
		Build()
	app.UseRenderer(rec)
	return app
}

func TestScene_OneBurstPerSecond(t *testing.T) {
	rec := recorder.New()
	app := newDemoApp(t, rec)

	for i := 0; i < 70; i++ {
		app.Step(time.Second / 60)
	}

	scene, ok := gizmos.Resource[Scene](app)
	require.True(t, ok)
	assert.Equal(t, 1, scene.Bursts)
	assert.Equal(t, 12, scene.Sides)

	// The burst fired on frame 61 and is drawn every frame since.
	assert.Equal(t, 10, rec.Count(recorder.OpSphere))
	assert.Equal(t, 1, countSpheres(app.Gizmos()))
}

func countSpheres(reg *gizmos.Registry) int {
	n := 0
	for _, g := range reg.Pending() {
		if g.Type() == gizmos.GizmoSphere {
			n++
		}
	}
	return n
}

func TestScene_FrameContents(t *testing.T) {
	rec := recorder.New()
	app := newDemoApp(t, rec)

	app.Step(20 * time.Millisecond)

	assert.Equal(t, 1, rec.Count(recorder.OpCube), "persistent cube")
	// Circle, ray, square and the fixed-step probe.
	assert.Equal(t, 12+1+4+1, rec.Count(recorder.OpLine))
	assert.Equal(t, 0, rec.Count(recorder.OpSphere))

	// Only the probe, drawn in the fixed stage, outlives the frame.
	require.Equal(t, 1, app.Gizmos().Len())
	assert.Equal(t, gizmos.GizmoLine, app.Gizmos().Pending()[0].Type())
}

func TestScene_OrbitPointAdvances(t *testing.T) {
	rec := recorder.New()
	app := newDemoApp(t, rec)
	scene, _ := gizmos.Resource[Scene](app)

	before := scene.OrbitPoint()
	assert.InDelta(t, orbitRadius, before.Len(), 1e-5)

	app.Step(500 * time.Millisecond)
	after := scene.OrbitPoint()
	assert.InDelta(t, orbitRadius, after.Len(), 1e-4)
	assert.NotEqual(t, before, after)
}

func TestModule_WarnsWithoutEmitters(t *testing.T) {
	var out, errOut bytes.Buffer
	app := gizmos.NewApp().UseModules(
		gizmos.LoggingModule{Out: &out, Err: &errOut},
		Module{Config: gizmos.DefaultConfig()},
	)

	assert.Contains(t, errOut.String(), "EmitterModule not installed")
	_, ok := gizmos.Resource[Scene](app)
	assert.True(t, ok)
}

func TestScene_FollowsLiveConfig(t *testing.T) {
	rec := recorder.New()
	cfg := gizmos.DefaultConfig()
	app := gizmos.NewAppBuilder().
		UseModule(cfg.Modules()...).
		UseModule(gizmos.ConfigReloadModule{Initial: cfg}, Module{Config: cfg}).
		Build()
	app.UseRenderer(rec)

	live, ok := gizmos.Resource[gizmos.LiveConfig](app)
	require.True(t, ok)
	scene, _ := gizmos.Resource[Scene](app)
	assert.Equal(t, gizmos.DefaultCircleSides, scene.Sides)

	live.Config.CircleSides = 5
	live.Config.DefaultColor = "lime"
	live.Generation++

	rec.Reset()
	app.Step(time.Millisecond)
	assert.Equal(t, 5, scene.Sides)
	assert.Equal(t, gizmos.Green, scene.Color)

	cubes := 0
	for _, d := range rec.Draws() {
		if d.Op == recorder.OpCube {
			cubes++
			assert.Equal(t, gizmos.Green, d.Color, "emitter cube recolored")
		}
	}
	assert.Equal(t, 1, cubes)
}
