// Package demo is the scene shared by the bundled programs: a persistent
// cube, an orbiting ray with a circle and square, timed sphere bursts and a
// fixed-step probe line.
package demo

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/gekko3d/gizmos"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	orbitRadius   = 3
	burstEvery    = time.Second
	burstLifetime = 750 * time.Millisecond
)

// Scene is the demo's per-session state.
type Scene struct {
	Sides  int
	Color  gizmos.Color
	Bursts int

	angle      float32
	sinceBurst time.Duration
	generation int
}

// Module installs the scene. It needs gizmos.EmitterModule installed first,
// and follows config reloads when gizmos.ConfigReloadModule precedes it.
type Module struct {
	Config gizmos.Config
}

func (m Module) Install(app *gizmos.App, cmd *gizmos.Commands) {
	scene := &Scene{Sides: gizmos.DefaultCircleSides}
	scene.Apply(m.Config)
	cmd.AddResources(scene)

	emitters, hasEmitters := gizmos.Resource[gizmos.Emitters](app)
	if hasEmitters {
		emitters.Add(gizmos.NewGizmoCube(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{1, 1, 1}, scene.Color))
	} else {
		cmd.Logger().Warnf("demo: EmitterModule not installed, skipping persistent cube")
	}

	app.UseSystem(gizmos.System(orbitSystem))
	app.UseSystem(gizmos.System(fixedProbeSystem).InStage(gizmos.Fixed))
	if _, ok := gizmos.Resource[gizmos.LiveConfig](app); ok && hasEmitters {
		app.UseSystem(gizmos.System(liveConfigSystem).InStage(gizmos.PreUpdate))
	}
}

// Apply takes the scene's tunables from cfg.
func (s *Scene) Apply(cfg gizmos.Config) {
	if cfg.CircleSides > 2 {
		s.Sides = cfg.CircleSides
	}
	s.Color = cfg.Color()
}

func liveConfigSystem(scene *Scene, live *gizmos.LiveConfig, emitters *gizmos.Emitters) {
	if live.Generation == scene.generation {
		return
	}
	scene.generation = live.Generation
	scene.Apply(live.Config)
	emitters.Each(func(c *gizmos.GizmoComponent) {
		c.Color = scene.Color
	})
}

// OrbitPoint is where the ray currently points.
func (s *Scene) OrbitPoint() mgl32.Vec3 {
	return mgl32.Vec3{orbitRadius * math32.Cos(s.angle), 0, orbitRadius * math32.Sin(s.angle)}
}

func orbitSystem(scene *Scene, t *gizmos.Time, reg *gizmos.Registry) {
	scene.angle += float32(t.Dt.Seconds())

	tip := scene.OrbitPoint()
	reg.DrawCircle(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, orbitRadius, scene.Sides, gizmos.Yellow)
	reg.DrawRay(mgl32.Vec3{}, tip, gizmos.Red)
	reg.DrawSquare(tip, tip, mgl32.Vec2{0.8, 0.8}, mgl32.RadToDeg(scene.angle), gizmos.Blue)

	scene.sinceBurst += t.Dt
	if scene.sinceBurst >= burstEvery {
		scene.sinceBurst -= burstEvery
		scene.Bursts++
		s := reg.DrawSphere(tip, 0.4, gizmos.Color{})
		s.Duration = burstLifetime
	}
}

func fixedProbeSystem(reg *gizmos.Registry) {
	reg.DrawLine(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 2, 0}, gizmos.Green)
}
