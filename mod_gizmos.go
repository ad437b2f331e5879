package gizmos

import (
	"reflect"
)

// RendererResource holds the backend the gizmo render system draws into.
// A nil Renderer skips drawing; pending gizmos are kept until one is set.
type RendererResource struct {
	Renderer Renderer
}

// GizmosModule wires the session registry and the Render-stage system that
// replays it. An active registry created earlier through App.Gizmos is kept
// with its pending gizmos; use App.InstallGizmos to replace one.
type GizmosModule struct {
	Renderer Renderer
}

func (m GizmosModule) Install(app *App, cmd *Commands) {
	if reg, ok := app.resources[typeOfRegistry].(*Registry); !ok || reg.State() != RegistryActive {
		app.InstallGizmos(NewRegistry(app.timeResource(), app.Logger()))
	}
	if m.Renderer != nil {
		app.UseRenderer(m.Renderer)
	}
	ensureGizmoRenderSystem(app)
}

// Gizmos returns the session's active registry, creating it on first use.
func (app *App) Gizmos() *Registry {
	if reg, ok := app.resources[typeOfRegistry].(*Registry); ok {
		return reg
	}
	reg := NewRegistry(app.timeResource(), app.Logger())
	app.addResources(reg)
	app.Logger().Debugf("gizmos: created registry %s", reg.ID())
	return reg
}

// InstallGizmos makes reg the session's authoritative registry. An existing
// registry is retired: its pending gizmos are discarded and a warning is logged.
func (app *App) InstallGizmos(reg *Registry) *Registry {
	if reg == nil {
		panic("InstallGizmos: registry is nil")
	}
	reg.activate()
	reg.state = RegistryActive

	prev, _ := app.replaceResource(reg).(*Registry)
	if prev != nil && prev != reg {
		app.Logger().Warnf("gizmos: registry %s replaces %s, discarding %d pending gizmos",
			reg.ID(), prev.ID(), prev.Len())
		prev.Discard()
	}
	return reg
}

// UseRenderer points the gizmo render system at r.
func (app *App) UseRenderer(r Renderer) *App {
	app.rendererResource().Renderer = r
	return app
}

func (app *App) rendererResource() *RendererResource {
	t := reflect.TypeOf((*RendererResource)(nil)).Elem()
	if res, ok := app.resources[t].(*RendererResource); ok {
		return res
	}
	res := &RendererResource{}
	app.addResources(res)
	return res
}

// gizmoRenderTag marks that the render system has been scheduled.
type gizmoRenderTag struct{}

func ensureGizmoRenderSystem(app *App) {
	t := reflect.TypeOf((*gizmoRenderTag)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		return
	}
	app.rendererResource()
	app.addResources(&gizmoRenderTag{})
	app.UseSystem(
		System(gizmoRenderSystem).
			InStage(Render),
	)
}

func gizmoRenderSystem(gizmos *Registry, renderer *RendererResource) {
	if renderer.Renderer == nil {
		return
	}
	gizmos.RenderAndExpire(renderer.Renderer)
}
