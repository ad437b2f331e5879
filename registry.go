package gizmos

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type RegistryState int

const (
	RegistryUninitialized RegistryState = iota
	RegistryActive
	RegistryReplaced
)

func (s RegistryState) String() string {
	switch s {
	case RegistryActive:
		return "active"
	case RegistryReplaced:
		return "replaced"
	default:
		return "uninitialized"
	}
}

// Registry retains gizmo requests and replays them once per frame.
// It is not safe for concurrent use: enqueue from update systems and call
// RenderAndExpire from the render stage of the same frame loop.
// The zero Registry is usable; it reads time zero and logs nothing.
type Registry struct {
	id      uuid.UUID
	state   RegistryState
	clock   Clock
	logger  Logger
	pending []Shape
}

// NewRegistry returns an active registry. A nil clock reads as time zero
// forever, a nil logger discards output.
func NewRegistry(clock Clock, logger Logger) *Registry {
	r := &Registry{clock: clock, logger: logger}
	r.activate()
	return r
}

// activate moves a zero Registry to Active on first use.
func (r *Registry) activate() {
	if r.clock == nil {
		r.clock = &ManualClock{}
	}
	if r.logger == nil {
		r.logger = NewNopLogger()
	}
	if r.id == uuid.Nil {
		r.id = uuid.New()
	}
	if r.state == RegistryUninitialized {
		r.state = RegistryActive
	}
}

func (r *Registry) ID() uuid.UUID        { return r.id }
func (r *Registry) State() RegistryState { return r.state }
func (r *Registry) Len() int             { return len(r.pending) }

// Pending returns the retained gizmos in draw order.
func (r *Registry) Pending() []Shape {
	return slices.Clone(r.pending)
}

// Clear drops every pending gizmo without drawing it.
func (r *Registry) Clear() {
	clear(r.pending)
	r.pending = r.pending[:0]
}

// Discard drops the pending gizmos and retires the registry. Later draws on a
// retired registry are accepted and ignored.
func (r *Registry) Discard() {
	r.Clear()
	r.pending = nil
	r.state = RegistryReplaced
}

func (r *Registry) DrawSphere(center mgl32.Vec3, radius float32, color Color) *Sphere {
	return DrawCustomGizmo(r, NewSphere(center, radius, color))
}

func (r *Registry) DrawCube(center, size mgl32.Vec3, color Color) *Cube {
	return DrawCustomGizmo(r, NewCube(center, size, color))
}

// DrawCircle panics when sides is less than 3.
func (r *Registry) DrawCircle(center, normal mgl32.Vec3, radius float32, sides int, color Color) *Circle {
	return DrawCustomGizmo(r, NewCircle(center, normal, radius, sides, color))
}

func (r *Registry) DrawSquare(center, normal mgl32.Vec3, size mgl32.Vec2, degrees float32, color Color) *Square {
	return DrawCustomGizmo(r, NewSquare(center, normal, size, degrees, color))
}

func (r *Registry) DrawLine(start, end mgl32.Vec3, color Color) *Line {
	return DrawCustomGizmo(r, NewLine(start, end, color))
}

func (r *Registry) DrawRay(origin, ray mgl32.Vec3, color Color) *Line {
	return DrawCustomGizmo(r, NewRay(origin, ray, color))
}

// DrawCustomGizmo enqueues any Shape and hands the same value back, so the
// caller keeps a typed handle.
func DrawCustomGizmo[T Shape](r *Registry, g T) T {
	r.Enqueue(g)
	return g
}

// Enqueue stamps the spawn time, resolves the default duration and appends g.
// A zero duration issued during a fixed step lasts one fixed step, so the
// gizmo survives until a render pass sees it.
func (r *Registry) Enqueue(g Shape) Shape {
	r.activate()
	attrs := g.Attributes()
	attrs.stamp(r.clock.Now())
	if attrs.Duration == 0 {
		if step, inFixed := r.clock.FixedStep(); inFixed {
			attrs.Duration = step
		}
	}

	if r.state == RegistryReplaced {
		r.logger.Debugf("gizmos: registry %s was replaced, dropping %s", r.id, g.Type())
		return g
	}
	r.pending = append(r.pending, g)
	return g
}

// RenderAndExpire draws every pending gizmo in insertion order and then drops
// the ones whose lifetime has elapsed. The renderer's color and transform are
// put back the way they were found.
func (r *Registry) RenderAndExpire(renderer Renderer) {
	r.activate()
	if len(r.pending) == 0 {
		return
	}

	saved := captureState(renderer)
	now := r.clock.Now()

	// Gizmos enqueued while drawing land in a fresh slice and wait for the next pass.
	pending := r.pending
	r.pending = nil

	live := pending[:0]
	for _, g := range pending {
		g.BeforeDraw(renderer)
		g.Draw(renderer)

		if !g.Attributes().Expired(now) {
			live = append(live, g)
		}
	}
	clear(pending[len(live):])

	if r.state == RegistryReplaced {
		r.pending = nil
	} else {
		r.pending = append(live, r.pending...)
	}

	saved.restore(renderer)
}
