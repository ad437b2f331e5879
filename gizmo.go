package gizmos

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type GizmoType int

const (
	GizmoLine GizmoType = iota
	GizmoCube
	GizmoSphere
	GizmoSquare // Wireframe rectangle
	GizmoCircle // Wireframe polygon
	GizmoCustom
)

func (t GizmoType) String() string {
	switch t {
	case GizmoLine:
		return "line"
	case GizmoCube:
		return "cube"
	case GizmoSphere:
		return "sphere"
	case GizmoSquare:
		return "square"
	case GizmoCircle:
		return "circle"
	default:
		return "custom"
	}
}

// Shape is anything the registry can retain and replay.
// Custom shapes embed GizmoAttributes and implement Draw.
type Shape interface {
	Type() GizmoType
	Attributes() *GizmoAttributes
	BeforeDraw(r Renderer)
	Draw(r Renderer)
}

// GizmoAttributes is the state shared by every gizmo.
// Color and Duration may be changed through the handle returned by the
// registry up until the next render pass.
type GizmoAttributes struct {
	Transform mgl32.Mat4
	Position  mgl32.Vec3
	Color     Color
	Duration  time.Duration

	spawnTime time.Duration
	stamped   bool
}

func newAttributes(position mgl32.Vec3, color Color) GizmoAttributes {
	return GizmoAttributes{
		Transform: mgl32.Ident4(),
		Position:  position,
		Color:     color,
	}
}

func (a *GizmoAttributes) Attributes() *GizmoAttributes { return a }

// Type reports GizmoCustom; built-in shapes override it.
func (a *GizmoAttributes) Type() GizmoType { return GizmoCustom }

// SpawnTime is the clock reading at which the gizmo entered a registry.
func (a *GizmoAttributes) SpawnTime() time.Duration { return a.spawnTime }

// Expired reports whether the gizmo's lifetime has elapsed at now.
func (a *GizmoAttributes) Expired(now time.Duration) bool {
	return now >= a.spawnTime+a.Duration
}

// BeforeDraw pushes color and transform onto the renderer.
func (a *GizmoAttributes) BeforeDraw(r Renderer) {
	r.SetColor(a.Color.Resolve())
	r.SetTransform(a.transform())
}

// stamp records the spawn time exactly once.
func (a *GizmoAttributes) stamp(now time.Duration) {
	if a.stamped {
		return
	}
	a.spawnTime = now
	a.stamped = true
}

// A zero matrix means the attributes were built without a constructor.
func (a *GizmoAttributes) transform() mgl32.Mat4 {
	if a.Transform == (mgl32.Mat4{}) {
		return mgl32.Ident4()
	}
	return a.Transform
}
