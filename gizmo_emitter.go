package gizmos

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// GizmoComponent is a persistent gizmo declaration. The emitter system turns
// every enabled component into a one-frame gizmo each Update, which is how a
// host keeps a shape on screen for as long as the thing it describes exists.
type GizmoComponent struct {
	Type  GizmoType
	Color Color

	// For Cube, Sphere, Square, Circle: Position is center.
	// For Line: Position is Start.
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3 // Cube size; X/Y are the Square size.

	LineEnd mgl32.Vec3 // For GizmoLine; Rotation pivots it about Position.
	Radius  float32    // For Sphere/Circle.
	Sides   int        // For Circle; 0 means DefaultCircleSides.

	Disabled bool
}

func NewGizmoLine(start, end mgl32.Vec3, color Color) GizmoComponent {
	return GizmoComponent{
		Type:     GizmoLine,
		Position: start,
		LineEnd:  end,
		Color:    color,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoCube(center mgl32.Vec3, size mgl32.Vec3, color Color) GizmoComponent {
	return GizmoComponent{
		Type:     GizmoCube,
		Position: center,
		Scale:    size,
		Color:    color,
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoSphere(center mgl32.Vec3, radius float32, color Color) GizmoComponent {
	return GizmoComponent{
		Type:     GizmoSphere,
		Position: center,
		Radius:   radius,
		Scale:    mgl32.Vec3{1, 1, 1},
		Color:    color,
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoCircle(center mgl32.Vec3, radius float32, sides int, color Color) GizmoComponent {
	return GizmoComponent{
		Type:     GizmoCircle,
		Position: center,
		Radius:   radius,
		Sides:    sides,
		Scale:    mgl32.Vec3{1, 1, 1},
		Color:    color,
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoSquare(center mgl32.Vec3, size mgl32.Vec2, color Color) GizmoComponent {
	return GizmoComponent{
		Type:     GizmoSquare,
		Position: center,
		Scale:    mgl32.Vec3{size.X(), size.Y(), 1},
		Color:    color,
		Rotation: mgl32.QuatIdent(),
	}
}

// Shape builds the gizmo this component describes. Circles and squares take
// their plane from Rotation; the other shapes are rotated about Position
// through the gizmo transform.
func (c GizmoComponent) Shape() Shape {
	rot := c.Rotation
	if rot == (mgl32.Quat{}) {
		rot = mgl32.QuatIdent()
	}
	normal := rot.Rotate(Forward)

	switch c.Type {
	case GizmoLine:
		l := NewLine(c.Position, c.LineEnd, c.Color)
		l.Transform = rotateAbout(c.Position, rot)
		return l
	case GizmoCube:
		cube := NewCube(c.Position, c.Scale, c.Color)
		cube.Transform = rotateAbout(c.Position, rot)
		return cube
	case GizmoSphere:
		return NewSphere(c.Position, c.Radius, c.Color)
	case GizmoSquare:
		return NewSquare(c.Position, normal, c.Scale.Vec2(), 0, c.Color)
	case GizmoCircle:
		sides := c.Sides
		if sides == 0 {
			sides = DefaultCircleSides
		}
		return NewCircle(c.Position, normal, c.Radius, sides, c.Color)
	default:
		return nil
	}
}

// rotateAbout is T(p) * R * T(-p).
func rotateAbout(p mgl32.Vec3, rot mgl32.Quat) mgl32.Mat4 {
	t := mgl32.Translate3D(p.X(), p.Y(), p.Z())
	back := mgl32.Translate3D(-p.X(), -p.Y(), -p.Z())
	return t.Mul4(rot.Mat4()).Mul4(back)
}

// Emitters is the resource holding persistent gizmo declarations.
type Emitters struct {
	items []*GizmoComponent
}

// Add stores a copy of c and returns a handle to it.
func (e *Emitters) Add(c GizmoComponent) *GizmoComponent {
	stored := &c
	e.items = append(e.items, stored)
	return stored
}

func (e *Emitters) Remove(handle *GizmoComponent) bool {
	for i, item := range e.items {
		if item == handle {
			e.items = slices.Delete(e.items, i, i+1)
			return true
		}
	}
	return false
}

func (e *Emitters) Len() int { return len(e.items) }

func (e *Emitters) Each(fn func(c *GizmoComponent)) {
	for _, c := range e.items {
		fn(c)
	}
}

type EmitterModule struct{}

func (mod EmitterModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Emitters{})
	app.UseSystem(
		System(gizmoEmitterSystem).
			InStage(Update),
	)
}

func gizmoEmitterSystem(emitters *Emitters, gizmos *Registry) {
	for _, c := range emitters.items {
		if c.Disabled {
			continue
		}
		if shape := c.Shape(); shape != nil {
			gizmos.Enqueue(shape)
		}
	}
}
