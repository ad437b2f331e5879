package gizmos

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultCircleSides is the segment count used when callers have no preference.
const DefaultCircleSides = 9

// Forward is the canonical axis that circle and square geometry is built around.
var Forward = mgl32.Vec3{0, 0, 1}

type Sphere struct {
	GizmoAttributes
	Radius float32
}

func NewSphere(center mgl32.Vec3, radius float32, color Color) *Sphere {
	return &Sphere{
		GizmoAttributes: newAttributes(center, color),
		Radius:          radius,
	}
}

func (s *Sphere) Type() GizmoType { return GizmoSphere }

func (s *Sphere) Draw(r Renderer) {
	r.DrawSphere(s.Position, s.Radius)
}

type Cube struct {
	GizmoAttributes
	Size mgl32.Vec3
}

func NewCube(center, size mgl32.Vec3, color Color) *Cube {
	return &Cube{
		GizmoAttributes: newAttributes(center, color),
		Size:            size,
	}
}

func (c *Cube) Type() GizmoType { return GizmoCube }

func (c *Cube) Draw(r Renderer) {
	r.DrawCube(c.Position, c.Size)
}

// Circle is a closed polygon of Sides segments lying in the plane whose normal is Normal.
type Circle struct {
	GizmoAttributes
	Normal mgl32.Vec3
	Radius float32
	Sides  int
}

// NewCircle panics when sides is less than 3.
func NewCircle(center, normal mgl32.Vec3, radius float32, sides int, color Color) *Circle {
	if sides <= 2 {
		panic(fmt.Sprintf("gizmos: circle needs more than 2 sides, got %d", sides))
	}
	return &Circle{
		GizmoAttributes: newAttributes(center, color),
		Normal:          normal,
		Radius:          radius,
		Sides:           sides,
	}
}

func (c *Circle) Type() GizmoType { return GizmoCircle }

func (c *Circle) Draw(r Renderer) {
	step := 2 * math32.Pi / float32(c.Sides)
	rot := alignToNormal(c.Normal)

	for i := 0; i < c.Sides; i++ {
		startIdx := i
		endIdx := (i + 1) % c.Sides

		legStart := rot.Rotate(mgl32.Vec3{
			c.Radius * math32.Cos(step*float32(startIdx)),
			c.Radius * math32.Sin(step*float32(startIdx)),
			0,
		})
		legEnd := rot.Rotate(mgl32.Vec3{
			c.Radius * math32.Cos(step*float32(endIdx)),
			c.Radius * math32.Sin(step*float32(endIdx)),
			0,
		})

		r.DrawLine(c.Position.Add(legStart), c.Position.Add(legEnd))
	}
}

// Square is a rectangle of Size in the plane whose normal is Normal,
// spun by Degrees around that normal.
type Square struct {
	GizmoAttributes
	Normal  mgl32.Vec3
	Size    mgl32.Vec2
	Degrees float32
}

func NewSquare(center, normal mgl32.Vec3, size mgl32.Vec2, degrees float32, color Color) *Square {
	return &Square{
		GizmoAttributes: newAttributes(center, color),
		Normal:          normal,
		Size:            size,
		Degrees:         degrees,
	}
}

func (s *Square) Type() GizmoType { return GizmoSquare }

// Corners returns the world-space corners in draw order:
// top-left, top-right, bottom-right, bottom-left.
func (s *Square) Corners() [4]mgl32.Vec3 {
	rot := alignToNormal(s.Normal)
	localRot := mgl32.QuatRotate(mgl32.DegToRad(s.Degrees), Forward)
	half := s.Size.Mul(0.5)

	verts := [4]mgl32.Vec3{
		{-half.X(), half.Y(), 0},  // top-left
		{half.X(), half.Y(), 0},   // top-right
		{half.X(), -half.Y(), 0},  // bottom-right
		{-half.X(), -half.Y(), 0}, // bottom-left
	}
	for i, v := range verts {
		verts[i] = s.Position.Add(rot.Rotate(localRot.Rotate(v)))
	}
	return verts
}

func (s *Square) Draw(r Renderer) {
	verts := s.Corners()
	for i := range verts {
		r.DrawLine(verts[i], verts[(i+1)%len(verts)])
	}
}

type Line struct {
	GizmoAttributes
	Start mgl32.Vec3
	End   mgl32.Vec3
}

func NewLine(start, end mgl32.Vec3, color Color) *Line {
	return &Line{
		GizmoAttributes: newAttributes(start, color),
		Start:           start,
		End:             end,
	}
}

// NewRay builds the line from origin to origin+ray.
func NewRay(origin, ray mgl32.Vec3, color Color) *Line {
	return NewLine(origin, origin.Add(ray), color)
}

func (l *Line) Type() GizmoType { return GizmoLine }

func (l *Line) Draw(r Renderer) {
	r.DrawLine(l.Start, l.End)
}

// alignToNormal rotates Forward onto normal. A zero normal keeps Forward.
func alignToNormal(normal mgl32.Vec3) mgl32.Quat {
	if normal.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatBetweenVectors(Forward, normal.Normalize())
}
