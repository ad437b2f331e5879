// Package wire turns gizmo draw calls into world-space line segments for
// backends that can only draw lines.
package wire

import (
	"github.com/chewxy/math32"
	"github.com/gekko3d/gizmos"
	"github.com/go-gl/mathgl/mgl32"
)

// Sink receives transformed, world-space segments.
type Sink interface {
	Line(a, b mgl32.Vec3, c gizmos.Color)
}

// DefaultSphereSteps is the segment count per great circle of a sphere.
const DefaultSphereSteps = 32

// Renderer is a gizmos.Renderer that applies the current transform itself and
// decomposes spheres into three great circles and cubes into twelve edges.
type Renderer struct {
	SphereSteps int

	sink      Sink
	color     gizmos.Color
	transform mgl32.Mat4
}

var (
	_ gizmos.Renderer    = (*Renderer)(nil)
	_ gizmos.StateReader = (*Renderer)(nil)
)

func New(sink Sink) *Renderer {
	return &Renderer{
		SphereSteps: DefaultSphereSteps,
		sink:        sink,
		color:       gizmos.DefaultColor,
		transform:   mgl32.Ident4(),
	}
}

func (r *Renderer) SetColor(c gizmos.Color)      { r.color = c }
func (r *Renderer) SetTransform(m mgl32.Mat4)    { r.transform = m }
func (r *Renderer) CurrentColor() gizmos.Color   { return r.color }
func (r *Renderer) CurrentTransform() mgl32.Mat4 { return r.transform }

func (r *Renderer) DrawLine(a, b mgl32.Vec3) {
	r.sink.Line(r.apply(a), r.apply(b), r.color)
}

func (r *Renderer) DrawSphere(center mgl32.Vec3, radius float32) {
	steps := r.SphereSteps
	if steps < 3 {
		steps = DefaultSphereSteps
	}
	angleStep := 2 * math32.Pi / float32(steps)
	for i := 0; i < steps; i++ {
		a1, a2 := float32(i)*angleStep, float32(i+1)*angleStep
		c1, s1 := math32.Cos(a1)*radius, math32.Sin(a1)*radius
		c2, s2 := math32.Cos(a2)*radius, math32.Sin(a2)*radius
		r.DrawLine(center.Add(mgl32.Vec3{c1, s1, 0}), center.Add(mgl32.Vec3{c2, s2, 0}))
		r.DrawLine(center.Add(mgl32.Vec3{c1, 0, s1}), center.Add(mgl32.Vec3{c2, 0, s2}))
		r.DrawLine(center.Add(mgl32.Vec3{0, c1, s1}), center.Add(mgl32.Vec3{0, c2, s2}))
	}
}

// cubeEdges index into the corner list built by DrawCube.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
}

func (r *Renderer) DrawCube(center, size mgl32.Vec3) {
	h := size.Mul(0.5)
	corners := [8]mgl32.Vec3{
		{-h.X(), -h.Y(), -h.Z()},
		{h.X(), -h.Y(), -h.Z()},
		{h.X(), -h.Y(), h.Z()},
		{-h.X(), -h.Y(), h.Z()},
		{-h.X(), h.Y(), -h.Z()},
		{h.X(), h.Y(), -h.Z()},
		{h.X(), h.Y(), h.Z()},
		{-h.X(), h.Y(), h.Z()},
	}
	for _, e := range cubeEdges {
		r.DrawLine(center.Add(corners[e[0]]), center.Add(corners[e[1]]))
	}
}

func (r *Renderer) apply(p mgl32.Vec3) mgl32.Vec3 {
	return r.transform.Mul4x1(p.Vec4(1)).Vec3()
}
