package wire

import (
	"github.com/gekko3d/gizmos"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport maps world space onto a Width x Height screen with the origin at
// the top-left corner.
type Viewport struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Width      int
	Height     int
}

// NewViewport builds a perspective viewport looking from eye at target, Y up.
func NewViewport(eye, target mgl32.Vec3, fovDegrees float32, width, height int) Viewport {
	aspect := float32(width) / float32(max(height, 1))
	return Viewport{
		View:       mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0}),
		Projection: mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, 0.1, 1000),
		Width:      width,
		Height:     height,
	}
}

// nearW rejects points on or behind the camera plane.
const nearW = 1e-4

// Project returns screen coordinates for p. ok is false when p is behind the camera.
func (v Viewport) Project(p mgl32.Vec3) (x, y float32, ok bool) {
	clip := v.Projection.Mul4(v.View).Mul4x1(p.Vec4(1))
	if clip.W() <= nearW {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) * 0.5 * float32(v.Width)
	y = (1 - ndc.Y()) * 0.5 * float32(v.Height)
	return x, y, true
}

// ScreenSink draws a 2D segment in screen coordinates.
type ScreenSink interface {
	Segment(x0, y0, x1, y1 float32, c gizmos.Color)
}

// Projected adapts a ScreenSink into a Sink through a Viewport. Segments with
// an endpoint behind the camera are dropped.
type Projected struct {
	Viewport Viewport
	Screen   ScreenSink
}

func (p Projected) Line(a, b mgl32.Vec3, c gizmos.Color) {
	x0, y0, ok0 := p.Viewport.Project(a)
	x1, y1, ok1 := p.Viewport.Project(b)
	if !ok0 || !ok1 {
		return
	}
	p.Screen.Segment(x0, y0, x1, y1, c)
}
