// Package raylib draws gizmos with raylib's immediate-mode 3D wire primitives.
package raylib

import (
	"github.com/gekko3d/gizmos"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer must be used between rl.BeginMode3D and rl.EndMode3D.
type Renderer struct {
	SphereRings  int32
	SphereSlices int32

	color     gizmos.Color
	transform mgl32.Mat4
}

var (
	_ gizmos.Renderer    = (*Renderer)(nil)
	_ gizmos.StateReader = (*Renderer)(nil)
)

func New() *Renderer {
	return &Renderer{
		SphereRings:  12,
		SphereSlices: 12,
		color:        gizmos.DefaultColor,
		transform:    mgl32.Ident4(),
	}
}

func (r *Renderer) SetColor(c gizmos.Color)      { r.color = c }
func (r *Renderer) SetTransform(m mgl32.Mat4)    { r.transform = m }
func (r *Renderer) CurrentColor() gizmos.Color   { return r.color }
func (r *Renderer) CurrentTransform() mgl32.Mat4 { return r.transform }

func (r *Renderer) DrawLine(a, b mgl32.Vec3) {
	r.withTransform(func() {
		rl.DrawLine3D(vec3(a), vec3(b), r.rlColor())
	})
}

func (r *Renderer) DrawSphere(center mgl32.Vec3, radius float32) {
	r.withTransform(func() {
		rl.DrawSphereWires(vec3(center), radius, r.SphereRings, r.SphereSlices, r.rlColor())
	})
}

func (r *Renderer) DrawCube(center, size mgl32.Vec3) {
	r.withTransform(func() {
		rl.DrawCubeWiresV(vec3(center), vec3(size), r.rlColor())
	})
}

// withTransform pushes the gizmo transform onto rlgl's matrix stack.
// mgl32 and rlgl both store matrices column-major.
func (r *Renderer) withTransform(draw func()) {
	if r.transform == mgl32.Ident4() {
		draw()
		return
	}
	rl.PushMatrix()
	rl.MultMatrixf(r.transform[:])
	draw()
	rl.PopMatrix()
}

func (r *Renderer) rlColor() rl.Color {
	n := r.color.NRGBA()
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
