// Package recorder provides a headless gizmos.Renderer that remembers every
// call made on it, in order.
package recorder

import (
	"github.com/gekko3d/gizmos"
	"github.com/go-gl/mathgl/mgl32"
)

type Op int

const (
	OpSetColor Op = iota
	OpSetTransform
	OpLine
	OpSphere
	OpCube
)

func (op Op) String() string {
	switch op {
	case OpSetColor:
		return "SetColor"
	case OpSetTransform:
		return "SetTransform"
	case OpLine:
		return "DrawLine"
	case OpSphere:
		return "DrawSphere"
	case OpCube:
		return "DrawCube"
	default:
		return "Unknown"
	}
}

// Call is one recorded renderer call. Color and Transform hold the ambient
// state in effect when the call was made.
type Call struct {
	Op        Op
	Color     gizmos.Color
	Transform mgl32.Mat4
	A, B      mgl32.Vec3 // Line endpoints; A is the center for spheres and cubes.
	Radius    float32
	Size      mgl32.Vec3
}

// Segment is a recorded line with the state it was drawn in.
type Segment struct {
	A, B      mgl32.Vec3
	Color     gizmos.Color
	Transform mgl32.Mat4
}

type Recorder struct {
	Calls []Call

	color     gizmos.Color
	transform mgl32.Mat4
}

var (
	_ gizmos.Renderer    = (*Recorder)(nil)
	_ gizmos.StateReader = (*Recorder)(nil)
)

func New() *Recorder {
	return &Recorder{transform: mgl32.Ident4()}
}

func (r *Recorder) SetColor(c gizmos.Color) {
	r.color = c
	r.record(Call{Op: OpSetColor})
}

func (r *Recorder) SetTransform(m mgl32.Mat4) {
	r.transform = m
	r.record(Call{Op: OpSetTransform})
}

func (r *Recorder) DrawLine(a, b mgl32.Vec3) {
	r.record(Call{Op: OpLine, A: a, B: b})
}

func (r *Recorder) DrawSphere(center mgl32.Vec3, radius float32) {
	r.record(Call{Op: OpSphere, A: center, Radius: radius})
}

func (r *Recorder) DrawCube(center, size mgl32.Vec3) {
	r.record(Call{Op: OpCube, A: center, Size: size})
}

func (r *Recorder) CurrentColor() gizmos.Color   { return r.color }
func (r *Recorder) CurrentTransform() mgl32.Mat4 { return r.transform }

func (r *Recorder) record(c Call) {
	c.Color = r.color
	c.Transform = r.transform
	r.Calls = append(r.Calls, c)
}

// Draws returns the recorded draw calls, skipping state changes.
func (r *Recorder) Draws() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == OpLine || c.Op == OpSphere || c.Op == OpCube {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Lines() []Segment {
	var out []Segment
	for _, c := range r.Calls {
		if c.Op == OpLine {
			out = append(out, Segment{A: c.A, B: c.B, Color: c.Color, Transform: c.Transform})
		}
	}
	return out
}

func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
