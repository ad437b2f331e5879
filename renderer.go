package gizmos

import "github.com/go-gl/mathgl/mgl32"

// Renderer is the sink gizmos draw themselves into.
// SetColor and SetTransform set ambient state consulted by the draw calls that
// follow; there is exactly one active color and transform, not a stack.
type Renderer interface {
	SetColor(c Color)
	SetTransform(m mgl32.Mat4)
	DrawLine(a, b mgl32.Vec3)
	DrawSphere(center mgl32.Vec3, radius float32)
	DrawCube(center, size mgl32.Vec3)
}

// StateReader is implemented by renderers whose ambient state can be read back.
// The registry uses it to restore color and transform after a render pass.
type StateReader interface {
	CurrentColor() Color
	CurrentTransform() mgl32.Mat4
}

type ambientState struct {
	color     Color
	transform mgl32.Mat4
}

func captureState(r Renderer) ambientState {
	if sr, ok := r.(StateReader); ok {
		return ambientState{color: sr.CurrentColor(), transform: sr.CurrentTransform()}
	}
	return ambientState{color: DefaultColor, transform: mgl32.Ident4()}
}

func (s ambientState) restore(r Renderer) {
	r.SetColor(s.color)
	r.SetTransform(s.transform)
}
