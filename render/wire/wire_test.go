package wire

import (
	"testing"

	"github.com/gekko3d/gizmos"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type segment struct {
	a, b mgl32.Vec3
	c    gizmos.Color
}

type collector struct {
	segments []segment
}

func (s *collector) Line(a, b mgl32.Vec3, c gizmos.Color) {
	s.segments = append(s.segments, segment{a, b, c})
}

func TestRenderer_CubeHasTwelveEdges(t *testing.T) {
	sink := &collector{}
	r := New(sink)
	r.DrawCube(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 2, 2})

	require.Len(t, sink.segments, 12)
	for i, s := range sink.segments {
		assert.InDelta(t, 2, s.a.Sub(s.b).Len(), 1e-6, "edge %d", i)
		for k := 0; k < 3; k++ {
			assert.Contains(t, []float32{0, 2}, s.a[k])
		}
	}
}

func TestRenderer_SphereIsThreeGreatCircles(t *testing.T) {
	sink := &collector{}
	r := New(sink)
	r.SphereSteps = 8
	r.DrawSphere(mgl32.Vec3{0, 0, 5}, 2)

	require.Len(t, sink.segments, 3*8)
	for _, s := range sink.segments {
		assert.InDelta(t, 2, s.a.Sub(mgl32.Vec3{0, 0, 5}).Len(), 1e-5)
	}

	sink.segments = nil
	r.SphereSteps = 0
	r.DrawSphere(mgl32.Vec3{}, 1)
	assert.Len(t, sink.segments, 3*DefaultSphereSteps)
}

func TestRenderer_AppliesTransformAndColor(t *testing.T) {
	sink := &collector{}
	r := New(sink)
	assert.Equal(t, gizmos.DefaultColor, r.CurrentColor())
	assert.Equal(t, mgl32.Ident4(), r.CurrentTransform())

	r.SetColor(gizmos.Green)
	r.SetTransform(mgl32.Translate3D(0, 10, 0))
	r.DrawLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})

	require.Len(t, sink.segments, 1)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, sink.segments[0].a)
	assert.Equal(t, mgl32.Vec3{1, 10, 0}, sink.segments[0].b)
	assert.Equal(t, gizmos.Green, sink.segments[0].c)
}

func TestRenderer_WithRegistry(t *testing.T) {
	sink := &collector{}
	r := New(sink)
	reg := gizmos.NewRegistry(nil, nil)

	cube := reg.DrawCube(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, gizmos.Color{})
	cube.Transform = mgl32.Translate3D(5, 0, 0)
	reg.DrawLine(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, gizmos.Blue)

	reg.RenderAndExpire(r)

	require.Len(t, sink.segments, 13)
	for _, s := range sink.segments[:12] {
		assert.Equal(t, gizmos.DefaultColor, s.c)
		assert.InDelta(t, 5, s.a.X(), 0.5+1e-6)
	}
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, sink.segments[12].b, "line drawn untransformed")
	assert.Equal(t, gizmos.DefaultColor, r.CurrentColor(), "state restored")
	assert.Equal(t, mgl32.Ident4(), r.CurrentTransform())
}

type screenCollector struct {
	n              int
	x0, y0, x1, y1 float32
}

func (s *screenCollector) Segment(x0, y0, x1, y1 float32, c gizmos.Color) {
	s.n++
	s.x0, s.y0, s.x1, s.y1 = x0, y0, x1, y1
}

func TestViewport_ProjectsTargetToCenter(t *testing.T) {
	vp := NewViewport(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, 60, 200, 100)

	x, y, ok := vp.Project(mgl32.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)

	// Up in world space is up on screen, which is a smaller y.
	_, yUp, ok := vp.Project(mgl32.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.Less(t, yUp, y)

	xRight, _, ok := vp.Project(mgl32.Vec3{1, 0, 0})
	require.True(t, ok)
	assert.Greater(t, xRight, x)

	_, _, ok = vp.Project(mgl32.Vec3{0, 0, 20})
	assert.False(t, ok, "behind the camera")
}

func TestProjected_DropsSegmentsBehindCamera(t *testing.T) {
	screen := &screenCollector{}
	p := Projected{Viewport: NewViewport(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, 60, 200, 100), Screen: screen}

	p.Line(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 30}, gizmos.Red)
	assert.Equal(t, 0, screen.n)

	p.Line(mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{1, 0, 0}, gizmos.Red)
	require.Equal(t, 1, screen.n)
	assert.Less(t, screen.x0, screen.x1)
	assert.InDelta(t, screen.y0, screen.y1, 1e-3)
}
