package gizmos_test

import (
	"testing"
	"time"

	"github.com/gekko3d/gizmos"
	"github.com/gekko3d/gizmos/render/recorder"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGizmoComponent_Shape(t *testing.T) {
	line := gizmos.NewGizmoLine(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0}, gizmos.Red).Shape()
	require.IsType(t, &gizmos.Line{}, line)
	assert.Equal(t, mgl32.Ident4(), line.Attributes().Transform)

	sphere := gizmos.NewGizmoSphere(mgl32.Vec3{}, 2, gizmos.Color{}).Shape()
	require.IsType(t, &gizmos.Sphere{}, sphere)
	assert.Equal(t, float32(2), sphere.(*gizmos.Sphere).Radius)

	circle := gizmos.NewGizmoCircle(mgl32.Vec3{}, 1, 0, gizmos.Color{}).Shape()
	require.IsType(t, &gizmos.Circle{}, circle)
	assert.Equal(t, gizmos.DefaultCircleSides, circle.(*gizmos.Circle).Sides)
	assert.Equal(t, gizmos.Forward, circle.(*gizmos.Circle).Normal)

	sq := gizmos.NewGizmoSquare(mgl32.Vec3{}, mgl32.Vec2{3, 4}, gizmos.Color{}).Shape()
	require.IsType(t, &gizmos.Square{}, sq)
	assert.Equal(t, mgl32.Vec2{3, 4}, sq.(*gizmos.Square).Size)

	assert.Nil(t, gizmos.GizmoComponent{Type: gizmos.GizmoCustom}.Shape())
}

func TestGizmoComponent_RotationOrientsShapes(t *testing.T) {
	c := gizmos.NewGizmoCircle(mgl32.Vec3{}, 1, 6, gizmos.Color{})
	c.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
	circle := c.Shape().(*gizmos.Circle)
	assertVec(t, mgl32.Vec3{0, -1, 0}, circle.Normal)

	cube := gizmos.NewGizmoCube(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{1, 1, 1}, gizmos.Color{})
	cube.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
	shape := cube.Shape()

	// The cube spins in place: its center is a fixed point of the transform.
	center := mgl32.TransformCoordinate(mgl32.Vec3{5, 0, 0}, shape.Attributes().Transform)
	assertVec(t, mgl32.Vec3{5, 0, 0}, center)
	corner := mgl32.TransformCoordinate(mgl32.Vec3{6, 0, 0}, shape.Attributes().Transform)
	assertVec(t, mgl32.Vec3{5, 1, 0}, corner)
}

func TestGizmoComponent_LineRotatesAboutStart(t *testing.T) {
	c := gizmos.NewGizmoLine(mgl32.Vec3{2, 0, 0}, mgl32.Vec3{3, 0, 0}, gizmos.Color{})
	c.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})

	rec := recorder.New()
	reg := gizmos.NewRegistry(nil, nil)
	reg.Enqueue(c.Shape())
	reg.RenderAndExpire(rec)

	lines := rec.Lines()
	require.Len(t, lines, 1)
	assertVec(t, mgl32.Vec3{2, 0, 0}, mgl32.TransformCoordinate(lines[0].A, lines[0].Transform))
	assertVec(t, mgl32.Vec3{2, 1, 0}, mgl32.TransformCoordinate(lines[0].B, lines[0].Transform))
}

func TestEmitterModule_EmitsEveryFrame(t *testing.T) {
	rec := recorder.New()
	app := gizmos.NewApp().UseModules(
		gizmos.TimeModule{},
		gizmos.GizmosModule{Renderer: rec},
		gizmos.EmitterModule{},
	)

	emitters, ok := gizmos.Resource[gizmos.Emitters](app)
	require.True(t, ok)
	cube := emitters.Add(gizmos.NewGizmoCube(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, gizmos.Blue))
	emitters.Add(gizmos.NewGizmoSphere(mgl32.Vec3{}, 1, gizmos.Red))
	assert.Equal(t, 2, emitters.Len())

	for i := 0; i < 3; i++ {
		app.Step(16 * time.Millisecond)
	}
	assert.Equal(t, 3, rec.Count(recorder.OpCube))
	assert.Equal(t, 3, rec.Count(recorder.OpSphere))
	assert.Equal(t, 0, app.Gizmos().Len(), "emitted gizmos last a single frame")

	cube.Disabled = true
	app.Step(16 * time.Millisecond)
	assert.Equal(t, 3, rec.Count(recorder.OpCube))

	cube.Disabled = false
	require.True(t, emitters.Remove(cube))
	assert.False(t, emitters.Remove(cube))
	app.Step(16 * time.Millisecond)
	assert.Equal(t, 3, rec.Count(recorder.OpCube))
	assert.Equal(t, 5, rec.Count(recorder.OpSphere))
}
