package proxyui

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestProjectionDefaults(t *testing.T) {
	p := NewOrthographicProjection()
	if p.Scale != 1 {
		t.Errorf("Scale = %f, want 1", p.Scale)
	}
	if p.ScalingMode != ScalingWindowSize {
		t.Errorf("ScalingMode = %v, want ScalingWindowSize", p.ScalingMode)
	}
	if !p.Area.IsEmpty() {
		t.Errorf("Area = %v, want empty before Update", p.Area)
	}
	if p.Matrix() != IdentityMat4 {
		t.Error("empty projection should return the identity matrix")
	}
}

func TestProjectionUpdate(t *testing.T) {
	p := NewOrthographicProjection()
	p.Update(800, 600)
	want := Rect{Min: Vec2{-400, -300}, Max: Vec2{400, 300}}
	if p.Area != want {
		t.Errorf("Area = %v, want %v", p.Area, want)
	}

	p.Scale = 0.5
	p.Update(800, 600)
	want = Rect{Min: Vec2{-200, -150}, Max: Vec2{200, 150}}
	if p.Area != want {
		t.Errorf("scaled Area = %v, want %v", p.Area, want)
	}
}

func TestProjectionFixedIgnoresUpdate(t *testing.T) {
	p := NewOrthographicProjection()
	p.ScalingMode = ScalingFixed
	p.Area = Rect{Min: Vec2{-10, -10}, Max: Vec2{10, 10}}
	p.Update(800, 600)
	if p.Area.Width() != 20 {
		t.Errorf("fixed Area width = %f, want 20", p.Area.Width())
	}
}

func TestProjectionMapsAreaToNDC(t *testing.T) {
	p := NewOrthographicProjection()
	p.Update(800, 600)
	m := p.Matrix()

	corner := m.MulVec4(Vec4{X: 400, Y: 300, W: 1})
	if !approxEqual(corner.X, 1, epsilon) || !approxEqual(corner.Y, 1, epsilon) {
		t.Errorf("max corner → (%f,%f), want (1,1)", corner.X, corner.Y)
	}
	corner = m.MulVec4(Vec4{X: -400, Y: -300, W: 1})
	if !approxEqual(corner.X, -1, epsilon) || !approxEqual(corner.Y, -1, epsilon) {
		t.Errorf("min corner → (%f,%f), want (-1,-1)", corner.X, corner.Y)
	}
}

func TestActiveCameraLowestOrder(t *testing.T) {
	world := donburi.NewWorld()
	if _, ok := activeCamera(world); ok {
		t.Fatal("activeCamera on empty world should report false")
	}

	a := SpawnCamera(world)
	CameraComponent.SetValue(a, Camera{Active: true, Order: 2})
	b := SpawnCamera(world)
	CameraComponent.SetValue(b, Camera{Active: true, Order: 1})
	c := SpawnCamera(world)
	CameraComponent.SetValue(c, Camera{Active: false, Order: 0})

	got, ok := activeCamera(world)
	if !ok || got.Entity() != b.Entity() {
		t.Errorf("activeCamera = %v, want order 1 camera", got)
	}

	CameraComponent.SetValue(a, Camera{Active: false})
	CameraComponent.SetValue(b, Camera{Active: false})
	if _, ok := activeCamera(world); ok {
		t.Error("activeCamera with only inactive cameras should report false")
	}
}

func TestCameraMatrixSource(t *testing.T) {
	world := donburi.NewWorld()
	cam := SpawnCamera(world)
	TransformComponent.SetValue(cam, NewTransform(5, 5))
	GlobalTransformComponent.SetValue(cam, GlobalTransform{Affine: Affine{1, 0, 0, 1, 100, 50}})

	v := cameraMatrix(cam, true).MulVec4(Vec4{W: 1})
	if v.X != 100 || v.Y != 50 {
		t.Errorf("managed camera origin = (%f,%f), want (100,50)", v.X, v.Y)
	}

	v = cameraMatrix(cam, false).MulVec4(Vec4{W: 1})
	if v.X != 5 || v.Y != 5 {
		t.Errorf("unmanaged camera origin = (%f,%f), want (5,5)", v.X, v.Y)
	}

	parent := world.Entry(world.Create(TransformComponent))
	setComponent(cam, ParentComponent, Parent{Entity: parent.Entity()})
	v = cameraMatrix(cam, false).MulVec4(Vec4{W: 1})
	if v.X != 100 || v.Y != 50 {
		t.Errorf("parented camera origin = (%f,%f), want (100,50)", v.X, v.Y)
	}
}

func TestUpdateCamerasResizesProjection(t *testing.T) {
	world := donburi.NewWorld()
	p := New(Config{})
	SpawnPrimaryWindow(world, 1024, 768)
	cam := SpawnCamera(world)

	p.updateCameras(world, 1.0/60)

	area := ProjectionComponent.GetValue(cam).Area
	if area.Width() != 1024 || area.Height() != 768 {
		t.Errorf("Area = %v, want 1024x768", area)
	}
}

func TestUpdateCamerasWithoutWindowKeepsArea(t *testing.T) {
	world := donburi.NewWorld()
	p := New(Config{})
	cam := SpawnCamera(world)
	ProjectionComponent.Get(cam).Update(320, 240)

	p.updateCameras(world, 1.0/60)

	if w := ProjectionComponent.GetValue(cam).Area.Width(); w != 320 {
		t.Errorf("Area width = %f, want 320", w)
	}
}

func TestCameraFollow(t *testing.T) {
	world := donburi.NewWorld()
	p := New(Config{})
	cam := SpawnCamera(world)
	target := world.Entry(world.Create(TransformComponent))
	TransformComponent.SetValue(target, NewTransform(200, 100))

	setComponent(cam, CameraFollowComponent, CameraFollow{Target: target.Entity(), OffsetX: 10, Lerp: 0.5})
	p.updateCameras(world, 1.0/60)

	tr := TransformComponent.GetValue(cam)
	if !approxEqual(tr.X, 105, epsilon) || !approxEqual(tr.Y, 50, epsilon) {
		t.Errorf("after one lerp step camera at (%f,%f), want (105,50)", tr.X, tr.Y)
	}
	// The global transform follows for unparented cameras.
	if g := GlobalTransformComponent.GetValue(cam).Translation(); g != (Vec2{tr.X, tr.Y}) {
		t.Errorf("global translation = %v, want (%f,%f)", g, tr.X, tr.Y)
	}

	// A despawned target leaves the camera where it is.
	world.Remove(target.Entity())
	p.updateCameras(world, 1.0/60)
	if got := TransformComponent.GetValue(cam); got.X != tr.X || got.Y != tr.Y {
		t.Errorf("camera moved to (%f,%f) after target despawned", got.X, got.Y)
	}
}

func TestScrollCamera(t *testing.T) {
	world := donburi.NewWorld()
	p := New(Config{})
	cam := SpawnCamera(world)

	ScrollCamera(cam, 100, -40, 1, ease.Linear)
	p.updateCameras(world, 0.5)

	tr := TransformComponent.GetValue(cam)
	if !approxEqual(tr.X, 50, 1e-3) || !approxEqual(tr.Y, -20, 1e-3) {
		t.Errorf("halfway camera at (%f,%f), want (50,-20)", tr.X, tr.Y)
	}
	if !cam.HasComponent(CameraScrollComponent) {
		t.Fatal("scroll removed before it finished")
	}

	p.updateCameras(world, 0.6)

	tr = TransformComponent.GetValue(cam)
	if !approxEqual(tr.X, 100, 1e-3) || !approxEqual(tr.Y, -40, 1e-3) {
		t.Errorf("finished camera at (%f,%f), want (100,-40)", tr.X, tr.Y)
	}
	if cam.HasComponent(CameraScrollComponent) {
		t.Error("finished scroll should be removed")
	}
}
