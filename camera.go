package proxyui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Camera marks an entity as a camera. Its Transform positions the view in
// world space and its OrthographicProjection maps view space into NDC.
type Camera struct {
	// Active cameras are candidates for UI to world mapping.
	Active bool
	// Order breaks ties between active cameras; the lowest wins.
	Order int
}

// Projection is the camera projection consumed by UIToWorld.
type Projection interface {
	Matrix() Mat4
}

// ScalingMode selects how an orthographic projection sizes its area.
type ScalingMode uint8

const (
	ScalingWindowSize ScalingMode = iota // one world unit per window pixel, times Scale
	ScalingFixed                         // Area is set by the caller and left alone
)

// OrthographicProjection is a 2D camera projection centered on the camera.
type OrthographicProjection struct {
	Near, Far   float64
	Scale       float64
	ScalingMode ScalingMode
	// Area is the view-space rectangle the projection covers.
	Area Rect
}

// NewOrthographicProjection returns a window-sized projection with unit scale.
// Its area is empty until Update is called with the window size.
func NewOrthographicProjection() OrthographicProjection {
	return OrthographicProjection{Near: -1000, Far: 1000, Scale: 1}
}

// Update resizes the projection area for a window of the given size.
// No-op for ScalingFixed.
func (p *OrthographicProjection) Update(width, height float64) {
	if p.ScalingMode != ScalingWindowSize {
		return
	}
	halfW := width / 2 * p.Scale
	halfH := height / 2 * p.Scale
	p.Area = Rect{Min: Vec2{-halfW, -halfH}, Max: Vec2{halfW, halfH}}
}

// Matrix returns the projection matrix. A projection with an empty area has
// no meaningful matrix and returns the identity.
func (p OrthographicProjection) Matrix() Mat4 {
	if p.Area.Min.X == p.Area.Max.X || p.Area.Min.Y == p.Area.Max.Y || p.Near == p.Far {
		return IdentityMat4
	}
	return Orthographic(p.Area.Min.X, p.Area.Max.X, p.Area.Min.Y, p.Area.Max.Y, p.Near, p.Far)
}

// CameraFollow makes a camera track a target entity with the given offset
// and lerp factor. A lerp of 1.0 snaps immediately; lower values give
// smoother following.
type CameraFollow struct {
	Target           donburi.Entity
	OffsetX, OffsetY float64
	Lerp             float64
}

// CameraScroll holds active scroll-to tweens for camera X and Y.
type CameraScroll struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Done reports whether both tweens have finished.
func (s CameraScroll) Done() bool {
	return s.doneX && s.doneY
}

// SpawnCamera creates an active camera at the world origin. Its projection
// area stays empty until the cameras pass runs or the caller calls
// OrthographicProjection.Update; until then world rects come out in NDC
// units and sync warns.
func SpawnCamera(world donburi.World) *donburi.Entry {
	return world.Entry(world.Create(
		CameraComponent,
		TransformComponent,
		GlobalTransformComponent,
		ProjectionComponent,
	))
}

// ScrollCamera animates the camera in entry to the given world position over
// duration seconds.
func ScrollCamera(entry *donburi.Entry, x, y float64, duration float32, easeFn ease.TweenFunc) {
	t := TransformComponent.GetValue(entry)
	setComponent(entry, CameraScrollComponent, CameraScroll{
		tweenX: gween.New(float32(t.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(t.Y), float32(y), duration, easeFn),
	})
}

var cameraQuery = donburi.NewQuery(filter.Contains(CameraComponent, TransformComponent, ProjectionComponent))

// activeCamera returns the active camera with the lowest Order.
func activeCamera(world donburi.World) (*donburi.Entry, bool) {
	var best *donburi.Entry
	cameraQuery.Each(world, func(entry *donburi.Entry) {
		cam := CameraComponent.GetValue(entry)
		if !cam.Active {
			return
		}
		if best == nil || cam.Order < CameraComponent.GetValue(best).Order {
			best = entry
		}
	})
	return best, best != nil
}

// cameraMatrix returns the camera's world transform as a 4x4 matrix. The
// GlobalTransform is used only when something keeps it current: a plugin
// pass (managed) or a parent hierarchy. Otherwise the local Transform is
// the camera's position.
func cameraMatrix(entry *donburi.Entry, managed bool) Mat4 {
	if entry.HasComponent(GlobalTransformComponent) && (managed || entry.HasComponent(ParentComponent)) {
		return GlobalTransformComponent.GetValue(entry).Affine.Mat4()
	}
	return TransformComponent.GetValue(entry).Matrix().Mat4()
}

// updateCameras advances follow and scroll animations and resizes
// window-scaled projections to the primary window.
func (p *Plugin) updateCameras(world donburi.World, dt float32) {
	window, hasWindow := primaryWindow(world)

	cameraQuery.Each(world, func(entry *donburi.Entry) {
		t := TransformComponent.Get(entry)

		if entry.HasComponent(CameraFollowComponent) {
			f := CameraFollowComponent.GetValue(entry)
			if world.Valid(f.Target) {
				pos := worldPosition(world.Entry(f.Target))
				t.X += (pos.X + f.OffsetX - t.X) * f.Lerp
				t.Y += (pos.Y + f.OffsetY - t.Y) * f.Lerp
			}
		}

		if entry.HasComponent(CameraScrollComponent) {
			s := CameraScrollComponent.Get(entry)
			if !s.doneX {
				val, done := s.tweenX.Update(dt)
				t.X = float64(val)
				s.doneX = done
			}
			if !s.doneY {
				val, done := s.tweenY.Update(dt)
				t.Y = float64(val)
				s.doneY = done
			}
		}

		// Unparented cameras need no propagation pass to be usable.
		if entry.HasComponent(GlobalTransformComponent) && !entry.HasComponent(ParentComponent) {
			GlobalTransformComponent.SetValue(entry, GlobalTransform{Affine: t.Matrix()})
		}

		if hasWindow {
			ProjectionComponent.Get(entry).Update(window.Width, window.Height)
		}
	})

	var finished []donburi.Entity
	CameraScrollComponent.Each(world, func(entry *donburi.Entry) {
		if CameraScrollComponent.GetValue(entry).Done() {
			finished = append(finished, entry.Entity())
		}
	})
	for _, e := range finished {
		world.Entry(e).RemoveComponent(CameraScrollComponent)
	}
}

// worldPosition returns the entity's global translation, falling back to its
// local position.
func worldPosition(entry *donburi.Entry) Vec2 {
	if entry.HasComponent(GlobalTransformComponent) {
		return GlobalTransformComponent.GetValue(entry).Translation()
	}
	if entry.HasComponent(TransformComponent) {
		t := TransformComponent.GetValue(entry)
		return Vec2{t.X, t.Y}
	}
	return Vec2{}
}
