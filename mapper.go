package proxyui

// UIToWorld converts a point in UI space into world space.
//
// The point is normalized by the window size into NDC ([-1, 1] on both axes,
// no Y flip), lifted to (x, y, -1, 1) and transformed by
// camera * inverse(projection). The result follows the camera's own axis
// convention; callers that need a different one adjust the result.
// A non-invertible projection yields a meaningless result; it is not
// checked.
func UIToWorld(point, window Vec2, camera Mat4, projection Projection) Vec2 {
	ndc := Vec2{
		X: point.X/window.X*2 - 1,
		Y: point.Y/window.Y*2 - 1,
	}
	world := camera.Mul(projection.Matrix().Inverse()).MulVec4(Vec4{X: ndc.X, Y: ndc.Y, Z: -1, W: 1})
	return Vec2{world.X, world.Y}
}

// uiRectToWorld maps both corners of a UI rect into world space.
func uiRectToWorld(r Rect, window Vec2, camera Mat4, projection Projection) Rect {
	return Rect{
		Min: UIToWorld(r.Min, window, camera, projection),
		Max: UIToWorld(r.Max, window, camera, projection),
	}
}

// WorldToUI converts a world-space point back into UI space. It is the
// inverse of UIToWorld for the same window, camera and projection.
func WorldToUI(point, window Vec2, camera Mat4, projection Projection) Vec2 {
	ndc := projection.Matrix().Mul(camera.Inverse()).MulVec4(Vec4{X: point.X, Y: point.Y, Z: 0, W: 1})
	return Vec2{
		X: (ndc.X + 1) / 2 * window.X,
		Y: (ndc.Y + 1) / 2 * window.Y,
	}
}
