package proxyui

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default panel color.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts the color to a premultiplied color.RGBA for drawing.
func (c Color) RGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Vec2 is a 2D vector used for positions, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle stored as its two corners. UI rects have
// their origin at the top-left of the window with Y increasing downward;
// world rects follow whatever convention the active camera uses, so Min is
// not guaranteed to be component-wise smaller than Max.
type Rect struct {
	Min, Max Vec2
}

// RectFromCenterSize returns the rect of the given size centered on center.
func RectFromCenterSize(center, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Width returns the absolute horizontal extent of the rect.
func (r Rect) Width() float64 {
	if r.Max.X < r.Min.X {
		return r.Min.X - r.Max.X
	}
	return r.Max.X - r.Min.X
}

// Height returns the absolute vertical extent of the rect.
func (r Rect) Height() float64 {
	if r.Max.Y < r.Min.Y {
		return r.Min.Y - r.Max.Y
	}
	return r.Max.Y - r.Min.Y
}

// Size returns the absolute extent of the rect.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width(), r.Height()}
}

// Center returns the midpoint between Min and Max.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	minX, maxX := ordered(r.Min.X, r.Max.X)
	minY, maxY := ordered(r.Min.Y, r.Max.Y)
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

// Scale returns the rect with both corners scaled by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{Min: r.Min.Scale(s), Max: r.Max.Scale(s)}
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// Visibility is the user-controlled visibility of an entity.
type Visibility uint8

//go:generate go tool stringer -type=Visibility -trimprefix=Visibility

const (
	VisibilityInherited Visibility = iota // follow the parent (default)
	VisibilityVisible                     // always shown
	VisibilityHidden                      // always hidden
)

// ViewVisibility is the resolved visibility of an entity as computed by the
// host for the current frame.
type ViewVisibility struct {
	Visible bool
}

// Unit selects how a Val is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // size decided by the layout engine
	UnitPx                  // logical pixels
	UnitPercent             // percent of the parent's extent
)

// Val is a single style length.
type Val struct {
	Unit  Unit
	Value float64
}

// Px returns a pixel Val.
func Px(v float64) Val { return Val{Unit: UnitPx, Value: v} }

// Percent returns a percentage Val.
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

// Display controls whether a node takes part in layout.
type Display uint8

const (
	DisplayFlex Display = iota // participates in layout (default)
	DisplayNone                // removed from layout
)

// Style is the subset of a UI node's style captured in snapshots. It is a
// plain comparable value so snapshots can be diffed with ==.
type Style struct {
	Display         Display
	Left, Top       Val
	Width, Height   Val
	BackgroundColor Color
}
