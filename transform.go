package proxyui

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Affine is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity affine matrix.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// Transform is an entity's transform relative to its parent.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64
}

// NewTransform returns a unit-scale transform at (x, y).
func NewTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// Matrix computes the local affine matrix.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func (t Transform) Matrix() Affine {
	sin, cos := math.Sincos(t.Rotation)

	// After Scale * Translate(-pivot).
	a := t.ScaleX
	d := t.ScaleY
	preTx := -t.PivotX * t.ScaleX
	preTy := -t.PivotY * t.ScaleY

	// After Rotate.
	ra := cos * a
	rb := sin * a
	rc := -sin * d
	rd := cos * d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return Affine{ra, rb, rc, rd, rtx + t.X, rty + t.Y}
}

// GlobalTransform is an entity's transform in UI or world space after
// parent transforms have been applied.
type GlobalTransform struct {
	Affine Affine
}

// Translation returns the origin of the transform.
func (g GlobalTransform) Translation() Vec2 {
	return Vec2{g.Affine[4], g.Affine[5]}
}

// Mul multiplies two affine matrices: result = m * child.
func (m Affine) Mul(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert computes the inverse of the matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// maxTransformDepth bounds parent chains; deeper chains are treated as cycles.
const maxTransformDepth = 32

var transformQuery = donburi.NewQuery(filter.Contains(TransformComponent, GlobalTransformComponent))

// propagateTransforms recomputes GlobalTransform for every entity with a
// Transform, following Parent links. Parents missing a Transform contribute
// the identity.
func (p *Plugin) propagateTransforms(world donburi.World) {
	resolved := make(map[donburi.Entity]Affine)
	var entities []donburi.Entity
	transformQuery.Each(world, func(entry *donburi.Entry) {
		entities = append(entities, entry.Entity())
	})
	for _, e := range entities {
		entry := world.Entry(e)
		global := p.resolveGlobal(world, entry, resolved, 0)
		GlobalTransformComponent.SetValue(entry, GlobalTransform{Affine: global})
	}
}

func (p *Plugin) resolveGlobal(world donburi.World, entry *donburi.Entry, resolved map[donburi.Entity]Affine, depth int) Affine {
	if m, ok := resolved[entry.Entity()]; ok {
		return m
	}
	local := IdentityAffine
	if entry.HasComponent(TransformComponent) {
		local = TransformComponent.GetValue(entry).Matrix()
	}
	global := local
	if entry.HasComponent(ParentComponent) {
		parent := ParentComponent.GetValue(entry).Entity
		switch {
		case depth >= maxTransformDepth:
			p.log.Warn("transform hierarchy too deep, ignoring parent",
				"entity", entry.Entity(), "depth", depth)
		case world.Valid(parent):
			global = p.resolveGlobal(world, world.Entry(parent), resolved, depth+1).Mul(local)
		}
	}
	resolved[entry.Entity()] = global
	return global
}
