// Package geometry provides the axis-aligned bounding volume math shared
// by the renderer-side components.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box stored as a center point and
// half-extents, both in whatever space the owner defines.
type Bounds struct {
	Center  mgl32.Vec3
	Extents mgl32.Vec3 // Half of the size on each axis, always non-negative
}

// NewBounds creates a Bounds from a center point and a full size vector.
func NewBounds(center, size mgl32.Vec3) Bounds {
	return Bounds{
		Center:  center,
		Extents: size.Mul(0.5),
	}
}

// Size returns the full extent of the box on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Extents.Mul(2)
}

// Min returns the minimal corner of the box.
func (b Bounds) Min() mgl32.Vec3 {
	return b.Center.Sub(b.Extents)
}

// Max returns the maximal corner of the box.
func (b Bounds) Max() mgl32.Vec3 {
	return b.Center.Add(b.Extents)
}

// SetMinMax rebuilds the box from explicit corners.
func (b *Bounds) SetMinMax(min, max mgl32.Vec3) {
	b.Extents = max.Sub(min).Mul(0.5)
	b.Center = min.Add(b.Extents)
}

// Encapsulate grows the box to include the given point.
func (b *Bounds) Encapsulate(point mgl32.Vec3) {
	min := b.Min()
	max := b.Max()
	for i := 0; i < 3; i++ {
		if point[i] < min[i] {
			min[i] = point[i]
		}
		if point[i] > max[i] {
			max[i] = point[i]
		}
	}
	b.SetMinMax(min, max)
}

// Union returns the smallest box containing both operands.
func (b Bounds) Union(other Bounds) Bounds {
	var out Bounds
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	out.SetMinMax(
		mgl32.Vec3{min32(bMin[0], oMin[0]), min32(bMin[1], oMin[1]), min32(bMin[2], oMin[2])},
		mgl32.Vec3{max32(bMax[0], oMax[0]), max32(bMax[1], oMax[1]), max32(bMax[2], oMax[2])},
	)
	return out
}

// Contains reports whether the point lies inside or on the box.
func (b Bounds) Contains(point mgl32.Vec3) bool {
	min := b.Min()
	max := b.Max()
	for i := 0; i < 3; i++ {
		if point[i] < min[i] || point[i] > max[i] {
			return false
		}
	}
	return true
}

// FromPoints builds the tightest box around the given points.
// An empty slice yields a zero-sized box at the origin.
func FromPoints(points []mgl32.Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	min := mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, p := range points {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}

	var b Bounds
	b.SetMinMax(min, max)
	return b
}

// Transformed returns the axis-aligned box enclosing this box after the
// given transform. The eight corners are transformed and refit, so the
// result can be larger than the source under rotation.
func (b Bounds) Transformed(m mgl32.Mat4) Bounds {
	min := b.Min()
	max := b.Max()

	corners := [8]mgl32.Vec3{
		{min[0], min[1], min[2]},
		{max[0], min[1], min[2]},
		{min[0], max[1], min[2]},
		{max[0], max[1], min[2]},
		{min[0], min[1], max[2]},
		{max[0], min[1], max[2]},
		{min[0], max[1], max[2]},
		{max[0], max[1], max[2]},
	}

	transformed := make([]mgl32.Vec3, 0, 8)
	for _, c := range corners {
		transformed = append(transformed, m.Mul4x1(c.Vec4(1)).Vec3())
	}
	return FromPoints(transformed)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
