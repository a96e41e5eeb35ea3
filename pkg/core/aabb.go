package core

import (
	"fmt"
	"math"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Point // Minimum corner
	Max Point // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Point) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the sentinel box that bounds nothing. It fails every
// containment and intersection test and is the identity for Include and Grow.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box.GrowMut(point)
	}
	return box
}

// Hit tests if a ray intersects with this AABB using the slab method.
//
// A zero direction component yields ±Inf slab distances which the interval
// update absorbs: a ray parallel to a slab and outside of it produces an
// empty interval, one inside of it leaves the interval unchanged. The
// comparisons below are written so that NaN distances (origin exactly on
// the slab plane) are ignored rather than propagated.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction[axis]
		t0 := (aabb.Min[axis] - ray.Origin[axis]) * invD
		t1 := (aabb.Max[axis] - ray.Origin[axis]) * invD

		// Ensure t0 <= t1 (swap if needed)
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// IsEmpty reports whether min exceeds max on any axis
func (aabb AABB) IsEmpty() bool {
	return aabb.Min[0] > aabb.Max[0] || aabb.Min[1] > aabb.Max[1] || aabb.Min[2] > aabb.Max[2]
}

// IsValid returns true if this is a valid AABB (finite corners, min <= max for all axes)
func (aabb AABB) IsValid() bool {
	for axis := 0; axis < 3; axis++ {
		lo, hi := aabb.Min[axis], aabb.Max[axis]
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return false
		}
		if lo > hi {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside the box, boundary included
func (aabb AABB) Contains(p Point) bool {
	return p[0] >= aabb.Min[0] && p[0] <= aabb.Max[0] &&
		p[1] >= aabb.Min[1] && p[1] <= aabb.Max[1] &&
		p[2] >= aabb.Min[2] && p[2] <= aabb.Max[2]
}

// ApproxContains reports whether p lies inside the box grown by epsilon on every face
func (aabb AABB) ApproxContains(p Point, epsilon float64) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis]-aabb.Min[axis] <= -epsilon || p[axis]-aabb.Max[axis] >= epsilon {
			return false
		}
	}
	return true
}

// ApproxContainsAABB reports whether both corners of other are approximately contained
func (aabb AABB) ApproxContainsAABB(other AABB, epsilon float64) bool {
	return aabb.ApproxContains(other.Min, epsilon) && aabb.ApproxContains(other.Max, epsilon)
}

// RelativeEq reports whether every corner component differs by less than epsilon
func (aabb AABB) RelativeEq(other AABB, epsilon float64) bool {
	for axis := 0; axis < 3; axis++ {
		if math.Abs(aabb.Min[axis]-other.Min[axis]) >= epsilon ||
			math.Abs(aabb.Max[axis]-other.Max[axis]) >= epsilon {
			return false
		}
	}
	return true
}

// Include returns an AABB that bounds both this AABB and another
func (aabb AABB) Include(other AABB) AABB {
	return AABB{Min: MinVec(aabb.Min, other.Min), Max: MaxVec(aabb.Max, other.Max)}
}

// IncludeMut grows the box in place so that it also bounds other
func (aabb *AABB) IncludeMut(other AABB) {
	aabb.Min = MinVec(aabb.Min, other.Min)
	aabb.Max = MaxVec(aabb.Max, other.Max)
}

// Grow returns an AABB that bounds this AABB and the point p
func (aabb AABB) Grow(p Point) AABB {
	return AABB{Min: MinVec(aabb.Min, p), Max: MaxVec(aabb.Max, p)}
}

// GrowMut grows the box in place so that it also bounds p
func (aabb *AABB) GrowMut(p Point) {
	aabb.Min = MinVec(aabb.Min, p)
	aabb.Max = MaxVec(aabb.Max, p)
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Sub(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Sub(aabb.Min)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Point {
	return aabb.Min.Add(aabb.Size().Mul(0.5))
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size[0]*size[1] + size[0]*size[2] + size[1]*size[2])
}

// Volume returns the volume of the AABB
func (aabb AABB) Volume() float64 {
	size := aabb.Size()
	return size[0] * size[1] * size[2]
}

// LargestAxis returns the axis with the longest extent. X wins only when it is
// strictly longer than both others, then Y when strictly longer than Z.
func (aabb AABB) LargestAxis() Axis {
	size := aabb.Size()
	if size[0] > size[1] && size[0] > size[2] {
		return X
	}
	if size[1] > size[2] {
		return Y
	}
	return Z
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Point {
	var corners [8]Point
	for i := range corners {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				corners[i][axis] = aabb.Max[axis]
			} else {
				corners[i][axis] = aabb.Min[axis]
			}
		}
	}
	return corners
}

func (aabb AABB) String() string {
	return fmt.Sprintf("Min bound: %v; Max bound: %v", aabb.Min, aabb.Max)
}
