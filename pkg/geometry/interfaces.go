package geometry

import (
	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/material"
)

// Primitive is a piece of scene geometry that rays can hit.
// Primitives are immutable after construction and safe for concurrent use.
type Primitive interface {
	Intersect(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	Bounds() core.AABB
	Centroid() core.Point
}

// Accelerator answers nearest-hit queries over a fixed set of primitives
type Accelerator interface {
	Intersect(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	Bounds() core.AABB
}

// boundsEpsilon inflates primitive bounds so that flat primitives never produce zero-volume boxes
const boundsEpsilon = 1e-6
