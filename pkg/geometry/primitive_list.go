package geometry

import (
	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/material"
)

// PrimitiveList is the brute-force Accelerator: every query tests every primitive
type PrimitiveList struct {
	primitives []Primitive
	bounds     core.AABB
}

// NewPrimitiveList creates a list accelerator over a copy of primitives
func NewPrimitiveList(primitives []Primitive) *PrimitiveList {
	list := &PrimitiveList{
		primitives: append([]Primitive(nil), primitives...),
		bounds:     core.EmptyAABB(),
	}
	for _, p := range list.primitives {
		list.bounds.IncludeMut(p.Bounds())
	}
	return list
}

// Intersect returns the closest hit among all primitives
func (l *PrimitiveList) Intersect(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, p := range l.primitives {
		if hit, ok := p.Intersect(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// Bounds returns the union of all primitive bounds
func (l *PrimitiveList) Bounds() core.AABB {
	return l.bounds
}

// Len returns the number of primitives in the list
func (l *PrimitiveList) Len() int {
	return len(l.primitives)
}
