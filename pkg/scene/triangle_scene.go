package scene

import (
	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/geometry"
	"github.com/sajis997/path-tracer/pkg/material"
	"github.com/sajis997/path-tracer/pkg/renderer"
)

// NewTriangleScene creates a four-sided pyramid and a metal sphere on a ground quad,
// all geometry except the sphere made of triangles.
func NewTriangleScene() *Scene {
	s := &Scene{
		Name: "triangles",
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(3, 2.5, 4),
			LookAt:      core.NewVec3(0, 0.6, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40,
			AspectRatio: 16.0 / 9.0,
			Aperture:    0.02,
		},
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	red := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	mirror := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.05)

	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 20, ground)...)
	s.Add(NewPyramid(core.NewVec3(0, 0, 0), 1.6, 1.5, red)...)
	s.Add(geometry.NewSphere(core.NewVec3(1.6, 0.5, 0.8), 0.5, mirror))

	return s
}

// NewPyramid creates a square-based pyramid with its base centered at base.
// The base is included so the solid is closed.
func NewPyramid(base core.Point, width, height float64, mat material.Material) []geometry.Primitive {
	h := width / 2
	corners := [4]core.Point{
		base.Add(core.NewVec3(-h, 0, -h)),
		base.Add(core.NewVec3(h, 0, -h)),
		base.Add(core.NewVec3(h, 0, h)),
		base.Add(core.NewVec3(-h, 0, h)),
	}
	apex := base.Add(core.NewVec3(0, height, 0))

	primitives := make([]geometry.Primitive, 0, 6)
	for i := range corners {
		// Counter-clockwise seen from outside
		next := corners[(i+1)%len(corners)]
		primitives = append(primitives, geometry.NewTriangle(corners[i], apex, next, mat))
	}
	primitives = append(primitives,
		geometry.NewTriangle(corners[0], corners[1], corners[2], mat),
		geometry.NewTriangle(corners[0], corners[2], corners[3], mat),
	)
	return primitives
}
