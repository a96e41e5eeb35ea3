package scene

import (
	"math/rand"

	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/geometry"
	"github.com/sajis997/path-tracer/pkg/material"
	"github.com/sajis997/path-tracer/pkg/renderer"
)

// NewRandomScene creates a large ground sphere covered with a 22x22 grid of small
// spheres of random material, plus a glass, a diffuse and a metal showcase sphere.
func NewRandomScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))
	randomIn := func(lo, hi float64) float64 {
		return lo + (hi-lo)*random.Float64()
	}
	randomColor := func(lo, hi float64) core.Color {
		return core.NewVec3(randomIn(lo, hi), randomIn(lo, hi), randomIn(lo, hi))
	}

	s := &Scene{
		Name: "random",
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			AspectRatio:   3.0 / 2.0,
			Aperture:      0.1,
			FocusDistance: 10,
		},
		SamplingConfig: SamplingConfig{
			Width:           1200,
			Height:          800,
			SamplesPerPixel: 500,
			MaxDepth:        50,
		},
	}

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	glass := material.NewDielectric(1.5)
	keepClear := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Sub(keepClear).Len() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := core.MultiplyVec(randomColor(0, 1), randomColor(0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				mat = material.NewMetal(randomColor(0.5, 1), randomIn(0, 0.5))
			default:
				mat = glass
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
