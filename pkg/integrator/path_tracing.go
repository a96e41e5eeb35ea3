package integrator

import (
	"math"

	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/geometry"
)

// DefaultTMin is the lower bound of every hit query, keeping bounced rays off their own surface
const DefaultTMin = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth   int
	TMin       float64
	Background Background
}

// NewPathTracingIntegrator creates a path tracer that follows at most maxDepth ray segments
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		TMin:       DefaultTMin,
		Background: DefaultBackground(),
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Accelerator, sampler core.Sampler) core.Color {
	return pt.Trace(ray, world, sampler, pt.MaxDepth)
}

// Trace follows ray through the world with a budget of depth segments.
// A budget of zero contributes no light.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Accelerator, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Intersect(ray, pt.TMin, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}

	if hit.Material == nil {
		return core.Color{}
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Color{}
	}

	return core.MultiplyVec(scatter.Attenuation, pt.Trace(scatter.Scattered, world, sampler, depth-1))
}
