package integrator

import (
	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms.
// Implementations must be safe for concurrent use with distinct samplers.
type Integrator interface {
	// RayColor computes the linear color carried back along ray
	RayColor(ray core.Ray, world geometry.Accelerator, sampler core.Sampler) core.Color
}

// Background is the vertical sky gradient returned for rays that escape the scene
type Background struct {
	Bottom core.Color // color for rays pointing straight down
	Top    core.Color // color for rays pointing straight up
}

// DefaultBackground blends white at the horizon-down into sky blue overhead
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the background seen along ray
func (b Background) Color(ray core.Ray) core.Color {
	unitDirection := core.Unit(ray.Direction)
	t := 0.5 * (unitDirection[core.Y] + 1.0)
	return b.Bottom.Mul(1.0 - t).Add(b.Top.Mul(t))
}
