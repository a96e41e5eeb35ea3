package renderer

import (
	"math"

	"github.com/sajis997/path-tracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	LookFrom      core.Point // Camera position
	LookAt        core.Point // Point the camera is looking at
	Up            core.Vec3  // Up direction (usually (0,1,0))
	VFov          float64    // Vertical field of view in degrees
	AspectRatio   float64    // Width / height
	Aperture      float64    // Lens diameter, 0 = pinhole
	FocusDistance float64    // Distance to the focus plane, 0 = distance to LookAt
}

// Camera generates rays for rendering. Its basis is derived once at construction.
type Camera struct {
	origin          core.Point
	lowerLeftCorner core.Point
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // right, up, backward
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2.0)
	viewportWidth := config.AspectRatio * viewportHeight

	w := core.Unit(config.LookFrom.Sub(config.LookAt))
	u := core.Unit(config.Up.Cross(w))
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Sub(config.LookAt).Len()
	}
	if focusDistance <= 0 {
		focusDistance = 1.0
	}

	horizontal := u.Mul(focusDistance * viewportWidth)
	vertical := v.Mul(focusDistance * viewportHeight)
	lowerLeftCorner := config.LookFrom.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(w.Mul(focusDistance))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2.0,
	}
}

// GetRay generates a ray through image plane coordinates (s, t) where 0 <= s,t <= 1
// and (0, 0) is the lower left corner. The origin is jittered across the lens.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Mul(c.lensRadius)
		origin = origin.Add(c.u.Mul(rd[core.X])).Add(c.v.Mul(rd[core.Y]))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)

	return core.NewRay(origin, direction)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Mul(-1)
}
