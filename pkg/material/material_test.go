package material

import (
	"math"

	"github.com/sajis997/path-tracer/pkg/core"
)

// constantSampler returns the same value for every dimension
type constantSampler struct {
	value float64
}

func (s constantSampler) Get1D() float64 { return s.value }
func (s constantSampler) Get2D() core.Vec2 {
	return core.Vec2{s.value, s.value}
}
func (s constantSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

func approxEqual(a, b core.Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

// channelsAtMost reports whether every channel of c is <= the matching channel of limit
func channelsAtMost(c, limit core.Color) bool {
	return c[0] <= limit[0] && c[1] <= limit[1] && c[2] <= limit[2]
}
