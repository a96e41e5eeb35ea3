package scene

import (
	"errors"
	"fmt"

	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/geometry"
	"github.com/sajis997/path-tracer/pkg/material"
	"github.com/sajis997/path-tracer/pkg/renderer"
)

var (
	ErrUnknownScene       = errors.New("scene: unknown scene")
	ErrUnknownAccelerator = errors.New("scene: unknown accelerator")
	ErrNotPreprocessed    = errors.New("scene: world not built, call Preprocess first")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Primitives     []geometry.Primitive
	CameraConfig   renderer.CameraConfig
	SamplingConfig SamplingConfig

	world geometry.Accelerator
}

// SamplingConfig contains the render parameters a scene is designed for
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// AcceleratorKind selects the structure answering hit queries
type AcceleratorKind string

const (
	AcceleratorBVH  AcceleratorKind = "bvh"
	AcceleratorList AcceleratorKind = "list"
)

// ParseAccelerator converts a name into an AcceleratorKind
func ParseAccelerator(name string) (AcceleratorKind, error) {
	switch kind := AcceleratorKind(name); kind {
	case AcceleratorBVH, AcceleratorList:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAccelerator, name)
}

// Preprocess builds the acceleration structure over the scene primitives.
// The scene must not be modified afterwards.
func (s *Scene) Preprocess(kind AcceleratorKind, opts geometry.BVHOptions) error {
	switch kind {
	case AcceleratorBVH:
		bvh, err := geometry.NewBVH(s.Primitives, opts)
		if err != nil {
			return fmt.Errorf("scene %q: %w", s.Name, err)
		}
		s.world = bvh
	case AcceleratorList:
		s.world = geometry.NewPrimitiveList(s.Primitives)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAccelerator, kind)
	}
	return nil
}

// World returns the accelerator built by Preprocess
func (s *Scene) World() (geometry.Accelerator, error) {
	if s.world == nil {
		return nil, ErrNotPreprocessed
	}
	return s.world, nil
}

// Camera creates the scene camera for a width x height frame
func (s *Scene) Camera(width, height int) *renderer.Camera {
	config := s.CameraConfig
	if width > 0 && height > 0 {
		config.AspectRatio = float64(width) / float64(height)
	}
	return renderer.NewCamera(config)
}

// GetPrimitiveCount returns the total number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// NewQuad returns the parallelogram corner, corner+u, corner+u+v, corner+v as two
// triangles sharing the normal u x v.
func NewQuad(corner core.Point, u, v core.Vec3, mat material.Material) []geometry.Primitive {
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	return []geometry.Primitive{
		geometry.NewTriangle(corner, p1, p2, mat),
		geometry.NewTriangle(corner, p2, p3, mat),
	}
}

// NewGroundQuad creates a large horizontal quad centered at center with normal (0,1,0)
func NewGroundQuad(center core.Point, size float64, mat material.Material) []geometry.Primitive {
	corner := core.NewVec3(center[core.X]-size/2, center[core.Y], center[core.Z]-size/2)
	// u along Z then v along X keeps u x v pointing up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return NewQuad(corner, u, v, mat)
}
