package scene

import (
	"fmt"
	"sort"
)

// Builder creates a fresh scene. Scenes with random content derive it from seed.
type Builder func(seed int64) *Scene

type entry struct {
	description string
	build       Builder
}

var builtins = map[string]entry{
	"random": {
		description: "ground, a grid of small random spheres and three large spheres",
		build:       NewRandomScene,
	},
	"simple": {
		description: "three spheres and a hollow glass sphere on a ground sphere",
		build:       func(int64) *Scene { return NewSimpleScene() },
	},
	"triangles": {
		description: "triangle pyramid on a triangle ground quad",
		build:       func(int64) *Scene { return NewTriangleScene() },
	},
	"empty": {
		description: "no primitives, only the sky",
		build:       func(int64) *Scene { return NewEmptyScene() },
	},
}

// New builds the built-in scene with the given name
func New(name string, seed int64) (*Scene, error) {
	e, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return e.build(seed), nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a built-in scene
func Describe(name string) string {
	return builtins[name].description
}
