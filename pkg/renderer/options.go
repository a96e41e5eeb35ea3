package renderer

import (
	"fmt"

	"github.com/sajis997/path-tracer/pkg/integrator"
)

// DefaultTileSize is the edge length of square render tiles
const DefaultTileSize = 32

type Options struct {
	// Frame dims.
	Width  int
	Height int

	// Number of samples averaged into every pixel.
	SamplesPerPixel int

	// Maximum number of ray segments followed per sample.
	MaxDepth int

	// Tile edge length. Zero selects DefaultTileSize.
	TileSize int

	// Number of render goroutines. Zero selects the logical CPU count.
	NumWorkers int

	// Base seed for the per-tile random generators.
	Seed int64

	// Lower bound for hit queries. Zero selects integrator.DefaultTMin.
	TMin float64

	// Invoked from the collecting goroutine after each finished tile.
	OnTileDone func(done, total int)
}

// DefaultOptions returns a small, quick configuration
func DefaultOptions() Options {
	return Options{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileSize:        DefaultTileSize,
		Seed:            42,
		TMin:            integrator.DefaultTMin,
	}
}

// Validate reports the first invalid field
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	if o.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, o.SamplesPerPixel)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, o.MaxDepth)
	}
	if o.NumWorkers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, o.NumWorkers)
	}
	return nil
}

// withDefaults fills zero-valued optional fields
func (o Options) withDefaults() Options {
	if o.TileSize <= 0 {
		o.TileSize = DefaultTileSize
	}
	if o.NumWorkers == 0 {
		o.NumWorkers = DefaultWorkerCount()
	}
	if o.TMin <= 0 {
		o.TMin = integrator.DefaultTMin
	}
	return o
}
