package renderer

import (
	"time"

	"github.com/sajis997/path-tracer/log"
	"github.com/sajis997/path-tracer/pkg/geometry"
	"github.com/sajis997/path-tracer/pkg/integrator"
)

var logger = log.New("renderer")

// Raytracer renders a world through a camera into a framebuffer
type Raytracer struct {
	world      geometry.Accelerator
	camera     *Camera
	integrator integrator.Integrator
	options    Options
}

// NewRaytracer validates opts and creates a raytracer using the path tracing integrator
func NewRaytracer(world geometry.Accelerator, camera *Camera, opts Options) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	if camera == nil {
		return nil, ErrNoCamera
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	pt := integrator.NewPathTracingIntegrator(opts.MaxDepth)
	pt.TMin = opts.TMin

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: pt,
		options:    opts,
	}, nil
}

// SetIntegrator replaces the integrator used for every sample
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Options returns the effective options, defaults applied
func (rt *Raytracer) Options() Options {
	return rt.options
}

// Render traces the full frame. Tiles are distributed over the worker pool and
// every tile owns its random generator, so the image for a given seed does not
// depend on the number of workers.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	opts := rt.options
	stats := RenderStats{
		Width:           opts.Width,
		Height:          opts.Height,
		SamplesPerPixel: opts.SamplesPerPixel,
		MaxDepth:        opts.MaxDepth,
	}

	if err := CheckFramebufferMemory(opts.Width, opts.Height); err != nil {
		return nil, stats, err
	}
	framebuffer, err := NewFramebuffer(opts.Width, opts.Height)
	if err != nil {
		return nil, stats, err
	}

	start := time.Now()
	tiles := NewTileGrid(opts.Width, opts.Height, opts.TileSize, opts.Seed)
	numWorkers := min(opts.NumWorkers, len(tiles))
	stats.Tiles = len(tiles)

	logger.Infof("rendering %dx%d, %d spp, depth %d: %d tiles on %d workers",
		opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth, len(tiles), numWorkers)

	tileRenderer := NewTileRenderer(rt.world, rt.camera, rt.integrator, framebuffer, opts.SamplesPerPixel)
	pool := NewWorkerPool(tileRenderer, len(tiles), numWorkers)
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	workers := make([]WorkerStats, numWorkers)
	for i := range workers {
		workers[i].WorkerID = i
	}
	for done := 1; done <= len(tiles); done++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		workers[result.WorkerID].add(result.Stats)
		if opts.OnTileDone != nil {
			opts.OnTileDone(done, len(tiles))
		}
	}
	pool.Stop()

	stats.Workers = workers
	for _, w := range workers {
		stats.TotalPixels += w.Pixels
		stats.TotalSamples += w.Samples
		stats.SkippedPixels += w.SkippedPixels
	}
	stats.RenderTime = time.Since(start)

	logger.Infof("frame done in %v (%.0f samples/s)", stats.RenderTime, stats.SamplesPerSecond())
	return framebuffer, stats, nil
}
