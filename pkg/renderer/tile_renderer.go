package renderer

import (
	"time"

	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/geometry"
	"github.com/sajis997/path-tracer/pkg/integrator"
)

// TileRenderer renders the pixels of a tile into a shared framebuffer.
// It holds no mutable state of its own and is shared by all workers.
type TileRenderer struct {
	world           geometry.Accelerator
	camera          *Camera
	integrator      integrator.Integrator
	framebuffer     *Framebuffer
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer writing into framebuffer
func NewTileRenderer(world geometry.Accelerator, camera *Camera, integratorInst integrator.Integrator, framebuffer *Framebuffer, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		world:           world,
		camera:          camera,
		integrator:      integratorInst,
		framebuffer:     framebuffer,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTile renders every pixel in the tile bounds
func (tr *TileRenderer) RenderTile(tile *Tile) TileStats {
	start := time.Now()
	var stats TileStats

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			rgb := GammaCorrect(tr.samplePixel(x, y, tile.Sampler), tr.samplesPerPixel)
			stats.Samples += tr.samplesPerPixel

			if err := tr.framebuffer.SetPixel(x, y, rgb); err != nil {
				logger.Errorf("tile %d: skipping pixel: %v", tile.ID, err)
				stats.SkippedPixels++
				continue
			}
			stats.Pixels++
		}
	}

	stats.Duration = time.Since(start)
	return stats
}

// samplePixel sums samplesPerPixel jittered radiance estimates for pixel (x, y).
// Row 0 is the top of the image so the vertical coordinate is flipped.
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler) core.Color {
	width := float64(max(tr.framebuffer.Width()-1, 1))
	height := float64(max(tr.framebuffer.Height()-1, 1))

	var accum core.Color
	for s := 0; s < tr.samplesPerPixel; s++ {
		jitter := sampler.Get2D()
		u := (float64(x) + jitter[0]) / width
		v := 1.0 - (float64(y)+jitter[1])/height

		ray := tr.camera.GetRay(u, v, sampler)
		accum = accum.Add(tr.integrator.RayColor(ray, tr.world, sampler))
	}
	return accum
}
