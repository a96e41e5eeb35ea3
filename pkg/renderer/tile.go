package renderer

import (
	"image"
	"math/rand"

	"github.com/sajis997/path-tracer/pkg/core"
)

// Tile represents a rectangular region of the image
type Tile struct {
	ID      int
	Bounds  image.Rectangle
	Sampler core.Sampler // Private sampler, seeded from the tile ID
}

// NewTileGrid splits a width x height frame into tileSize squares, row by row.
// Edge tiles are clipped to the frame. Each tile gets a generator seeded with
// seed + ID so that results do not depend on which worker renders which tile.
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]*Tile, 0, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			id := ty*tilesX + tx
			bounds := image.Rect(
				tx*tileSize,
				ty*tileSize,
				min((tx+1)*tileSize, width),
				min((ty+1)*tileSize, height),
			)
			tiles = append(tiles, &Tile{
				ID:      id,
				Bounds:  bounds,
				Sampler: core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(id)))),
			})
		}
	}
	return tiles
}
