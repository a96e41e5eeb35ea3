package renderer

import (
	"fmt"
	"math"

	"github.com/sajis997/path-tracer/pkg/core"
)

// BytesPerPixel is the number of channels stored per pixel (R, G, B)
const BytesPerPixel = 3

// Framebuffer is a row-major RGB byte grid with row 0 at the top.
// Concurrent writers must target disjoint pixels.
type Framebuffer struct {
	width  int
	height int
	pix    []byte
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*BytesPerPixel),
	}, nil
}

// SetPixel stores an RGB triple at (x, y)
func (fb *Framebuffer) SetPixel(x, y int, rgb [3]uint8) error {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrPixelOutOfBounds, x, y, fb.width, fb.height)
	}
	offset := (y*fb.width + x) * BytesPerPixel
	copy(fb.pix[offset:offset+BytesPerPixel], rgb[:])
	return nil
}

// Pixel returns the RGB triple at (x, y)
func (fb *Framebuffer) Pixel(x, y int) ([3]uint8, error) {
	var rgb [3]uint8
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return rgb, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrPixelOutOfBounds, x, y, fb.width, fb.height)
	}
	offset := (y*fb.width + x) * BytesPerPixel
	copy(rgb[:], fb.pix[offset:offset+BytesPerPixel])
	return rgb, nil
}

// Bytes returns the underlying buffer of width*height*3 bytes
func (fb *Framebuffer) Bytes() []byte {
	return fb.pix
}

func (fb *Framebuffer) Width() int {
	return fb.width
}

func (fb *Framebuffer) Height() int {
	return fb.height
}

// GammaCorrect averages an accumulated color over samples and maps it to 8-bit
// using gamma 2 (square root), clamped to [0, 0.999] before scaling by 256.
func GammaCorrect(accum core.Color, samples int) [3]uint8 {
	scale := 1.0 / float64(samples)
	return [3]uint8{
		toByte(accum[0] * scale),
		toByte(accum[1] * scale),
		toByte(accum[2] * scale),
	}
}

func toByte(linear float64) uint8 {
	v := math.Sqrt(linear)
	// NaN from negative or NaN input maps to black
	if !(v > 0) {
		return 0
	}
	if v > 0.999 {
		v = 0.999
	}
	return uint8(256 * v)
}
