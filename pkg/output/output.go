package output

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/sajis997/path-tracer/log"
)

var logger = log.New("output")

var (
	ErrMissingBucket     = errors.New("output: missing S3 bucket")
	ErrBufferSize        = errors.New("output: buffer size does not match dimensions")
	ErrUnsupportedFormat = errors.New("output: unsupported image format")
)

// Sink persists a rendered frame given as a row-major RGB byte buffer,
// three bytes per pixel, row 0 at the top.
type Sink interface {
	Write(ctx context.Context, width, height int, pix []byte) error
}

// ToImage converts an RGB buffer into an opaque NRGBA image
func ToImage(width, height int, pix []byte) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*3 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(pix), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pix); i, j = i+3, j+4 {
		img.Pix[j] = pix[i]
		img.Pix[j+1] = pix[i+1]
		img.Pix[j+2] = pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}

// MultiSink writes to every sink in order. All sinks are attempted; the first
// error is returned.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, width, height int, pix []byte) error {
	var firstErr error
	for _, sink := range m {
		if err := sink.Write(ctx, width, height, pix); err != nil {
			logger.Errorf("sink %T failed: %v", sink, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
