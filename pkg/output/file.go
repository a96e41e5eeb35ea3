package output

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DefaultJPEGQuality is used when a sink does not set one
const DefaultJPEGQuality = 95

// formatFor resolves the image format from a file name extension
func formatFor(path string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return format, nil
}

// FileSink saves the frame to a local file, format chosen by extension
type FileSink struct {
	Path        string
	JPEGQuality int
}

// NewFileSink creates a file sink, rejecting unknown extensions up front
func NewFileSink(path string) (*FileSink, error) {
	if _, err := formatFor(path); err != nil {
		return nil, err
	}
	return &FileSink{Path: path, JPEGQuality: DefaultJPEGQuality}, nil
}

func (s *FileSink) Write(ctx context.Context, width, height int, pix []byte) error {
	img, err := ToImage(width, height, pix)
	if err != nil {
		return err
	}
	return save(img, s.Path, s.JPEGQuality)
}

// ThumbnailSink saves a downscaled copy of the frame that fits into MaxWidth x MaxHeight
type ThumbnailSink struct {
	Path        string
	MaxWidth    uint
	MaxHeight   uint
	JPEGQuality int
}

// NewThumbnailSink creates a thumbnail sink bounded by maxSize on both axes
func NewThumbnailSink(path string, maxSize uint) (*ThumbnailSink, error) {
	if _, err := formatFor(path); err != nil {
		return nil, err
	}
	return &ThumbnailSink{Path: path, MaxWidth: maxSize, MaxHeight: maxSize, JPEGQuality: DefaultJPEGQuality}, nil
}

func (s *ThumbnailSink) Write(ctx context.Context, width, height int, pix []byte) error {
	img, err := ToImage(width, height, pix)
	if err != nil {
		return err
	}
	// Thumbnail keeps the aspect ratio and never upscales
	thumb := resize.Thumbnail(s.MaxWidth, s.MaxHeight, img, resize.Lanczos3)
	return save(thumb, s.Path, s.JPEGQuality)
}

func save(img image.Image, path string, quality int) error {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("output: saving %s: %w", path, err)
	}
	b := img.Bounds()
	logger.Infof("wrote %dx%d image to %s", b.Dx(), b.Dy(), path)
	return nil
}
