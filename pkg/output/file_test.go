package output

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestFileSinkPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	sink, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := sink.Write(context.Background(), 16, 8, gradient(16, 8)); err != nil {
		t.Fatalf("Unexpected write error: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Unable to read back image: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Fatalf("Expected 16x8 image, got %v", img.Bounds())
	}

	r, g, b, _ := img.At(5, 7).RGBA()
	if r>>8 != 5 || g>>8 != 7 || b>>8 != 200 {
		t.Errorf("Expected (5,7,200), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestFileSinkJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.jpg")
	sink, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := sink.Write(context.Background(), 16, 16, gradient(16, 16)); err != nil {
		t.Fatalf("Unexpected write error: %v", err)
	}
	if _, err := imaging.Open(path); err != nil {
		t.Errorf("Unable to read back image: %v", err)
	}
}

func TestFileSinkRejectsUnknownExtension(t *testing.T) {
	if _, err := NewFileSink("frame.ppm"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := NewThumbnailSink("thumb", 64); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFileSinkBadBuffer(t *testing.T) {
	sink, err := NewFileSink(filepath.Join(t.TempDir(), "frame.png"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := sink.Write(context.Background(), 4, 4, make([]byte, 10)); !errors.Is(err, ErrBufferSize) {
		t.Errorf("Expected ErrBufferSize, got %v", err)
	}
}

func TestThumbnailSinkKeepsAspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumb.png")
	sink, err := NewThumbnailSink(path, 50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := sink.Write(context.Background(), 200, 100, gradient(200, 100)); err != nil {
		t.Fatalf("Unexpected write error: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Unable to read back thumbnail: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 25 {
		t.Errorf("Expected 50x25 thumbnail, got %v", img.Bounds())
	}
}
