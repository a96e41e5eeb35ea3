package output

import (
	"context"
	"errors"
	"testing"
)

// gradient returns a width x height RGB buffer whose red channel encodes x and green encodes y
func gradient(width, height int) []byte {
	pix := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			pix[i] = uint8(x)
			pix[i+1] = uint8(y)
			pix[i+2] = 200
		}
	}
	return pix
}

func TestToImage(t *testing.T) {
	img, err := ToImage(4, 3, gradient(4, 3))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("Expected 4x3 image, got %v", img.Bounds())
	}

	c := img.NRGBAAt(3, 2)
	if c.R != 3 || c.G != 2 || c.B != 200 || c.A != 0xff {
		t.Errorf("Expected (3,2,200,255), got %v", c)
	}
}

func TestToImageSizeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		size          int
	}{
		{"short buffer", 4, 3, 35},
		{"long buffer", 4, 3, 37},
		{"zero width", 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToImage(tt.width, tt.height, make([]byte, tt.size)); !errors.Is(err, ErrBufferSize) {
				t.Errorf("Expected ErrBufferSize, got %v", err)
			}
		})
	}
}

type recordingSink struct {
	calls int
	err   error
}

func (s *recordingSink) Write(ctx context.Context, width, height int, pix []byte) error {
	s.calls++
	return s.err
}

func TestMultiSinkWritesAll(t *testing.T) {
	failure := errors.New("disk full")
	first := &recordingSink{err: failure}
	second := &recordingSink{}
	third := &recordingSink{err: errors.New("later failure")}

	err := MultiSink{first, second, third}.Write(context.Background(), 2, 2, gradient(2, 2))
	if !errors.Is(err, failure) {
		t.Errorf("Expected first error, got %v", err)
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 1 {
		t.Errorf("Expected every sink to be written once, got %d %d %d", first.calls, second.calls, third.calls)
	}

	if err := (MultiSink{}).Write(context.Background(), 2, 2, gradient(2, 2)); err != nil {
		t.Errorf("Expected empty MultiSink to succeed, got %v", err)
	}
}
