package renderer

import "errors"

var (
	ErrInvalidDimensions  = errors.New("renderer: invalid frame dimensions")
	ErrInvalidSamples     = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth       = errors.New("renderer: max depth must not be negative")
	ErrInvalidWorkers     = errors.New("renderer: worker count must not be negative")
	ErrInsufficientMemory = errors.New("renderer: insufficient memory for framebuffer")
	ErrPixelOutOfBounds   = errors.New("renderer: pixel out of bounds")
	ErrNoWorld            = errors.New("renderer: no world to render")
	ErrNoCamera           = errors.New("renderer: no camera defined")
)
