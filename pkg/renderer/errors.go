package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: width and height must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrNoCamera          = errors.New("renderer: camera is nil")
	ErrClosed            = errors.New("renderer: renderer is closed")
	ErrWorkerPanic       = errors.New("renderer: worker panicked")
)
