package renderer

import (
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/integrator"
	"github.com/df07/go-cpu-pathtracer/pkg/log"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
)

// Renderer renders whole frames on a persistent worker pool. Every frame is
// recomputed from scratch; nothing carries over between frames.
type Renderer struct {
	config     Config
	logger     core.Logger
	integrator integrator.Integrator
	pool       *WorkerPool

	mu     sync.RWMutex
	closed bool
}

// NewRenderer starts a renderer. Zero fields of config take their defaults and
// a nil logger selects the package logger.
func NewRenderer(config Config, logger core.Logger) *Renderer {
	config = MergeConfig(DefaultConfig(), config)
	if logger == nil {
		logger = log.New("renderer")
	}

	pool := NewWorkerPool(config.NumWorkers)
	pool.Start()
	config.NumWorkers = pool.GetNumWorkers()

	return &Renderer{
		config:     config,
		logger:     logger,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, config.TMin),
		pool:       pool,
	}
}

// Config returns the effective configuration
func (r *Renderer) Config() Config {
	config := r.config
	config.Seed = SeedValue(*r.config.Seed)
	return config
}

// SetIntegrator replaces the light transport algorithm for subsequent frames
func (r *Renderer) SetIntegrator(i integrator.Integrator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.integrator = i
}

// RenderFrame renders sc through camera into a width x height buffer at the
// configured sample count. The scene is validated and frozen before any row is
// dispatched. If any row fails the whole frame fails and no buffer is returned.
func (r *Renderer) RenderFrame(sc *scene.Scene, camera *geometry.Camera, width, height int) (*PixelBuffer, RenderStats, error) {
	return r.RenderFrameSamples(sc, camera, width, height, r.config.SamplesPerPixel)
}

// RenderFrameSamples is RenderFrame with a per-frame sample count
func (r *Renderer) RenderFrameSamples(sc *scene.Scene, camera *geometry.Camera, width, height, samplesPerPixel int) (*PixelBuffer, RenderStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		Workers:         r.pool.GetNumWorkers(),
	}

	if r.closed {
		return nil, stats, ErrClosed
	}
	if width <= 0 || height <= 0 {
		return nil, stats, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if samplesPerPixel <= 0 {
		return nil, stats, fmt.Errorf("%w: got %d", ErrInvalidSamples, samplesPerPixel)
	}
	if camera == nil {
		return nil, stats, ErrNoCamera
	}
	if err := sc.Prepare(); err != nil {
		r.logger.Errorf("scene rejected: %v", err)
		return nil, stats, fmt.Errorf("renderer: invalid scene: %w", err)
	}

	frame := &rowFrame{
		scene:      sc,
		camera:     camera,
		integrator: r.integrator,
		width:      width,
		height:     height,
		samples:    samplesPerPixel,
		results:    make(chan rowResult, height),
	}

	r.logger.Debugf("rendering %dx%d at %d spp on %d workers", width, height, frame.samples, stats.Workers)
	start := time.Now()

	for row := 0; row < height; row++ {
		r.pool.submitTask(rowTask{frame: frame, row: row, seed: *r.config.Seed + int64(row)})
	}

	// Rows arrive in completion order and land at their own index
	buffer := NewPixelBuffer(width, height)
	var firstErr error
	for i := 0; i < height; i++ {
		result := <-frame.results
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		copy(buffer.Row(result.row), result.pixels)
		stats.Rows++
	}

	stats.Duration = time.Since(start)
	if firstErr != nil {
		r.logger.Errorf("frame failed: %v", firstErr)
		return nil, stats, firstErr
	}

	stats.TotalPixels = width * height
	stats.TotalSamples = stats.TotalPixels * frame.samples
	r.logger.Infof("rendered %dx%d in %v (%.0f samples/s)", width, height, stats.Duration, stats.SamplesPerSecond())

	return buffer, stats, nil
}

// Close stops the worker pool once in-flight frames finish
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.pool.Stop()
}

// RenderFrame renders one frame with default settings and samplesPerPixel samples
func RenderFrame(sc *scene.Scene, camera *geometry.Camera, width, height, samplesPerPixel int) (*PixelBuffer, error) {
	if samplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSamples, samplesPerPixel)
	}
	r := NewRenderer(Config{SamplesPerPixel: samplesPerPixel}, nil)
	defer r.Close()

	buffer, _, err := r.RenderFrame(sc, camera, width, height)
	return buffer, err
}
