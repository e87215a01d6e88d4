package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/integrator"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
)

// rowFrame is the read-only state shared by every row task of one frame
type rowFrame struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	width      int
	height     int
	samples    int
	results    chan rowResult // Buffered to height so workers never block on delivery
}

// rowTask represents one image row for the worker pool
type rowTask struct {
	frame *rowFrame
	row   int   // Destination row in the buffer
	seed  int64 // Seed for the worker's sampler while it renders this row
}

// rowResult contains the packed pixels of one row
type rowResult struct {
	row    int
	pixels []uint32
	err    error
}

// WorkerPool manages parallel row rendering. It outlives individual frames:
// each task names the frame it belongs to.
type WorkerPool struct {
	taskQueue  chan rowTask
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup
}

// Worker renders rows with a sampler nobody else touches
type Worker struct {
	ID        int
	sampler   *core.RandomSampler
	taskQueue chan rowTask
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Non-positive counts use one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:  make(chan rowTask, numWorkers*4),
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:        i,
			sampler:   core.NewSeededSampler(int64(i)),
			taskQueue: wp.taskQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers after the queued tasks drain
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// submitTask queues a row task
func (wp *WorkerPool) submitTask(task rowTask) {
	wp.taskQueue <- task
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// The row's seed, not the worker, decides the random stream, so output
		// does not depend on which worker picks the row up
		w.sampler.Reseed(task.seed)
		pixels, err := renderRow(task.frame, task.row, w.sampler)
		task.frame.results <- rowResult{row: task.row, pixels: pixels, err: err}
	}
}

// renderRow averages frame.samples jittered paths for every pixel of row.
// Buffer row 0 is the top of the image, so it maps to the top of the camera plane.
func renderRow(frame *rowFrame, row int, sampler core.Sampler) (pixels []uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			pixels = nil
			err = fmt.Errorf("%w: row %d: %v", ErrWorkerPanic, row, r)
		}
	}()

	pixels = make([]uint32, frame.width)
	invSamples := 1.0 / float64(frame.samples)
	for x := 0; x < frame.width; x++ {
		colorAccum := core.Vec3{}
		for s := 0; s < frame.samples; s++ {
			jitter := sampler.Get2D()
			u := (float64(x) + jitter.X) / float64(frame.width)
			v := (float64(frame.height-1-row) + jitter.Y) / float64(frame.height)

			color, err := frame.integrator.RayColor(frame.camera.GetRay(u, v), frame.scene, sampler)
			if err != nil {
				return nil, fmt.Errorf("pixel (%d, %d): %w", x, row, err)
			}
			colorAccum = colorAccum.Add(color)
		}
		pixels[x] = PackColor(colorAccum.Multiply(invSamples))
	}
	return pixels, nil
}
