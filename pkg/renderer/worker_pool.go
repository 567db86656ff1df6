package renderer

import (
	"image"
	"math/rand"
	"sync"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Row   int
	Image *image.RGBA // Shared frame buffer; each task owns exactly one row of it
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row      int
	WorkerID int
	Samples  int
	Duration time.Duration
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	renderer    *RowRenderer
	seed        int64
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Queues are sized for a full frame so submitting never blocks.
func NewWorkerPool(rowRenderer *RowRenderer, seed int64, height, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    rowRenderer,
			seed:        seed,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()

		// The row's random stream depends only on the seed and the row, so the
		// image does not depend on which worker picks the task up
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(RowSeed(w.seed, task.Row))))
		samples := w.renderer.RenderRow(task.Row, task.Image, sampler)

		w.resultQueue <- RowResult{
			Row:      task.Row,
			WorkerID: w.ID,
			Samples:  samples,
			Duration: time.Since(start),
		}
	}
}

// RowSeed derives the random seed of one scanline from the render seed
func RowSeed(seed int64, row int) int64 {
	return int64(uint64(seed) + uint64(row+1)*0x9E3779B97F4A7C15)
}
