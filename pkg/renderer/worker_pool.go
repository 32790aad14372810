package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Ctx    context.Context
	Row    int         // Raster row index j
	Pixels []core.Vec3 // Destination slice for the row
	TaskID int         // Position of the row in output order
}

// RowResult contains the result from rendering a row
type RowResult struct {
	TaskID int
	Row    int
	Error  error
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
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, maxRows int, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxRows),   // Buffer for all rows
		resultQueue: make(chan RowResult, maxRows), // Buffer for all results
		numWorkers:  numWorkers,
	}

	// Create workers
	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
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
		result := RowResult{TaskID: task.TaskID, Row: task.Row}

		if task.Ctx != nil {
			if err := task.Ctx.Err(); err != nil {
				result.Error = err
				w.resultQueue <- result
				continue
			}
		}

		// Each row has its own slice of the raster, so this is thread-safe
		w.raytracer.RenderRow(task.Row, task.Pixels)
		w.resultQueue <- result
	}
}
