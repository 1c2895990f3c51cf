package measure

import (
	"runtime"
	"sync"
)

// WorkerPool runs the independent sub-feature searches concurrently. One
// pool is shared across all pipeline invocations; jobs carry no state of
// their own, so no locking beyond the queue is needed.
type WorkerPool struct {
	workers  int
	jobQueue chan func()
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Workers <= 0 defaults to one worker per CPU.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &WorkerPool{
		workers:  workers,
		jobQueue: make(chan func(), workers*2),
	}
}

// Start launches the workers. Calling Start more than once is a no-op.
func (wp *WorkerPool) Start() {
	wp.once.Do(func() {
		for i := 0; i < wp.workers; i++ {
			go wp.worker()
		}
	})
}

func (wp *WorkerPool) worker() {
	for job := range wp.jobQueue {
		job()
		wp.wg.Done()
	}
}

// Submit queues a job for execution.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Close shuts down the worker pool. No jobs may be submitted afterwards.
func (wp *WorkerPool) Close() {
	close(wp.jobQueue)
}
