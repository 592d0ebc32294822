package lint

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrPoolShutdown is returned when submitting to a shutdown pool.
var ErrPoolShutdown = errors.New("worker pool has been shut down")

// workerPool fans commit evaluations out over a fixed number of workers.
// Parsing and rule evaluation are pure functions of a single commit, so
// workers share no state and need no locking; the only synchronization
// point is the fan-in in runOrdered.
type workerPool struct {
	taskQueue chan func()
	wg        sync.WaitGroup
	shutdown  atomic.Bool
	once      sync.Once
}

func newWorkerPool(workers int) *workerPool {
	if workers <= 0 {
		workers = 4
	}
	pool := &workerPool{
		taskQueue: make(chan func(), workers*4),
	}
	for range workers {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

func (p *workerPool) worker() {
	defer p.wg.Done()
	for task := range p.taskQueue {
		task()
	}
}

// submit queues a task for execution.
func (p *workerPool) submit(task func()) error {
	if p.shutdown.Load() {
		return ErrPoolShutdown
	}
	p.taskQueue <- task
	return nil
}

// close shuts the pool down and waits for queued tasks to complete.
// Safe to call more than once.
func (p *workerPool) close() {
	p.once.Do(func() {
		p.shutdown.Store(true)
		close(p.taskQueue)
		p.wg.Wait()
	})
}

// runOrdered executes tasks in parallel and returns their results in
// input order.
func runOrdered[T any](pool *workerPool, tasks []func() T) []T {
	if len(tasks) == 0 {
		return nil
	}

	results := make([]T, len(tasks))
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		if err := pool.submit(func() {
			defer wg.Done()
			results[i] = task()
		}); err != nil {
			wg.Done()
		}
	}

	wg.Wait()
	return results
}
