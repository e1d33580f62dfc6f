package parallel

import (
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrPoolClosed is returned by Submit once Join has been called.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a unit of work executed by a pool worker.
type Task func() error

// Pool is a fixed set of worker goroutines consuming a shared task queue.
// Workers are started by NewPool and live until Join closes the queue.
type Pool struct {
	size  int
	tasks chan Task
	group errgroup.Group

	mu     sync.Mutex
	closed bool
}

// NewPool starts a pool of the given size. A non-positive size uses
// runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		size:  workers,
		tasks: make(chan Task, workers),
	}
	for i := 0; i < workers; i++ {
		p.group.Go(p.worker)
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Submit queues task for execution. It blocks while the queue is full.
func (p *Pool) Submit(task Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.tasks <- task
	return nil
}

// Join closes the queue and blocks until every worker has drained it and
// exited. It returns the first error or recovered panic raised by any task.
// Join may be called more than once.
func (p *Pool) Join() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	return p.group.Wait()
}

// worker keeps consuming after a failed task so that a single failure never
// leaves queued tasks unprocessed.
func (p *Pool) worker() error {
	var first error
	for task := range p.tasks {
		if err := run(task); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func run(task Task) (err error) {
	defer Recover(&err)
	return task()
}
