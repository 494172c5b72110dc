// Package parallel provides the goroutine pool used for batched noise
// evaluation.
//
// A batch is split into contiguous spans of element indexes (see [Split]).
// Each span is an independent work item: evaluation has no cross-element
// dependency, so spans can run on any worker in any order.
//
// Thread safety: WorkerPool is safe for concurrent use.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines with per-worker queues.
//
// Work is distributed round-robin. A worker whose queue is empty steals from
// the other queues before blocking, which keeps the tail of a batch short
// when spans take uneven time.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds one buffered queue per worker.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// mu orders Run's queueing against Close.
	mu sync.RWMutex

	// running reports whether the pool accepts work.
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return

		case work := <-own:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

// drain runs whatever is left in queue without blocking.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// Run calls fn once for every span and waits until all calls return.
//
// If the pool has been closed, Run executes the spans on the calling
// goroutine instead, so a caller never observes a partially evaluated
// batch.
func (p *WorkerPool) Run(spans []Span, fn func(Span)) {
	if len(spans) == 0 {
		return
	}

	// Holding the read lock keeps Close from stopping the workers while
	// spans are being queued.
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, s := range spans {
			fn(s)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(spans))
	for i, s := range spans {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn(s)
		}
	}
	p.mu.RUnlock()

	wg.Wait()
}

// Close stops the pool after queued work has finished.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
