package parallel

import (
	"runtime"
	"sync"
)

// shared holds one process-wide pool per worker count.
var shared sync.Map // map[int]*WorkerPool

// Shared returns the process-wide pool with the given number of workers,
// starting it on first use. If workers is 0 or negative, GOMAXPROCS is used.
//
// Shared pools are never closed. Idle workers block on their queues and
// cost nothing but their stacks.
func Shared(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if p, ok := shared.Load(workers); ok {
		return p.(*WorkerPool)
	}

	p := NewWorkerPool(workers)
	actual, loaded := shared.LoadOrStore(workers, p)
	if loaded {
		// Lost the race; stop the pool nobody will use.
		p.Close()
	}
	return actual.(*WorkerPool)
}
