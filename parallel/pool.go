package parallel

import (
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/exascience/msort/internal"
)

// A Pool is a parallel execution context with a fixed worker budget. It
// plays the role of an OpenMP-style parallel region: recursive fork-join
// algorithms dispatch batches of thunks through Do, and the pool ensures
// that no more than the configured number of workers run concurrently,
// no matter how deeply batches nest.
//
// A Pool holds no goroutines of its own. The goroutine calling Do counts as
// one worker; the remaining budget is handed out to spawned goroutines as
// spawn tokens. When no token is available, a thunk simply runs on the
// calling goroutine, so nested batches can never deadlock on the budget.
//
// A Pool can be shared by multiple goroutines; the budget then bounds the
// spawned fan-out across all of them combined.
type Pool struct {
	workers int
	tokens  *semaphore.Weighted
}

// NewPool returns a parallel execution context with the given worker
// budget. NewPool panics if workers < 1.
//
// A pool with a budget of one never spawns goroutines; every batch runs
// sequentially on the calling goroutine.
func NewPool(workers int) *Pool {
	if workers < 1 {
		panic(fmt.Sprintf("invalid number of workers: %v", workers))
	}
	return &Pool{
		workers: workers,
		tokens:  semaphore.NewWeighted(int64(workers - 1)),
	}
}

// NumWorkers returns the worker budget this pool was created with.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Do receives zero or more thunks and executes them as one fork-join batch
// inside the pool.
//
// Every thunk except the first is invoked in its own goroutine if a spawn
// token is available, and on the calling goroutine otherwise; the first
// thunk always runs on the calling goroutine. Do returns only when all
// thunks have terminated, returning the left-most error value that is
// different from nil.
//
// If one or more thunks panic, the corresponding goroutines recover the
// panics, and Do eventually panics with the left-most recovered panic
// value.
func (p *Pool) Do(thunks ...func() error) error {
	switch len(thunks) {
	case 0:
		return nil
	case 1:
		return thunks[0]()
	}
	errs := make([]error, len(thunks))
	panics := make([]interface{}, len(thunks))
	run := func(i int) {
		defer func() {
			panics[i] = internal.WrapPanic(recover())
		}()
		errs[i] = thunks[i]()
	}
	var wg sync.WaitGroup
	for i := 1; i < len(thunks); i++ {
		if p.tokens.TryAcquire(1) {
			wg.Add(1)
			go func(i int) {
				defer func() {
					p.tokens.Release(1)
					wg.Done()
				}()
				run(i)
			}(i)
		} else {
			run(i)
		}
	}
	run(0)
	wg.Wait()
	for _, pn := range panics {
		if pn != nil {
			panic(pn)
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
