// Package speculative provides variants of the combinators in package
// parallel that terminate early when the final result is known before all
// invoked functions have terminated.
//
// None of the functions in this package stop the execution of invoked
// functions that may still be running in parallel in case of early
// termination. Panics in such functions may not propagate to the invoking
// goroutine.
package speculative

import (
	"sync"

	"github.com/exascience/msort/internal"
)

// And receives zero or more predicate functions and executes them in
// parallel.
//
// Each predicate is invoked in its own goroutine, combining all return
// values with the && operator, with true as the default return value. And
// returns early with false as soon as a predicate executed on the invoking
// goroutine returns false, without waiting for the remaining predicates to
// terminate.
//
// If one or more predicates panic, the corresponding goroutines recover the
// panics, and And eventually panics with the left-most recovered panic
// value, unless it terminates early.
func And(predicates ...func() bool) (result bool) {
	switch len(predicates) {
	case 0:
		return true
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = predicates[1]()
		}()
		b0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = And(predicates[half:]...)
		}()
		b0 = And(predicates[:half]...)
	}
	if !b0 {
		return false
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}
