/*
Package sort provides a parallel merge sort of int64 keys.

The kernel sorts a caller-supplied array in place, using a caller-supplied
workspace array of the same length as scratch space. Large arrays are split
into four near-equal quarters that are sorted concurrently; sorted runs are
then folded together by a pivot-based parallel merge. Subarrays and combined
merge runs at or below a fixed base-case size are handled by a sequential
in-place quicksort and a sequential two-cursor merge.

Equal keys are not kept in their original order; the sort is not stable.
*/
package sort

import (
	"fmt"
	"sync/atomic"

	"github.com/exascience/msort"
	"github.com/exascience/msort/parallel"
	"github.com/exascience/msort/speculative"
)

// less is the total order the kernel sorts by. Every comparison in the
// merges, the binary search, and the quicksort goes through this one
// function, so substituting another totally ordered fixed-size key only
// requires changing the key type and this comparison.
func less(x, y int64) bool {
	return x < y
}

// checkWorkspace verifies the workspace contract of Sort and SortWithPool:
// w must be at least as long as a and must not be the same array. Violations
// would silently corrupt the output, so they fail fast instead.
func checkWorkspace(a, w []int64) {
	if len(w) < len(a) {
		panic(fmt.Sprintf("msort/sort: workspace of length %v for input of length %v", len(w), len(a)))
	}
	if len(a) > 0 && &a[0] == &w[0] {
		panic("msort/sort: input and workspace alias the same array")
	}
}

// Sort sorts a in ascending order, using w as workspace and up to threads
// concurrent workers.
//
// The workspace must be at least as long as a and must not alias it; Sort
// panics otherwise. The contents of w are meaningless after Sort returns.
// The thread count is normalized with msort.EffectiveThreads; an effective
// count of one sorts a in place with the sequential quicksort and leaves w
// untouched. Any other count opens a new parallel execution context of that
// size for the duration of the call.
//
// A non-nil error is only possible if a thunk dispatched to the executor
// fails; the sort itself has no error paths. On error, a is in an
// unspecified order but still holds the same multiset of keys.
func Sort(a, w []int64, threads int) error {
	checkWorkspace(a, w)
	threads = msort.EffectiveThreads(threads)
	if threads <= 1 {
		quickSort(a)
		return nil
	}
	return mergeSort(parallel.NewPool(threads), a, w[:len(a)])
}

// SortWithPool sorts a in ascending order like Sort, but runs inside the
// caller's existing parallel execution context instead of opening a new
// one. Use it when the calling code itself executes inside a parallel
// region; nesting a fresh pool inside it would oversubscribe the machine.
//
// The workspace contract is the same as for Sort. A pool with a worker
// budget of one sorts sequentially with the quicksort, leaving w untouched.
func SortWithPool(p *parallel.Pool, a, w []int64) error {
	checkWorkspace(a, w)
	if p.NumWorkers() <= 1 {
		quickSort(a)
		return nil
	}
	return mergeSort(p, a, w[:len(a)])
}

const serialCutoff = 10

// IsSorted determines in parallel whether a is already sorted in ascending
// order. It attempts to terminate early when the return value is false.
func IsSorted(a []int64) bool {
	size := len(a)
	if size < basecase {
		for i := 1; i < size; i++ {
			if less(a[i], a[i-1]) {
				return false
			}
		}
		return true
	}
	for i := 1; i < serialCutoff; i++ {
		if less(a[i], a[i-1]) {
			return false
		}
	}
	var done int32
	defer atomic.StoreInt32(&done, 1)
	var pTest func(int, int) bool
	pTest = func(index, size int) bool {
		if size < basecase {
			for i := index; i < index+size; i++ {
				if ((i % 1024) == 0) && (atomic.LoadInt32(&done) != 0) {
					return false
				}
				if less(a[i], a[i-1]) {
					return false
				}
			}
			return true
		}
		half := size / 2
		return speculative.And(
			func() bool { return pTest(index, half) },
			func() bool { return pTest(index+half, size-half) },
		)
	}
	return pTest(serialCutoff, size-serialCutoff)
}
