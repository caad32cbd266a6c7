package sort

import (
	"github.com/exascience/msort/parallel"
)

// basecase is the size threshold below which sequential strategies are
// used: subarrays of at most basecase keys are sorted with the sequential
// quicksort, and merges whose combined run length stays below basecase run
// on a single worker.
const basecase = 0x400

// mergeSequential merges left and right, both sorted ascending, into s. The
// output must have length len(left)+len(right) and must not overlap either
// input. Inputs are never mutated. On equal keys the left element is
// emitted first.
func mergeSequential(s, left, right []int64) {
	p, pleft, pright := 0, 0, 0
	for pleft < len(left) && pright < len(right) {
		if less(right[pright], left[pleft]) {
			s[p] = right[pright]
			pright++
		} else {
			s[p] = left[pleft]
			pleft++
		}
		p++
	}

	// either input is exhausted; copy the remaining run into s
	if pleft < len(left) {
		copy(s[p:], left[pleft:])
	} else if pright < len(right) {
		copy(s[p:], right[pright:])
	}
}

// pivotRank binary-searches smaller, sorted ascending, for the insertion
// rank of pivot: every element before the returned index is less than
// pivot, and every element at or after it is not. When duplicates of pivot
// appear in smaller, the returned index lands on one of them, preserving
// the same partition property.
func pivotRank(smaller []int64, pivot int64) int {
	pleft, pright := 0, len(smaller)-1
	for pleft < pright {
		pmiddle := (pleft + pright) / 2
		if less(smaller[pmiddle], pivot) {
			// if in the list, pivot appears in [pmiddle+1..pright]
			pleft = pmiddle + 1
		} else {
			// if in the list, pivot appears in [pleft..pmiddle]
			pright = pmiddle
		}
	}

	// The bracket is narrowed down to a single index, or smaller is empty
	// and the loop never ran. One more comparison resolves the boundary
	// when the single remaining element is still less than the pivot.
	if pleft == pright && less(smaller[pleft], pivot) {
		pleft++
	}
	return pleft
}

// mergeParallel merges bigger and smaller, both sorted ascending with
// len(bigger) >= len(smaller), into s using two concurrent sub-merges.
//
// The pivot at the midpoint of bigger splits both inputs: the first
// sub-merge receives the keys below the pivot's rank on either side, the
// second sub-merge the rest. Every key routed to the first sub-merge
// compares less than or equal to every key routed to the second, so the
// two output spans are contiguous, disjoint, and collectively exhaustive.
func mergeParallel(p *parallel.Pool, s, bigger, smaller []int64) error {
	nhalf := len(bigger) / 2
	pivot := bigger[nhalf]
	pleft := pivotRank(smaller, pivot)
	nsplit := nhalf + pleft
	return p.Do(
		func() error { return merge(p, s[:nsplit], bigger[:nhalf], smaller[:pleft]) },
		func() error { return merge(p, s[nsplit:], bigger[nhalf:], smaller[pleft:]) },
	)
}

// merge merges left and right, both sorted ascending, into s, choosing the
// sequential merge when the combined run length stays below the base case
// and the parallel merge otherwise. The parallel merge requires its first
// input to be the bigger of the two runs.
func merge(p *parallel.Pool, s, left, right []int64) error {
	if len(left)+len(right) < basecase {
		mergeSequential(s, left, right)
		return nil
	}
	if len(left) >= len(right) {
		return mergeParallel(p, s, left, right)
	}
	return mergeParallel(p, s, right, left)
}

// mergeSort sorts a in ascending order in place, using w, of the same
// length, as workspace. Subarrays at or below the base case are sorted with
// the sequential quicksort and leave w untouched.
//
// Above the base case, a is split into four near-equal quarters by halving
// the length twice. The four quarters are sorted concurrently, each using
// the matching quarter of w as its private scratch; the two quarter pairs
// are then merged concurrently into the two halves of w; and the halves of
// w are merged back into a. Each batch joins before the next phase starts,
// so concurrently running tasks always hold disjoint subslices of a and w.
func mergeSort(p *parallel.Pool, a, w []int64) error {
	n := len(a)
	if n <= basecase {
		quickSort(a)
		return nil
	}

	n12 := n / 2 // split n into n12 and n34
	n34 := n - n12

	n1 := n12 / 2 // split n12 into n1 and n2
	n3 := n34 / 2 // split n34 into n3 and n4

	n123 := n12 + n3 // start of the 4th quarter

	// sort each quarter of a in parallel, using w as workspace
	err := p.Do(
		func() error { return mergeSort(p, a[:n1], w[:n1]) },
		func() error { return mergeSort(p, a[n1:n12], w[n1:n12]) },
		func() error { return mergeSort(p, a[n12:n123], w[n12:n123]) },
		func() error { return mergeSort(p, a[n123:n], w[n123:n]) },
	)
	if err != nil {
		return err
	}

	// merge pairs of quarters of a into the two halves of w, in parallel
	err = p.Do(
		func() error { return merge(p, w[:n12], a[:n1], a[n1:n12]) },
		func() error { return merge(p, w[n12:n], a[n12:n123], a[n123:n]) },
	)
	if err != nil {
		return err
	}

	// merge the two halves of w back into a
	return merge(p, a, w[:n12], w[n12:n])
}
