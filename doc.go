// Package msort provides a parallel merge sort of int64 keys, together with
// the fork-join building blocks it is made of. It is intended as a low-level
// kernel for code that repeatedly needs sorted index lists, for example when
// building compressed sparse data structures.
//
// Msort provides the following subpackages:
//
// msort/sort provides the sorting kernel itself: a fork-join parallel merge
// sort with a sequential quicksort base case and a pivot-based parallel
// merge.
//
// msort/parallel provides the fork-join executor the kernel runs on: an
// unbounded Do for executing batches of thunks in parallel, and a Pool type
// that bounds the concurrency fan-out of nested fork-join batches.
//
// msort/speculative provides early-terminating variants of parallel
// combinators, used by the parallel sorted-check.
//
// The root package holds shared configuration helpers, most notably the
// mapping from a requested thread count to an effective one.
//
// Msort has been influenced by ideas from Cilk and OpenMP-style task
// parallelism. See http://supertech.csail.mit.edu/papers/steal.pdf for some
// theoretical background.
package msort
