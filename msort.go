package msort

import (
	"runtime"
)

type (
	// A Thunk is a function that neither receives nor returns any
	// parameters.
	Thunk func()

	// An ErrThunk is a function that receives no parameters and returns
	// only an error value or nil.
	ErrThunk func() error
)

// EffectiveThreads maps a requested thread count to the effective number of
// workers a parallel sort may use.
//
// A requested count of zero or below asks for all available logical CPUs, as
// determined by runtime.GOMAXPROCS(0). A positive count is honored as is,
// except that it is clamped to the number of available logical CPUs; using
// more workers than CPUs only adds scheduling overhead for a compute-bound
// sort.
//
// EffectiveThreads is a pure function of its argument and the current
// GOMAXPROCS setting; there is no library-wide thread configuration.
func EffectiveThreads(n int) int {
	ncpu := runtime.GOMAXPROCS(0)
	if n <= 0 || n > ncpu {
		return ncpu
	}
	return n
}
