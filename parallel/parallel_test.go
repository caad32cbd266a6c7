package parallel_test

import (
	"errors"
	"fmt"

	"github.com/exascience/msort/parallel"
)

func ExampleDo() {
	var fib func(int) (int, error)

	fib = func(n int) (result int, err error) {
		if n < 0 {
			err = errors.New("invalid argument")
		} else if n < 2 {
			result = n
		} else {
			var n1, n2 int
			err = parallel.Do(
				func() (err error) {
					n1, err = fib(n - 1)
					return
				},
				func() (err error) {
					n2, err = fib(n - 2)
					return
				},
			)
			result = n1 + n2
		}
		return
	}

	result, err := fib(10)
	fmt.Println(result, err)

	_, err = fib(-1)
	fmt.Println(err)

	// Output:
	// 55 <nil>
	// invalid argument
}
