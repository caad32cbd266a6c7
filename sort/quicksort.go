package sort

// insertionCutoff is the span length at or below which quickSort switches
// to insertion sort.
const insertionCutoff = 12

func insertionSort(a []int64) {
	for i := 1; i < len(a); i++ {
		x := a[i]
		j := i - 1
		for j >= 0 && less(x, a[j]) {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = x
	}
}

func medianOfThree(a []int64, l, m, r int) int {
	if less(a[l], a[m]) {
		if less(a[m], a[r]) {
			return m
		} else if less(a[l], a[r]) {
			return r
		}
	} else if less(a[r], a[m]) {
		return m
	} else if less(a[r], a[l]) {
		return r
	}
	return l
}

func pseudoMedianOfNine(a []int64) int {
	offset := len(a) / 8
	return medianOfThree(a,
		medianOfThree(a, 0, offset, offset*2),
		medianOfThree(a, offset*3, offset*4, offset*5),
		medianOfThree(a, offset*6, offset*7, len(a)-1),
	)
}

// quickSort sorts a in ascending order in place with a sequential
// quicksort. It is the base case of the parallel merge sort and the whole
// sort for a worker budget of one. Not stable.
func quickSort(a []int64) {
	for len(a) > insertionCutoff {
		m := pseudoMedianOfNine(a)
		if m > 0 {
			a[0], a[m] = a[m], a[0]
		}
		i, j := 0, len(a)
	outer:
		for {
			for {
				j--
				if !less(a[0], a[j]) {
					break
				}
			}
			for {
				if i == j {
					break outer
				}
				i++
				if !less(a[i], a[0]) {
					break
				}
			}
			if i == j {
				break outer
			}
			a[i], a[j] = a[j], a[i]
		}
		a[j], a[0] = a[0], a[j]
		// recurse into the smaller partition, iterate on the larger one
		if j < len(a)-(j+1) {
			quickSort(a[:j])
			a = a[j+1:]
		} else {
			quickSort(a[j+1:])
			a = a[:j]
		}
	}
	insertionSort(a)
}
