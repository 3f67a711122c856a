package countuniquevalues

import (
	"cmp"
	"errors"
	"fmt"
)

var ErrUnsorted = errors.New("values are not sorted")

// CountUniqueValues returns the number of distinct values in a sorted slice,
// which is the number of runs of equal adjacent values.
//
// values must be sorted in ascending order. This is not checked: for unsorted
// input the result is the number of runs, not the number of distinct values.
func CountUniqueValues[T comparable](values []T) int {
	if len(values) == 0 {
		return 0
	}

	uniques := 1
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			uniques++
		}
	}

	return uniques
}

// CountUniqueValuesChecked is CountUniqueValues for ordered types that
// returns ErrUnsorted instead of a wrong count when values is not sorted.
func CountUniqueValuesChecked[T cmp.Ordered](values []T) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	uniques := 1
	for i := 1; i < len(values); i++ {
		switch cmp.Compare(values[i], values[i-1]) {
		case -1:
			return 0, fmt.Errorf("%w: index %d (%v) is less than index %d (%v)", ErrUnsorted, i, values[i], i-1, values[i-1])
		case 1:
			uniques++
		}
	}

	return uniques, nil
}
