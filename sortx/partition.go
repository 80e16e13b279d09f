package sortx

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidRange is returned when a sort range does not satisfy
// 0 <= lo <= hi < len(a).
var ErrInvalidRange = errors.New("sortkit: sort range out of bounds")

// partitionHoare partitions a[lo..hi] around the pivot a[hi] and returns
// the pivot's final index. Two cursors advance from both ends, skipping
// elements already on the correct side (<= pivot on the left, >= pivot on
// the right) and swapping misplaced pairs until they cross; a final swap
// drops the pivot at the crossing point. Fewer swaps than the Lomuto
// variant in practice, so quicksort uses this one.
func partitionHoare[E constraints.Ordered](a []E, lo, hi int) int {
	pivot := a[hi]
	i, j := lo, hi-1
	for {
		for i < hi && a[i] <= pivot {
			i++
		}
		for j > lo && a[j] >= pivot {
			j--
		}
		if i >= j {
			break
		}
		swap(a, i, j)
	}
	swap(a, i, hi)
	return i
}

// partitionLomuto partitions a[lo..hi] around the pivot a[hi] and returns
// the pivot's final index. The boundary starts at hi; every element found
// greater than the pivot is rotated to the far side of it with two swaps,
// shrinking the boundary by one. Valid, but it moves the pivot on every
// rotation and so swaps more than partitionHoare; retained for comparison.
func partitionLomuto[E constraints.Ordered](a []E, lo, hi int) int {
	pivotIndex := hi
	for i := lo; i < pivotIndex; {
		if a[i] > a[pivotIndex] {
			swap(a, i, pivotIndex-1)
			swap(a, pivotIndex-1, pivotIndex)
			pivotIndex--
			// the element rotated into a[i] has not been examined yet
			continue
		}
		i++
	}
	return pivotIndex
}
