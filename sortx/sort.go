package sortx

import "golang.org/x/exp/constraints"

// swap exchanges the elements at indices i and j.
// The caller guarantees both indices are in bounds.
func swap[E any](a []E, i, j int) {
	a[i], a[j] = a[j], a[i]
}

// Bubble sorts a in place, ascending.
//
// Each pass over the unsorted prefix bubbles the current maximum to its
// final position, so the scanned range shrinks by one per pass. The pass
// counter runs from len(a)-1 down to 1; no separate "is it sorted"
// verification pass is needed.
//
// O(n^2) comparisons worst case. Didactic; do not reach for this on
// non-trivial inputs.
func Bubble[E constraints.Ordered](a []E) {
	for pass := len(a) - 1; pass >= 1; pass-- {
		for i := 0; i < pass; i++ {
			if a[i] > a[i+1] {
				swap(a, i, i+1)
			}
		}
	}
}

// Selection sorts a in place, ascending: for each prefix position, scan the
// remaining suffix for the minimum and swap it in. No-op for fewer than two
// elements. O(n^2) comparisons but at most n-1 swaps.
func Selection[E constraints.Ordered](a []E) {
	for i := 0; i < len(a)-1; i++ {
		min := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[min] {
				min = j
			}
		}
		if min != i {
			swap(a, i, min)
		}
	}
}

// Insertion sorts a in place, ascending, by growing a sorted prefix one
// element at a time.
//
// The inner loop scans the whole prefix from the front and swaps whenever
// the new element is smaller than the examined slot, which rotates the
// prefix into place through repeated pairwise swaps. A backward
// shift-based insertion would do fewer comparisons; the scan-and-swap
// form is kept deliberately as the reference behavior of this collection.
func Insertion[E constraints.Ordered](a []E) {
	for i := 1; i < len(a); i++ {
		for j := 0; j < i; j++ {
			if a[i] < a[j] {
				swap(a, i, j)
			}
		}
	}
}

// Quick sorts the whole of a in place, ascending, via recursive quicksort
// with a Hoare-style partition. The pivot is always the range's last
// element: expected O(n log n) on random input, O(n^2) on already-sorted
// or adversarial input. No-op for fewer than two elements.
func Quick[E constraints.Ordered](a []E) {
	if len(a) < 2 {
		return
	}
	quick(a, 0, len(a)-1)
}

// QuickRange sorts a[lo..hi] (both inclusive) in place, ascending.
// It fails fast with ErrInvalidRange unless 0 <= lo <= hi < len(a);
// the rest of the slice is never touched.
func QuickRange[E constraints.Ordered](a []E, lo, hi int) error {
	if lo < 0 || hi >= len(a) || lo > hi {
		return ErrInvalidRange
	}
	quick(a, lo, hi)
	return nil
}

func quick[E constraints.Ordered](a []E, lo, hi int) {
	// base case: two elements need a single compare-and-swap,
	// fewer need nothing
	if hi-lo < 2 {
		if hi-lo == 1 && a[hi] < a[lo] {
			swap(a, lo, hi)
		}
		return
	}
	p := partitionHoare(a, lo, hi)
	quick(a, lo, p-1)
	quick(a, p+1, hi)
}
