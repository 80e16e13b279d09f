package heapx

import "golang.org/x/exp/constraints"

// maxHeap is a binary max-heap stored implicitly in a borrowed slice:
// children of index i live at 2i+1 and 2i+2, no explicit links. The heap
// does not own the slice; it is a short-lived view used for the duration
// of one Sort call. capacity is fixed at construction and never changes,
// the heap only ever shrinks as roots are extracted.
type maxHeap[E constraints.Ordered] struct {
	arr       []E
	lastIndex int
	capacity  int
}

// siftUp moves the value at index i toward the root, swapping with its
// parent at (i-1)/2 while the parent is smaller.
func siftUp[E constraints.Ordered](a []E, i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if a[parent] >= a[i] {
			break
		}
		a[parent], a[i] = a[i], a[parent]
		i = parent
	}
}

// siftDown moves the value at index i toward the leaves, swapping with the
// larger of its children while that child exceeds it. last bounds the heap:
// indices beyond it are no longer part of the heap. Iterative, no recursion.
func siftDown[E constraints.Ordered](a []E, i, last int) {
	for {
		left := 2*i + 1
		if left > last {
			break
		}
		child := left
		if right := left + 1; right <= last && a[right] > a[left] {
			child = right
		}
		if a[child] <= a[i] {
			break
		}
		a[i], a[child] = a[child], a[i]
		i = child
	}
}

// Heapify rearranges a into a max-heap in place: sift-down from the last
// non-leaf at (len(a)-2)/2 back to the root. O(n), and therefore preferred
// over the top-down variant. Safe on empty and single-element slices.
func Heapify[E constraints.Ordered](a []E) {
	last := len(a) - 1
	for i := (last - 1) / 2; i >= 0; i-- {
		siftDown(a, i, last)
	}
}

// heapifyTopDown builds the heap by treating the array as growing one
// inserted element at a time from the left, sifting each new element up.
// O(n log n); retained for comparison against Heapify.
func heapifyTopDown[E constraints.Ordered](a []E) {
	for i := 1; i < len(a); i++ {
		siftUp(a, i)
	}
}

// extractAll repeatedly swaps the root (the maximum of the remaining heap)
// with the element at lastIndex and shrinks the heap by one, restoring the
// heap property with a sift-down from the root. When the heap is down to a
// single element the backing array is in ascending order, index 0 holding
// the global minimum.
func (h *maxHeap[E]) extractAll() {
	for h.lastIndex > 0 {
		h.arr[0], h.arr[h.lastIndex] = h.arr[h.lastIndex], h.arr[0]
		h.lastIndex--
		siftDown(h.arr, 0, h.lastIndex)
	}
}

// Sort sorts a in place, ascending: bottom-up heap construction followed by
// repeated root extraction. The transient heap state borrows a and is
// discarded when the call returns; the slice is never grown, shrunk or
// reallocated. O(n log n) in every case, O(1) auxiliary space. No-op for
// fewer than two elements.
func Sort[E constraints.Ordered](a []E) {
	if len(a) < 2 {
		return
	}
	Heapify(a)
	h := maxHeap[E]{arr: a, lastIndex: len(a) - 1, capacity: len(a)}
	h.extractAll()
}
