package listx

import "golang.org/x/exp/constraints"

// swapValues exchanges the values stored in two nodes. The nodes
// themselves, and the next links between them, stay exactly where they
// are: an external reference to a node keeps pointing at the same list
// position, only its Value may change.
//
// Swapping values instead of relinking nodes is a deliberate choice, not a
// shortcut. A singly linked list has no back pointer, so relinking would
// mean threading predecessor pointers through the whole traversal and
// special-casing the head; value swaps leave the list topology untouched.
func swapValues[E any](n1, n2 *Node[E]) {
	n1.Value, n2.Value = n2.Value, n1.Value
}

// BubbleSort permutes the values of l into ascending order in place.
//
// The counter starts at Len()-1 and bounds each pass: after a full pass
// the current maximum of the unsorted prefix has bubbled to its final
// position, so the next pass compares one pair fewer. The counter bound
// replaces a separate "is it sorted yet" verification pass. Nil, empty and
// single-element lists are no-ops.
func BubbleSort[E constraints.Ordered](l *List[E]) {
	if l == nil || l.size < 2 {
		return
	}
	for counter := l.size - 1; counter > 0; counter-- {
		n := l.head
		for i := 0; i < counter; i++ {
			if n.Value > n.next.Value {
				swapValues(n, n.next)
			}
			n = n.next
		}
	}
}
