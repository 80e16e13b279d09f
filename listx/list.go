package listx

// Node is a single element of a List. Value may be read and written freely;
// the link to the successor belongs to the list and is reachable through
// Next only. There is no back link.
type Node[E any] struct {
	Value E
	next  *Node[E]
}

// Next returns the successor node, or nil at the end of the list.
func (n *Node[E]) Next() *Node[E] {
	return n.next
}

// List is a singly linked list that tracks its element count.
// The zero value is an empty list ready to use.
type List[E any] struct {
	head *Node[E]
	tail *Node[E]
	size int
}

// New returns an empty list.
func New[E any]() *List[E] {
	return &List[E]{}
}

// FromSlice builds a list holding vals in order.
func FromSlice[E any](vals []E) *List[E] {
	l := New[E]()
	for _, v := range vals {
		l.Append(v)
	}
	return l
}

// Append adds v at the end of the list.
func (l *List[E]) Append(v E) {
	n := &Node[E]{Value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Front returns the first node, or nil for an empty list.
func (l *List[E]) Front() *Node[E] {
	return l.head
}

// Len returns the number of elements reachable from the head.
func (l *List[E]) Len() int {
	return l.size
}

// Values returns a snapshot of the stored values in list order.
func (l *List[E]) Values() []E {
	out := make([]E, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}
