// Package list is a small intrusive doubly-linked list, adapted from a
// circular ring implementation into a plain (non-circular) list with an
// explicit head and tail, since pool bookkeeping needs O(1) "oldest at
// head" splicing between three distinct lists rather than a single ring.
// It is generic over a payload type so callers can recover the owning
// value directly from a Node, without pointer arithmetic.
package list

// Node is embedded by any type that wants to live on a [List]. A Node
// belongs to at most one List at a time. Value should be set once, right
// after construction, to the value the Node is embedded in (or otherwise
// associated with); the list package never assigns it.
type Node[T any] struct {
	next, prev *Node[T]
	owner      *List[T]
	Value      T
}

// Linked reports whether n is currently linked into some List.
func (n *Node[T]) Linked() bool { return n.owner != nil }

// A List is a sequence of Nodes with O(1) push, pop, and removal from any
// position. The zero value is an empty list.
type List[T any] struct {
	head, tail *Node[T]
	length     int
}

// Len returns the number of nodes currently linked into l.
func (l *List[T]) Len() int { return l.length }

// Front returns the oldest node in l, or nil if l is empty.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the newest node in l, or nil if l is empty.
func (l *List[T]) Back() *Node[T] { return l.tail }

// PushBack appends n to the tail of l. n must not already be linked into
// any list.
func (l *List[T]) PushBack(n *Node[T]) {
	if n.owner != nil {
		panic("list: node already linked")
	}
	n.owner = l
	n.prev = l.tail
	n.next = nil
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

// PushFront prepends n to the head of l. n must not already be linked into
// any list.
func (l *List[T]) PushFront(n *Node[T]) {
	if n.owner != nil {
		panic("list: node already linked")
	}
	n.owner = l
	n.next = l.head
	n.prev = nil
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

// Remove unlinks n from whichever list it currently belongs to. It is a
// no-op if n is not linked.
func (n *Node[T]) Remove() {
	l := n.owner
	if l == nil {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next, n.prev, n.owner = nil, nil, nil
	l.length--
}

// MoveToBack unlinks n from its current list (if any) and appends it to
// the tail of l, in a single splice. This is the primitive a Used→Cached
// transition uses: no allocation, no copy of the payload the Node is
// embedded in.
func (n *Node[T]) MoveToBack(l *List[T]) {
	n.Remove()
	l.PushBack(n)
}

// MoveToFront is [MoveToBack]'s head-side counterpart: it unlinks n from
// its current list (if any) and prepends it to the head of l.
func (n *Node[T]) MoveToFront(l *List[T]) {
	n.Remove()
	l.PushFront(n)
}

// Next returns the node following n in its list, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }
