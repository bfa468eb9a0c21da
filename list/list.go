package list

import (
	"github.com/npillmayer/cow"
	"github.com/npillmayer/cow/maybe"
)

// List is a singly linked list of values of type T. The zero value is an empty list.
//
// Assigning a List to another variable, or passing it by value, aliases it: the
// aliases observe each other's modifications. Use Copy to get an independent list;
// copies share their nodes until one of them is modified.
// Lists are not safe for concurrent mutation.
type List[T any] struct {
	h *cow.Handle[chain[T]]
}

// New creates a list containing values, in order.
func New[T any](values ...T) List[T] {
	var c chain[T]
	for _, v := range values {
		c.append(v)
	}
	return List[T]{h: cow.Wrap(c)}
}

// Copy returns a list with the same content as l. Copy is O(1).
func (l List[T]) Copy() List[T] {
	return List[T]{h: l.h.Copy()}
}

// handle returns the handle of l, allocating one for a zero value.
func (l *List[T]) handle() *cow.Handle[chain[T]] {
	if l.h == nil {
		l.h = &cow.Handle[chain[T]]{}
	}
	return l.h
}

func (l List[T]) chain() chain[T] {
	if c := l.h.Ref(); c != nil {
		return *c
	}
	return chain[T]{}
}

// --- Inspection ------------------------------------------------------------

// Len returns the number of values in l.
func (l List[T]) Len() int {
	return l.chain().length
}

// IsEmpty is true if l has no values.
func (l List[T]) IsEmpty() bool {
	return l.chain().head == nil
}

// Head returns the first value of l, if any.
func (l List[T]) Head() maybe.Maybe[T] {
	if c := l.chain(); c.head != nil {
		return maybe.Just(c.head.value)
	}
	return maybe.Nothing[T]()
}

// Tail returns the last value of l, if any.
func (l List[T]) Tail() maybe.Maybe[T] {
	if c := l.chain(); c.tail != nil {
		return maybe.Just(c.tail.value)
	}
	return maybe.Nothing[T]()
}

// NodeAt returns the position of the value at index, or Nothing if index is out of range.
func (l List[T]) NodeAt(index int) maybe.Maybe[Position[T]] {
	c := l.chain()
	if n := c.nodeAt(index); n != nil {
		return maybe.Just(Position[T]{node: n, chain: l.h.Ref()})
	}
	return maybe.Nothing[Position[T]]()
}

// Values returns the values of l as a slice, in list order.
func (l List[T]) Values() []T {
	c := l.chain()
	values := make([]T, 0, c.length)
	for n := c.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Each calls f for every value of l, in list order, as long as f returns true.
func (l List[T]) Each(f func(T) bool) {
	for n := l.chain().head; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// String renders the values of l like "1 -> 2 -> 3".
func (l List[T]) String() string {
	return l.chain().String()
}

// --- Mutation --------------------------------------------------------------

// Push inserts value at the head of l.
func (l *List[T]) Push(value T) {
	l.handle().Mutable().push(value)
}

// Append inserts value at the tail of l.
func (l *List[T]) Append(value T) {
	l.handle().Mutable().append(value)
}

// Pop removes the head of l and returns its value, or Nothing if l is empty.
func (l *List[T]) Pop() maybe.Maybe[T] {
	if l.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Of[T](l.handle().Mutable().pop())
}

// RemoveLast removes the tail of l and returns its value, or Nothing if l is empty.
// RemoveLast is O(n).
func (l *List[T]) RemoveLast() maybe.Maybe[T] {
	if l.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Of[T](l.handle().Mutable().removeLast())
}

// InsertAfter inserts value after the node at position p and returns the position
// of the new node. Inserting after the tail is equivalent to Append.
//
// p has to denote a node of l (or of the chain l shared before it has been cloned)
// which has not been removed, otherwise InsertAfter panics.
func (l *List[T]) InsertAfter(value T, p Position[T]) Position[T] {
	assertThat(!p.IsEnd(), "cannot insert after end position")
	c, at := l.mutableAt(p)
	assertThat(at != nil, "position for insert does not belong to list")
	n := c.insertAfter(value, at)
	return Position[T]{node: n, chain: c}
}

// RemoveAfter removes the successor of the node at position p and returns its value.
// If p denotes the tail, the end position, a removed node or a node not belonging
// to l, RemoveAfter returns Nothing and leaves l unchanged.
func (l *List[T]) RemoveAfter(p Position[T]) maybe.Maybe[T] {
	if p.IsEnd() || p.node.next == nil {
		return maybe.Nothing[T]()
	}
	c, at := l.mutableAt(p)
	if at == nil {
		tracer().Debugf("position for remove is stale or does not belong to list")
		return maybe.Nothing[T]()
	}
	return maybe.Of[T](c.removeAfter(at))
}

// mutableAt makes the chain of l exclusive and returns it, together with the node
// corresponding to p. If the chain had to be cloned, the node returned is the clone of
// p's node. If p does not belong to l or its node has been removed, the chain
// remains untouched and at is nil.
func (l *List[T]) mutableAt(p Position[T]) (c *chain[T], at *node[T]) {
	if p.node == nil || p.node.detached || p.chain == nil || p.chain != l.h.Ref() {
		return nil, nil
	}
	at = p.node
	c = l.handle().MutableFunc(func(old *chain[T]) chain[T] {
		var replica chain[T]
		replica, at = old.cloneTracking(p.node)
		return replica
	})
	return c, at
}
