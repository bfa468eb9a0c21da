package queue

import (
	"fmt"

	"github.com/npillmayer/cow"
	"github.com/npillmayer/cow/maybe"
	"golang.org/x/exp/slices"
)

// store is the backend store of a queue. The front of the queue is the first item.
type store[T any] []T

func (st store[T]) Clone() store[T] {
	return slices.Clone(st)
}

// Queue is a first-in-first-out queue. The zero value is an empty queue.
//
// Assigning a Queue to another variable, or passing it by value, aliases it: the
// aliases observe each other's modifications. Use Copy to get an independent queue;
// copies share their items until one of them is modified.
// Queues are not safe for concurrent mutation.
type Queue[T any] struct {
	h *cow.Handle[store[T]]
}

// New creates a queue from items; the first item will be the front.
func New[T any](items ...T) Queue[T] {
	return Queue[T]{h: cow.Wrap(store[T](slices.Clone(items)))}
}

type props struct {
	capacity int
}

// Option is a type to help initializing queues at creation time.
type Option func(props) props

// Capacity is an option to pre-allocate room for n items.
func Capacity(n int) Option {
	return func(p props) props {
		if n > 0 {
			p.capacity = n
		}
		return p
	}
}

// Make creates an empty queue, configured by options.
func Make[T any](opts ...Option) Queue[T] {
	var p props
	for _, option := range opts {
		p = option(p)
	}
	return Queue[T]{h: cow.Wrap(make(store[T], 0, p.capacity))}
}

// Copy returns a queue with the same items as q. Copy is O(1).
func (q Queue[T]) Copy() Queue[T] {
	return Queue[T]{h: q.h.Copy()}
}

// handle returns the handle of q, allocating one for a zero value.
func (q *Queue[T]) handle() *cow.Handle[store[T]] {
	if q.h == nil {
		q.h = &cow.Handle[store[T]]{}
	}
	return q.h
}

func (q Queue[T]) items() store[T] {
	if st := q.h.Ref(); st != nil {
		return *st
	}
	return nil
}

// Enqueue appends item at the back of q.
func (q *Queue[T]) Enqueue(item T) {
	st := q.handle().Mutable()
	*st = append(*st, item)
}

// Dequeue removes the front item of q and returns it, or Nothing if q is empty.
// Following items are moved up, therefore Dequeue is O(n).
func (q *Queue[T]) Dequeue() maybe.Maybe[T] {
	if q.IsEmpty() {
		return maybe.Nothing[T]()
	}
	st := q.handle().Mutable()
	old := *st
	last := len(old) - 1
	item := old[0]
	*st = slices.Delete(old, 0, 1)
	var zero T
	old[last] = zero // slot vacated by Delete
	tracer().Debugf("dequeued %v, %d items left", item, last)
	return maybe.Just(item)
}

// Front returns the front item of q without removing it, or Nothing if q is empty.
func (q Queue[T]) Front() maybe.Maybe[T] {
	st := q.items()
	if len(st) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(st[0])
}

// Len returns the number of items in q.
func (q Queue[T]) Len() int {
	return len(q.items())
}

// IsEmpty is true if q has no items.
func (q Queue[T]) IsEmpty() bool {
	return len(q.items()) == 0
}

// At returns the item at index i, counting from the front of q.
// It panics if i is out of range.
func (q Queue[T]) At(i int) T {
	st := q.items()
	assertThat(i >= 0 && i < len(st), "index out of bounds: %d with length %d", i, len(st))
	return st[i]
}

// Values returns a copy of the items of q, from front to back.
func (q Queue[T]) Values() []T {
	return slices.Clone([]T(q.items()))
}

// Each calls f for every item from front to back, as long as f returns true.
func (q Queue[T]) Each(f func(T) bool) {
	for _, item := range q.items() {
		if !f(item) {
			return
		}
	}
}

func (q Queue[T]) String() string {
	return fmt.Sprintf("Queue: %v", []T(q.items()))
}
