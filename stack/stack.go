package stack

import (
	"fmt"

	"github.com/npillmayer/cow"
	"github.com/npillmayer/cow/maybe"
	"golang.org/x/exp/slices"
)

// store is the backend store of a stack. The top of the stack is the last item.
type store[T any] []T

func (st store[T]) Clone() store[T] {
	return slices.Clone(st)
}

// Stack is a last-in-first-out stack. The zero value is an empty stack.
//
// Assigning a Stack to another variable, or passing it by value, aliases it: the
// aliases observe each other's modifications. Use Copy to get an independent stack;
// copies share their items until one of them is modified.
// Stacks are not safe for concurrent mutation.
type Stack[T any] struct {
	h *cow.Handle[store[T]]
}

// New creates a stack from items; the last item will be the top.
func New[T any](items ...T) Stack[T] {
	return Stack[T]{h: cow.Wrap(store[T](slices.Clone(items)))}
}

type props struct {
	capacity int
}

// Option is a type to help initializing stacks at creation time.
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

// Make creates an empty stack, configured by options.
func Make[T any](opts ...Option) Stack[T] {
	var p props
	for _, option := range opts {
		p = option(p)
	}
	return Stack[T]{h: cow.Wrap(make(store[T], 0, p.capacity))}
}

// Copy returns a stack with the same items as s. Copy is O(1).
func (s Stack[T]) Copy() Stack[T] {
	return Stack[T]{h: s.h.Copy()}
}

// handle returns the handle of s, allocating one for a zero value.
func (s *Stack[T]) handle() *cow.Handle[store[T]] {
	if s.h == nil {
		s.h = &cow.Handle[store[T]]{}
	}
	return s.h
}

func (s Stack[T]) items() store[T] {
	if it := s.h.Ref(); it != nil {
		return *it
	}
	return nil
}

// Push puts item on top of s.
func (s *Stack[T]) Push(item T) {
	it := s.handle().Mutable()
	*it = append(*it, item)
}

// Pop removes the top item of s and returns it, or Nothing if s is empty.
func (s *Stack[T]) Pop() maybe.Maybe[T] {
	if s.IsEmpty() {
		return maybe.Nothing[T]()
	}
	it := s.handle().Mutable()
	last := len(*it) - 1
	item := (*it)[last]
	var zero T
	(*it)[last] = zero
	*it = (*it)[:last]
	tracer().Debugf("popped %v, %d items left", item, last)
	return maybe.Just(item)
}

// Top returns the top item of s without removing it, or Nothing if s is empty.
func (s Stack[T]) Top() maybe.Maybe[T] {
	it := s.items()
	if len(it) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(it[len(it)-1])
}

// Len returns the number of items on s.
func (s Stack[T]) Len() int {
	return len(s.items())
}

// IsEmpty is true if s has no items.
func (s Stack[T]) IsEmpty() bool {
	return len(s.items()) == 0
}

// At returns the item at index i, counting from the bottom of s.
// It panics if i is out of range.
func (s Stack[T]) At(i int) T {
	it := s.items()
	assertThat(i >= 0 && i < len(it), "index out of bounds: %d with length %d", i, len(it))
	return it[i]
}

// Values returns a copy of the items of s, from bottom to top.
func (s Stack[T]) Values() []T {
	return slices.Clone([]T(s.items()))
}

// Each calls f for every item from bottom to top, as long as f returns true.
func (s Stack[T]) Each(f func(T) bool) {
	for _, item := range s.items() {
		if !f(item) {
			return
		}
	}
}

func (s Stack[T]) String() string {
	return fmt.Sprintf("Stack: %v", []T(s.items()))
}
