package ordered

import (
	"fmt"

	"github.com/npillmayer/cow"
	"github.com/npillmayer/cow/maybe"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Comparator compares two items. It returns a negative number if a < b, zero if
// a == b and a positive number if a > b. It has to define a total order.
type Comparator[T any] func(a, b T) int

// Compare is the natural order of ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Array is an array of items, sorted by a comparator. An Array has to be created
// by one of New, NewFunc or Make.
//
// Assigning an Array to another variable, or passing it by value, aliases it: the
// aliases observe each other's modifications. Use Copy to get an independent array;
// copies share their items until one of them is modified.
// Arrays are not safe for concurrent mutation.
type Array[T any] struct {
	h *cow.Handle[sorted[T]]
}

// New creates an ordered array with the natural order of T, containing items.
func New[T constraints.Ordered](items ...T) Array[T] {
	return NewFunc[T](Compare[T], items...)
}

// NewFunc creates an ordered array with an order defined by cmp, containing items.
func NewFunc[T any](cmp Comparator[T], items ...T) Array[T] {
	assertThat(cmp != nil, "comparator must not be nil")
	s := sorted[T]{items: slices.Clone(items), cmp: cmp}
	slices.SortFunc(s.items, func(a, b T) bool {
		return cmp(a, b) < 0
	})
	return Array[T]{h: cow.Wrap(s)}
}

// Make creates an empty ordered array with an order defined by cmp.
//
//     a := ordered.Make[int](ordered.Compare[int], ordered.Capacity(1024))
//
func Make[T any](cmp Comparator[T], opts ...Option) Array[T] {
	assertThat(cmp != nil, "comparator must not be nil")
	var p props
	for _, option := range opts {
		p = option(p)
	}
	s := sorted[T]{items: make([]T, 0, p.capacity), cmp: cmp}
	return Array[T]{h: cow.Wrap(s)}
}

type props struct {
	capacity int
}

// Option is a type to help initializing arrays at creation time.
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

// Copy returns an array with the same items as a. Copy is O(1).
func (a Array[T]) Copy() Array[T] {
	return Array[T]{h: a.h.Copy()}
}

// handle returns the handle of a, allocating one for a zero value.
func (a *Array[T]) handle() *cow.Handle[sorted[T]] {
	if a.h == nil {
		a.h = &cow.Handle[sorted[T]]{}
	}
	return a.h
}

func (a Array[T]) items() []T {
	if s := a.h.Ref(); s != nil {
		return s.items
	}
	return nil
}

func (a *Array[T]) mutable() *sorted[T] {
	s := a.handle().Mutable()
	assertThat(s.cmp != nil, "array has not been created with a comparator")
	return s
}

// --- Inspection ------------------------------------------------------------

// Len returns the number of items in a.
func (a Array[T]) Len() int {
	return len(a.items())
}

// IsEmpty is true if a has no items.
func (a Array[T]) IsEmpty() bool {
	return len(a.items()) == 0
}

// At returns the item at index i. It panics if i is out of range.
func (a Array[T]) At(i int) T {
	items := a.items()
	assertThat(i >= 0 && i < len(items), "index out of bounds: %d with length %d", i, len(items))
	return items[i]
}

// Min returns the smallest item of a, if any.
func (a Array[T]) Min() maybe.Maybe[T] {
	if items := a.items(); len(items) > 0 {
		return maybe.Just(items[0])
	}
	return maybe.Nothing[T]()
}

// Max returns the greatest item of a, if any.
func (a Array[T]) Max() maybe.Maybe[T] {
	if items := a.items(); len(items) > 0 {
		return maybe.Just(items[len(items)-1])
	}
	return maybe.Nothing[T]()
}

// Contains is true if an item equal to item is in a. Contains is O(log n).
func (a Array[T]) Contains(item T) bool {
	s := a.h.Ref()
	return s != nil && s.findIndex(item) >= 0
}

// Values returns a copy of the items of a, in sorted order.
func (a Array[T]) Values() []T {
	return slices.Clone(a.items())
}

// Each calls f for every item in sorted order, as long as f returns true.
func (a Array[T]) Each(f func(T) bool) {
	for _, item := range a.items() {
		if !f(item) {
			return
		}
	}
}

func (a Array[T]) String() string {
	return fmt.Sprintf("OrderedArray: %v", a.items())
}

// --- Mutation --------------------------------------------------------------

// Insert inserts item in sort order. Equal items are placed next to each other,
// in no defined order.
//
// Complexity is O(n): searching is O(log n), moving the following items is O(n).
func (a *Array[T]) Insert(item T) {
	a.mutable().insert(item)
}

// InsertAll inserts items one after another, in the order given.
func (a *Array[T]) InsertAll(items ...T) {
	if len(items) == 0 {
		return
	}
	s := a.mutable()
	for _, item := range items {
		s.insert(item)
	}
	tracer().Debugf("inserted %d items, length is %d", len(items), len(s.items))
}

// Remove removes an item equal to item and returns it. If no such item exists,
// Remove returns Nothing. If there are several equal items, one of them is removed.
func (a *Array[T]) Remove(item T) maybe.Maybe[T] {
	if !a.Contains(item) {
		return maybe.Nothing[T]()
	}
	return maybe.Of[T](a.mutable().remove(item))
}

// RemoveAll removes every item of items from a, in the order given, and returns the
// items which have been found. Items not found are omitted from the result.
func (a *Array[T]) RemoveAll(items ...T) []T {
	if len(items) == 0 || a.IsEmpty() {
		return []T{}
	}
	removed := make([]T, 0, len(items))
	s, exclusive := a.h.Ref(), false // clone on the first hit only
	for _, item := range items {
		at := s.findIndex(item)
		if at < 0 {
			continue
		}
		if !exclusive {
			s, exclusive = a.mutable(), true
		}
		removed = append(removed, s.removeAt(at))
	}
	return removed
}

// RemoveAt removes the item at index i and returns it. It panics if i is out of range.
func (a *Array[T]) RemoveAt(i int) T {
	n := a.Len()
	assertThat(i >= 0 && i < n, "index out of bounds: %d with length %d", i, n)
	return a.mutable().removeAt(i)
}
