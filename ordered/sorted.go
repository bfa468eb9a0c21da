package ordered

import (
	"golang.org/x/exp/slices"
)

// sorted is the backend store of an ordered array.
//
// Invariant: items is non-decreasing with respect to cmp.
type sorted[T any] struct {
	items []T
	cmp   Comparator[T]
}

func (s sorted[T]) Clone() sorted[T] {
	return sorted[T]{items: slices.Clone(s.items), cmp: s.cmp}
}

func (s *sorted[T]) insert(item T) {
	at := s.insertIndex(item)
	s.items = slices.Insert(s.items, at, item)
}

// remove removes an item equal to item, if present.
func (s *sorted[T]) remove(item T) (T, bool) {
	at := s.findIndex(item)
	if at < 0 {
		var zero T
		return zero, false
	}
	return s.removeAt(at), true
}

func (s *sorted[T]) removeAt(at int) T {
	last := len(s.items) - 1
	item := s.items[at]
	copy(s.items[at:], s.items[at+1:])
	var zero T
	s.items[last] = zero // do not retain a reference to the removed item
	s.items = s.items[:last]
	return item
}

// --- Binary search ---------------------------------------------------------

// insertIndex finds the position to insert item at. Items smaller than the
// minimum go to the front, items greater than the maximum to the back. Otherwise
// the half-open range [0, n-1) is searched; if an equal item is hit, item will
// be placed at its position.
func (s *sorted[T]) insertIndex(item T) int {
	n := len(s.items)
	switch {
	case n == 0:
		return 0
	case s.cmp(item, s.items[0]) < 0:
		return 0
	case s.cmp(item, s.items[n-1]) > 0:
		return n
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		c := s.cmp(item, s.items[mid])
		switch {
		case c > 0:
			lo = mid + 1
		case c < 0:
			hi = mid
		default:
			return mid
		}
	}
	return lo
}

// findIndex searches [0, n) for an item equal to item. If there are duplicates,
// any one of their indices may be returned. If item is not present, findIndex
// returns -1.
func (s *sorted[T]) findIndex(item T) int {
	lo, hi := 0, len(s.items)
	for lo < hi {
		mid := lo + (hi-lo)/2
		c := s.cmp(item, s.items[mid])
		switch {
		case c > 0:
			lo = mid + 1
		case c < 0:
			hi = mid
		default:
			return mid
		}
	}
	return -1
}
