package list

import (
	"fmt"
	"strings"
)

// node is a link in a chain. Nodes may be part of a chain shared by several lists,
// therefore nodes reachable from a shared chain are never modified.
// A node unlinked from its chain is flagged as detached; positions denoting it are
// rejected by mutating operations.
type node[T any] struct {
	value    T
	next     *node[T]
	detached bool
}

// chain is the backend store of a list.
//
// Invariant: tail is reachable from head and tail.next is nil; head and tail are
// either both nil or both non-nil.
type chain[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// Clone replicates the nodes of c, preserving the order of values.
func (c chain[T]) Clone() chain[T] {
	cow, _ := c.cloneTracking(nil)
	return cow
}

// cloneTracking replicates the nodes of c and returns, within the same traversal, the
// counterpart of n in the replica. If n is not part of c, the counterpart is nil.
func (c chain[T]) cloneTracking(n *node[T]) (chain[T], *node[T]) {
	var cow chain[T]
	var counterpart *node[T]
	for old := c.head; old != nil; old = old.next {
		cow.append(old.value)
		if old == n {
			counterpart = cow.tail
		}
	}
	tracer().Debugf("cloned chain of length %d", cow.length)
	return cow, counterpart
}

func (c *chain[T]) push(value T) {
	c.head = &node[T]{value: value, next: c.head}
	if c.tail == nil {
		c.tail = c.head
	}
	c.length++
}

func (c *chain[T]) append(value T) {
	if c.head == nil {
		c.push(value)
		return
	}
	c.tail.next = &node[T]{value: value}
	c.tail = c.tail.next
	c.length++
}

// nodeAt walks from the head and returns the node at position index, or nil.
func (c *chain[T]) nodeAt(index int) *node[T] {
	if index < 0 {
		return nil
	}
	n := c.head
	for i := 0; n != nil && i < index; i++ {
		n = n.next
	}
	return n
}

// insertAfter splices a new node after n and returns it.
func (c *chain[T]) insertAfter(value T, n *node[T]) *node[T] {
	if n == c.tail {
		c.append(value)
		return c.tail
	}
	n.next = &node[T]{value: value, next: n.next}
	c.length++
	return n.next
}

func (c *chain[T]) pop() (T, bool) {
	var value T
	if c.head == nil {
		return value, false
	}
	value = c.head.value
	c.head.detached = true
	c.head = c.head.next
	if c.head == nil {
		c.tail = nil
	}
	c.length--
	return value, true
}

func (c *chain[T]) removeLast() (T, bool) {
	if c.head == nil || c.head.next == nil {
		return c.pop()
	}
	prev := c.head
	for prev.next != c.tail {
		prev = prev.next
	}
	value := c.tail.value
	c.tail.detached = true
	prev.next = nil
	c.tail = prev
	c.length--
	return value, true
}

// removeAfter unlinks the successor of n. If the successor is the tail,
// n becomes the new tail.
func (c *chain[T]) removeAfter(n *node[T]) (T, bool) {
	var value T
	if n == nil || n.detached || n.next == nil {
		return value, false
	}
	removed := n.next
	removed.detached = true
	if removed == c.tail {
		c.tail = n
	}
	n.next = removed.next
	c.length--
	return removed.value, true
}

func (c chain[T]) String() string {
	if c.head == nil {
		return "Empty list"
	}
	b := strings.Builder{}
	for n := c.head; n != nil; n = n.next {
		if n != c.head {
			b.WriteString(" -> ")
		}
		b.WriteString(fmt.Sprintf("%v", n.value))
	}
	return b.String()
}
