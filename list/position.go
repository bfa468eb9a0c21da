package list

// Position is an opaque handle to a node of a list, or to the end of a list.
// Positions are comparable with ==; two positions are equal if they denote the
// same node of the same chain.
type Position[T any] struct {
	node  *node[T]
	chain *chain[T]
}

// Start returns the position of the head of l. For an empty list this is the
// end position.
func (l List[T]) Start() Position[T] {
	return Position[T]{node: l.chain().head, chain: l.h.Ref()}
}

// End returns the position one past the tail of l.
func (l List[T]) End() Position[T] {
	return Position[T]{chain: l.h.Ref()}
}

// IsEnd is true for the end position.
func (p Position[T]) IsEnd() bool {
	return p.node == nil
}

// Next returns the position following p. The successor of the tail is the end
// position; advancing the end position is a no-op.
func (p Position[T]) Next() Position[T] {
	if p.node == nil {
		return p
	}
	return Position[T]{node: p.node.next, chain: p.chain}
}

// Value returns the value at position p. It panics for the end position.
func (p Position[T]) Value() T {
	assertThat(p.node != nil, "cannot get value at end position")
	return p.node.value
}
