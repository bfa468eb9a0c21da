package cow

// Cloner is a backend store which is able to produce a deep copy of itself.
// The copy must not share any mutable memory with the original.
type Cloner[B any] interface {
	Clone() B
}

// box is the reference-counted unit of sharing.
type box[B any] struct {
	store B
	refs  int
}

// Handle is a reference to a shared backend store of type B.
// The zero value is a valid, empty handle; it will allocate an exclusive store on its
// first mutation. A nil *Handle is valid for read access and behaves like an empty one.
//
// Containers hold a pointer to exactly one Handle, so that aliases of a container
// (e.g., a container passed by value) rebind together when a clone is made. They call
// Mutable (or MutableFunc) once at the beginning of every mutating operation:
//
//     func (s *Stack[T]) Push(item T) {
//         st := s.handle().Mutable()  // clones if the store is shared
//         *st = append(*st, item)
//     }
//
type Handle[B Cloner[B]] struct {
	b *box[B]
}

// Wrap creates a handle exclusively owning store.
func Wrap[B Cloner[B]](store B) *Handle[B] {
	return &Handle[B]{b: &box[B]{store: store, refs: 1}}
}

// Copy returns a second handle on the same store. The store will be shared until
// one of the handles mutates it. Copy is O(1).
// Copying a nil handle returns nil.
func (h *Handle[B]) Copy() *Handle[B] {
	if h == nil {
		return nil
	}
	if h.b == nil {
		return &Handle[B]{}
	}
	h.b.refs++
	return &Handle[B]{b: h.b}
}

// Ref returns the store for read access. Clients must not modify the store through
// this pointer, as it may be shared. Ref returns nil for a zero handle.
func (h *Handle[B]) Ref() *B {
	if h == nil || h.b == nil {
		return nil
	}
	return &h.b.store
}

// Shared is true if the store of h is referenced by more than one handle.
func (h *Handle[B]) Shared() bool {
	return h != nil && h.b != nil && h.b.refs > 1
}

// Refs returns the number of handles referencing the store of h.
func (h *Handle[B]) Refs() int {
	if h == nil || h.b == nil {
		return 0
	}
	return h.b.refs
}

// Mutable makes sure that h exclusively references its store, cloning it if it is
// shared, and returns the store for modification.
func (h *Handle[B]) Mutable() *B {
	return h.MutableFunc(func(store *B) B {
		return (*store).Clone()
	})
}

// MutableFunc is like Mutable, but clones a shared store by calling clone. This allows
// callers to track parts of the old store while it is copied.
// clone is not called if h already exclusively owns its store.
func (h *Handle[B]) MutableFunc(clone func(*B) B) *B {
	if h.b == nil {
		h.b = &box[B]{refs: 1}
		return &h.b.store
	}
	if h.b.refs > 1 {
		tracer().Debugf("store shared by %d handles, cloning", h.b.refs)
		cow := clone(&h.b.store)
		h.b.refs--
		h.b = &box[B]{store: cow, refs: 1}
	}
	return &h.b.store
}

// Release drops the reference of h to its store. Afterwards h is a zero handle.
// Releasing a copy which is no longer needed saves another copy from having to clone
// the store on its next mutation.
func (h *Handle[B]) Release() {
	if h == nil || h.b == nil {
		return
	}
	h.b.refs--
	h.b = nil
}
