package blob

// Cell is an aliasable view onto one slot's element. Any number of cells may
// reference the same slot and each writes through to the live element; the
// store performs no conflict detection between them. A cell stays valid until
// the next structural operation (Push, SwapRemove, Clear, Release) on the
// store that produced it.
type Cell[T any] struct {
	ptr *T
}

// Get returns a copy of the element.
func (c Cell[T]) Get() T {
	return *c.ptr
}

// Set overwrites the element in place.
func (c Cell[T]) Set(value T) {
	*c.ptr = value
}

// Ptr returns the element's address for direct mutation.
func (c Cell[T]) Ptr() *T {
	return c.ptr
}

// CellAt returns a cell view onto the element at index, or false when index
// is outside the live range.
func CellAt[T any](s *Store, index int) (Cell[T], bool) {
	if index < 0 || index >= s.len {
		return Cell[T]{}, false
	}
	return Cell[T]{ptr: (*T)(s.slot(index))}, true
}
