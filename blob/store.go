package blob

import (
	"reflect"
	"unsafe"
)

// Store is a type-erased contiguous container. It holds a tightly packed run
// of values of a single element type fixed by the New call that created it;
// the type is not part of Store's own shape and must be re-supplied on every
// generic operation (Push, Get, SwapRemove, ...).
//
// Passing a different element type than the one used at New is a precondition
// violation and corrupts the store. It is not detected at runtime; a typed
// wrapper such as Registry is the place to enforce it.
//
// A Store is not safe for concurrent structural mutation. Cell views obtained
// from it may be held and written through concurrently only under a caller
// discipline that partitions slot ownership.
type Store struct {
	block  unsafe.Pointer
	ref    reflect.Value // *[cap]T backing array, keeps the block GC-typed and reachable
	len    int
	cap    int
	layout Layout
	elem   reflect.Type
	hasPtr bool

	// dispose destroys n elements starting at base. Set once at New when the
	// element type has non-trivial teardown, nil otherwise.
	dispose func(base unsafe.Pointer, n int)
}

// New creates a Store for elements of type T with room for capacity elements.
// Returns ErrInvalidCapacity when capacity is less than 1.
func New[T any](capacity int) (*Store, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	elem := reflect.TypeFor[T]()
	ref := reflect.New(reflect.ArrayOf(capacity, elem))

	s := &Store{
		block:  ref.UnsafePointer(),
		ref:    ref,
		cap:    capacity,
		layout: layoutOf(elem),
		elem:   elem,
		hasPtr: typeHasPointers(elem),
	}
	if _, ok := any((*T)(nil)).(Disposer); ok {
		s.dispose = disposeRange[T]
	}
	return s, nil
}

// Push appends value to the store, growing the backing block when full.
func Push[T any](s *Store, value T) {
	s.panicIfReleased()
	if s.len == s.cap {
		s.grow(s.cap * 2)
	}
	*(*T)(s.slot(s.len)) = value
	s.len++
}

// SwapRemove removes the element at index and returns it, moving the last
// element into the vacated slot. Element order is not preserved: after
// removing index i, the element formerly at the end occupies slot i.
// Returns false when index is outside the live range.
//
// The removed value is returned without teardown; ownership transfers to the
// caller.
func SwapRemove[T any](s *Store, index int) (T, bool) {
	var zero T
	if index < 0 || index >= s.len {
		return zero, false
	}

	last := s.len - 1
	lastPtr := (*T)(s.slot(last))
	s.len = last

	if index < last {
		p := (*T)(s.slot(index))
		*p, *lastPtr = *lastPtr, *p
	}

	out := *lastPtr
	if s.hasPtr {
		*lastPtr = zero // vacated slot must not pin heap objects
	}
	return out, true
}

// Get returns a copy of the element at index, or false when index is outside
// the live range.
func Get[T any](s *Store, index int) (T, bool) {
	if index < 0 || index >= s.len {
		var zero T
		return zero, false
	}
	return *(*T)(s.slot(index)), true
}

// Mut returns a pointer to the element at index for in-place mutation, or
// false when index is outside the live range. The pointer stays valid until
// the next structural operation on the store.
func Mut[T any](s *Store, index int) (*T, bool) {
	if index < 0 || index >= s.len {
		return nil, false
	}
	return (*T)(s.slot(index)), true
}

// Clear destroys every live element and resets the length to zero. Capacity
// and the backing block are retained.
func (s *Store) Clear() {
	if s.len == 0 {
		return
	}
	if s.dispose != nil {
		s.dispose(s.block, s.len)
	}
	if s.hasPtr {
		live := s.ref.Elem().Slice(0, s.len)
		for i := 0; i < s.len; i++ {
			live.Index(i).SetZero()
		}
	}
	s.len = 0
}

// Release clears the store and drops the backing block. Release is
// idempotent; a Push after Release panics, every other operation sees an
// empty store.
func (s *Store) Release() {
	if s.block == nil {
		return
	}
	s.Clear()
	s.block = nil
	s.ref = reflect.Value{}
	s.cap = 0
}

// Len returns the number of live elements.
func (s *Store) Len() int {
	return s.len
}

// Cap returns the number of allocated slots.
func (s *Store) Cap() int {
	return s.cap
}

// Layout returns the element layout captured at construction.
func (s *Store) Layout() Layout {
	return s.layout
}

// grow reallocates the backing block to newCap slots, preserving the live
// elements.
func (s *Store) grow(newCap int) {
	ref := reflect.New(reflect.ArrayOf(newCap, s.elem))
	if s.len > 0 {
		reflect.Copy(ref.Elem().Slice(0, s.len), s.ref.Elem().Slice(0, s.len))
	}
	s.ref = ref
	s.block = ref.UnsafePointer()
	s.cap = newCap
}

// slot computes the address of slot i. The base is always aligned for the
// element type, so the align-up is normally a no-op; it is kept for
// degenerate layouts where stride and alignment disagree.
func (s *Store) slot(i int) unsafe.Pointer {
	p := unsafe.Add(s.block, uintptr(i)*s.layout.Size)
	if rem := uintptr(p) % s.layout.Align; rem != 0 {
		p = unsafe.Add(p, s.layout.Align-rem)
	}
	return p
}

// panicIfReleased panics if the store has been released.
func (s *Store) panicIfReleased() {
	if s.block == nil {
		panic("blob: use after Release()")
	}
}
