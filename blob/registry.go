package blob

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeID returns a process-unique integer identity for t, derived from the
// runtime type pointer.
func typeID(t reflect.Type) uint64 {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return uint64(uintptr(ptr))
}

// Registry is a typed façade over a set of stores, one per element kind.
// It restores the type safety the erased core gives up: every access for a
// kind T goes to the store that was created for T, so the same-type
// precondition of Store holds by construction.
//
// Each Registry is independent; multiple registries can coexist without
// interference.
type Registry struct {
	stores     *intmap.Map[uint64, *Store]
	all        []*Store
	initialCap int
}

// NewRegistry creates an empty registry. Stores created through it start
// with initialCap slots; returns ErrInvalidCapacity when initialCap is less
// than 1.
func NewRegistry(initialCap int) (*Registry, error) {
	if initialCap < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Registry{
		stores:     intmap.New[uint64, *Store](16),
		initialCap: initialCap,
	}, nil
}

// StoreFor returns the store holding elements of type T, creating it on
// first use.
func StoreFor[T any](r *Registry) *Store {
	id := typeID(reflect.TypeFor[T]())
	if s, ok := r.stores.Get(id); ok {
		return s
	}

	s, err := New[T](r.initialCap)
	if err != nil {
		panic(err) // initialCap was validated at NewRegistry
	}
	r.stores.Put(id, s)
	r.all = append(r.all, s)
	return s
}

// Lookup returns the store for type T if one has been created.
func Lookup[T any](r *Registry) (*Store, bool) {
	return r.stores.Get(typeID(reflect.TypeFor[T]()))
}

// Kinds returns the number of distinct element kinds in the registry.
func (r *Registry) Kinds() int {
	return len(r.all)
}

// Clear clears every store in the registry. The stores remain usable.
func (r *Registry) Clear() {
	for _, s := range r.all {
		s.Clear()
	}
}

// Release releases every store and empties the registry.
func (r *Registry) Release() {
	for _, s := range r.all {
		s.Release()
	}
	r.stores.Clear()
	r.all = nil
}
