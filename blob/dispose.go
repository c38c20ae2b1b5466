package blob

import "unsafe"

// Disposer is the non-trivial-teardown capability. Element types whose
// pointer type implements it have Dispose called exactly once per live
// element on Clear and Release. Values removed with SwapRemove are not
// disposed; the caller owns them.
type Disposer interface {
	Dispose()
}

// disposeRange destroys n elements of type T starting at base. Stored in
// Store.dispose at construction, erasing T.
func disposeRange[T any](base unsafe.Pointer, n int) {
	var zero T
	size := unsafe.Sizeof(zero)
	for i := 0; i < n; i++ {
		any((*T)(unsafe.Add(base, uintptr(i)*size))).(Disposer).Dispose()
	}
}
