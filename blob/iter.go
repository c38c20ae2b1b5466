package blob

import "iter"

// Cells returns a lazy forward iterator of cell views over the slots
// [0, len), with len observed when Cells is called. Each yielded cell aliases
// the live slot, so writes through it are visible to later reads.
//
// The store must not be structurally mutated while the sequence is being
// consumed; doing so invalidates the slot addressing. This is not checked at
// runtime.
func Cells[T any](s *Store) iter.Seq[Cell[T]] {
	n := s.len
	return func(yield func(Cell[T]) bool) {
		for i := 0; i < n; i++ {
			if !yield(Cell[T]{ptr: (*T)(s.slot(i))}) {
				return
			}
		}
	}
}
