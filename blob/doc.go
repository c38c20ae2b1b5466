// Package blob implements a type-erased contiguous container for
// heterogeneous registries: keep one Store per element kind and the values of
// each kind stay tightly packed without per-element boxing.
//
// The element type is fixed when a Store is created and erased from the
// Store's own type; the generic package functions re-supply it on every call.
// The store trusts the caller to pass the type it was created with - use
// Registry when that discipline should be enforced by construction.
//
// Removal is swap-based and O(1): SwapRemove moves the last element into the
// vacated slot, so element order is not stable across removals.
package blob
