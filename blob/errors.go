package blob

import "errors"

// ErrInvalidCapacity is returned by New and NewRegistry when the requested
// capacity is less than 1.
var ErrInvalidCapacity = errors.New("blob: capacity must be at least 1")
