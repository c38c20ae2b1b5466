package blob_test

// Common test element types

type Record struct {
	Name string
	Age  int
}

type Point struct {
	X, Y float32
}

// Tracked counts teardown through a shared counter.
type Tracked struct {
	ID    int
	Drops *int
}

func (t *Tracked) Dispose() {
	*t.Drops++
}

// Marker is a zero-sized element type with observable teardown.
type Marker struct{}

var markerDrops int

func (Marker) Dispose() {
	markerDrops++
}
