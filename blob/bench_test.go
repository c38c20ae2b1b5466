package blob_test

import (
	"testing"

	"github.com/plus3/blobvec/blob"
)

func BenchmarkPush(b *testing.B) {
	s, _ := blob.New[Point](16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blob.Push(s, Point{X: 1, Y: 2})
	}
}

func BenchmarkPushPreallocated(b *testing.B) {
	s, _ := blob.New[Point](b.N + 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blob.Push(s, Point{X: 1, Y: 2})
	}
}

func BenchmarkGet(b *testing.B) {
	s, _ := blob.New[Point](1024)
	for i := 0; i < 1024; i++ {
		blob.Push(s, Point{X: float32(i), Y: 2})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = blob.Get[Point](s, i&1023)
	}
}

func BenchmarkSwapRemoveChurn(b *testing.B) {
	s, _ := blob.New[Point](1024)
	for i := 0; i < 1024; i++ {
		blob.Push(s, Point{X: float32(i), Y: 2})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := blob.SwapRemove[Point](s, i&511)
		blob.Push(s, v)
	}
}

func BenchmarkCells(b *testing.B) {
	s, _ := blob.New[Point](1024)
	for i := 0; i < 1024; i++ {
		blob.Push(s, Point{X: float32(i), Y: 2})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for cell := range blob.Cells[Point](s) {
			cell.Ptr().Y++
		}
	}
}
