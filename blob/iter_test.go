package blob_test

import (
	"testing"

	"github.com/plus3/blobvec/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellsMutateThenVerify(t *testing.T) {
	s, err := blob.New[Record](5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		blob.Push(s, Record{Name: "r", Age: i})
	}

	for cell := range blob.Cells[Record](s) {
		cell.Ptr().Age = 0
	}

	for cell := range blob.Cells[Record](s) {
		assert.Equal(t, 0, cell.Get().Age)
	}
}

func TestCellsObservesLengthAtCreation(t *testing.T) {
	s, err := blob.New[int](10)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		blob.Push(s, i)
	}

	seq := blob.Cells[int](s)

	// Pushes within capacity do not move the block; the sequence still
	// covers only the three slots that were live when it was created.
	blob.Push(s, 3)
	blob.Push(s, 4)

	count := 0
	for range seq {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestCellsEarlyBreak(t *testing.T) {
	s, err := blob.New[int](8)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		blob.Push(s, i)
	}

	seen := 0
	for cell := range blob.Cells[int](s) {
		seen++
		if cell.Get() == 2 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestCellsEmptyStore(t *testing.T) {
	s, err := blob.New[int](4)
	require.NoError(t, err)

	for range blob.Cells[int](s) {
		t.Fatal("empty store must yield nothing")
	}
}
