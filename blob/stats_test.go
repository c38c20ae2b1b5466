package blob_test

import (
	"testing"

	"github.com/plus3/blobvec/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSnapshot(t *testing.T) {
	s, err := blob.New[int64](4)
	require.NoError(t, err)
	blob.Push[int64](s, 1)
	blob.Push[int64](s, 2)

	st := s.Stats()
	assert.Equal(t, 2, st.Len)
	assert.Equal(t, 4, st.Cap)
	assert.Equal(t, 16, st.SizeInUse)
	assert.Equal(t, 32, st.Capacity)
	assert.InDelta(t, 0.5, st.Utilization, 1e-9)
	assert.False(t, st.Disposable)
}

func TestStatsDisposable(t *testing.T) {
	s, err := blob.New[Tracked](2)
	require.NoError(t, err)
	assert.True(t, s.Stats().Disposable)
}

func TestStatsAfterRelease(t *testing.T) {
	s, err := blob.New[int](4)
	require.NoError(t, err)
	blob.Push(s, 1)
	s.Release()

	st := s.Stats()
	assert.Equal(t, 0, st.Len)
	assert.Equal(t, 0, st.Cap)
	assert.Equal(t, 0.0, st.Utilization)
}

func TestLayoutCaptured(t *testing.T) {
	s, err := blob.New[int64](1)
	require.NoError(t, err)

	layout := s.Layout()
	assert.Equal(t, uintptr(8), layout.Size)
	assert.Equal(t, uintptr(8), layout.Align)

	zst, err := blob.New[struct{}](1)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0), zst.Layout().Size)
}
