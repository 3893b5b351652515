package idalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorIssuesDistinctMonotonicIds(t *testing.T) {
	a := New()

	b0, err := a.NewBucketId()
	require.NoError(t, err)
	b1, err := a.NewBucketId()
	require.NoError(t, err)

	assert.Equal(t, uint32(0), b0)
	assert.Equal(t, uint32(1), b1)
}

func TestAllocatorBucketAndProofSpacesAreIndependent(t *testing.T) {
	a := New()

	b0, err := a.NewBucketId()
	require.NoError(t, err)
	p0, err := a.NewProofId()
	require.NoError(t, err)

	assert.Equal(t, uint32(0), b0)
	assert.Equal(t, uint32(0), p0)

	b1, err := a.NewBucketId()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), b1)
}

func TestAllocatorOverflow(t *testing.T) {
	a := &Allocator{nextBucket: 0x100000000}

	_, err := a.NewBucketId()
	assert.ErrorIs(t, err, ErrExhausted)
}
