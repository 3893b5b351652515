package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/txscope/pkg/types"
)

const testResource = types.ResourceAddress("resource_sim1xyz")

func TestTakeFromWorktopByAmountThenReturnRestoresBalance(t *testing.T) {
	e := NewReferenceEngine()
	e.SeedFungible(testResource, types.NewDecimal(10))

	bucket, err := e.TakeFromWorktop(types.NewDecimal(5), testResource)
	require.NoError(t, err)

	require.NoError(t, e.AssertWorktopContainsByAmount(types.NewDecimal(5), testResource))

	require.NoError(t, e.ReturnToWorktop(bucket))
	assert.NoError(t, e.AssertWorktopContainsByAmount(types.NewDecimal(10), testResource))
}

func TestTakeFromWorktopInsufficientBalance(t *testing.T) {
	e := NewReferenceEngine()
	e.SeedFungible(testResource, types.NewDecimal(1))

	_, err := e.TakeFromWorktop(types.NewDecimal(5), testResource)
	assert.Error(t, err)
}

func TestCloneProofThenDropCloneLeavesOriginalUsable(t *testing.T) {
	e := NewReferenceEngine()

	original, err := e.CreateAuthZoneProof(testResource)
	require.NoError(t, err)

	clone, err := e.CloneProof(original)
	require.NoError(t, err)

	require.NoError(t, e.DropProof(clone))
	require.NoError(t, e.PushToAuthZone(original))
}

func TestCheckResourceFailsWithDanglingBucket(t *testing.T) {
	e := NewReferenceEngine()
	e.SeedFungible(testResource, types.NewDecimal(1))

	_, err := e.TakeAllFromWorktop(testResource)
	require.NoError(t, err)

	assert.Error(t, e.CheckResource())
}

func TestCallMethodWithAllResourcesDrainsWorktop(t *testing.T) {
	e := NewReferenceEngine()
	e.SeedFungible(testResource, types.NewDecimal(42))

	_, err := e.CallMethodWithAllResources(types.ComponentAddress("component_sim1abc"), "deposit_batch")
	require.NoError(t, err)

	assert.Error(t, e.AssertWorktopContains(testResource))
}
