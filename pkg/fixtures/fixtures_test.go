package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cuemby/txscope/pkg/types"
)

func TestSaveGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	f := &Fixture{
		Name:         "take-return",
		SeedFungible: []SeedFungible{{Resource: "resource_sim1xyz", Amount: "5"}},
		Instructions: []InstructionSpec{
			{Kind: "TakeFromWorktopByAmount", ResourceAddress: "resource_sim1xyz", Amount: "5"},
			{Kind: "ReturnToWorktop", BucketId: 0},
		},
	}
	require.NoError(t, store.Save(f))

	got, err := store.Get("take-return")
	require.NoError(t, err)
	require.Equal(t, f.Name, got.Name)
	require.Len(t, got.Instructions, 2)
}

func TestGetMissingFixture(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("does-not-exist")
	require.Error(t, err)
}

func TestListAndDelete(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(&Fixture{Name: "a", Instructions: []InstructionSpec{{Kind: "PopFromAuthZone"}}}))
	require.NoError(t, store.Save(&Fixture{Name: "b", Instructions: []InstructionSpec{{Kind: "PopFromAuthZone"}}}))

	names, err := store.List()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, names)

	require.NoError(t, store.Delete("a"))
	names, err = store.List()
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, names)
}

func TestToTransactionParsesAmount(t *testing.T) {
	f := &Fixture{
		Name: "parse-amount",
		Instructions: []InstructionSpec{
			{Kind: "TakeFromWorktopByAmount", ResourceAddress: "resource_sim1xyz", Amount: "2.5"},
		},
	}

	tx, err := f.ToTransaction()
	require.NoError(t, err)
	require.Len(t, tx.Instructions, 1)
	require.Equal(t, types.TakeFromWorktopByAmount, tx.Instructions[0].Kind)
	require.Equal(t, "2.5", tx.Instructions[0].Amount.String())
}

func TestToTransactionRejectsBadAmount(t *testing.T) {
	f := &Fixture{
		Name: "bad-amount",
		Instructions: []InstructionSpec{
			{Kind: "TakeFromWorktopByAmount", Amount: "not-a-number"},
		},
	}

	_, err := f.ToTransaction()
	require.Error(t, err)
}
