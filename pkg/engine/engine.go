package engine

import (
	"github.com/cuemby/txscope/pkg/types"
)

// Engine is the Process contract: every operation is synchronous and
// fallible, returning either a scalar (id, address, structured value) or
// nothing. All failures surface as a plain error; the interpreter relays
// them unchanged (spec.md §7, "Engine-relayed errors").
type Engine interface {
	// Worktop operations.
	TakeAllFromWorktop(res types.ResourceAddress) (types.BucketId, error)
	TakeFromWorktop(amount types.Decimal, res types.ResourceAddress) (types.BucketId, error)
	TakeNonFungiblesFromWorktop(ids []types.NonFungibleId, res types.ResourceAddress) (types.BucketId, error)
	ReturnToWorktop(bucket types.BucketId) error
	AssertWorktopContains(res types.ResourceAddress) error
	AssertWorktopContainsByAmount(amount types.Decimal, res types.ResourceAddress) error
	AssertWorktopContainsByIds(ids []types.NonFungibleId, res types.ResourceAddress) error

	// AuthZone operations.
	PopFromAuthZone() (types.ProofId, error)
	PushToAuthZone(proof types.ProofId) error
	DropAllAuthZoneProofs() error
	CreateAuthZoneProof(res types.ResourceAddress) (types.ProofId, error)
	CreateAuthZoneProofByAmount(amount types.Decimal, res types.ResourceAddress) (types.ProofId, error)
	CreateAuthZoneProofByIds(ids []types.NonFungibleId, res types.ResourceAddress) (types.ProofId, error)

	// Bucket/proof operations.
	CreateBucketProof(bucket types.BucketId) (types.ProofId, error)
	CloneProof(proof types.ProofId) (types.ProofId, error)
	DropProof(proof types.ProofId) error

	// Invocation.
	CallFunction(pkg types.PackageAddress, blueprint, function string, args []types.Value) (types.Value, error)
	CallMethod(component types.ComponentAddress, method string, args []types.Value) (types.Value, error)
	CallMethodWithAllResources(component types.ComponentAddress, method string) (types.Value, error)
	PublishPackage(code []byte) (types.PackageAddress, error)

	// End-of-transaction cleanup (spec.md §4.G).
	DropAllProofs() error
	CheckResource() error
}
