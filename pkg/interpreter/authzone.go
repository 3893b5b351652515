package interpreter

import (
	"github.com/cuemby/txscope/pkg/engine"
	"github.com/cuemby/txscope/pkg/types"
)

// authZoneClient adapts the engine's auth-zone operations to transaction-
// scoped ids (spec.md §4.F), mirroring worktopClient's shape.
type authZoneClient struct {
	eng    engine.Engine
	tables *translationTables
}

func (a *authZoneClient) pop(scoped types.ProofId) error {
	engineId, err := a.eng.PopFromAuthZone()
	if err != nil {
		return err
	}
	a.tables.insertProof(scoped, engineId)
	return nil
}

func (a *authZoneClient) push(scoped types.ProofId) error {
	engineId, ok := a.tables.removeProof(scoped)
	if !ok {
		return &ProofNotFound{ProofId: uint32(scoped)}
	}
	return a.eng.PushToAuthZone(engineId)
}

// clear empties the local proof table before asking the engine to drop its
// auth-zone proofs, so that even if the engine call fails, no local entry
// can ever be used to reference an engine proof the engine may have
// already dropped (spec.md §4.D, ordering note).
func (a *authZoneClient) clear() error {
	a.tables.proofs.clear()
	return a.eng.DropAllAuthZoneProofs()
}

func (a *authZoneClient) createProof(scoped types.ProofId, res types.ResourceAddress) error {
	engineId, err := a.eng.CreateAuthZoneProof(res)
	if err != nil {
		return err
	}
	a.tables.insertProof(scoped, engineId)
	return nil
}

func (a *authZoneClient) createProofByAmount(scoped types.ProofId, amount types.Decimal, res types.ResourceAddress) error {
	engineId, err := a.eng.CreateAuthZoneProofByAmount(amount, res)
	if err != nil {
		return err
	}
	a.tables.insertProof(scoped, engineId)
	return nil
}

func (a *authZoneClient) createProofByIds(scoped types.ProofId, ids []types.NonFungibleId, res types.ResourceAddress) error {
	engineId, err := a.eng.CreateAuthZoneProofByIds(ids, res)
	if err != nil {
		return err
	}
	a.tables.insertProof(scoped, engineId)
	return nil
}

// createBucketProof uses a non-removing lookup: the source bucket remains
// live after a proof is created from it (spec.md §4.D, tie-break note).
func (a *authZoneClient) createBucketProof(scopedProof types.ProofId, scopedBucket types.BucketId) error {
	bucketEngineId, ok := a.tables.lookupBucket(scopedBucket)
	if !ok {
		return &BucketNotFound{BucketId: uint32(scopedBucket)}
	}
	proofEngineId, err := a.eng.CreateBucketProof(bucketEngineId)
	if err != nil {
		return err
	}
	a.tables.insertProof(scopedProof, proofEngineId)
	return nil
}

// cloneProof also uses a non-removing lookup: cloning does not consume
// the source proof (spec.md §4.D, tie-break note).
func (a *authZoneClient) cloneProof(scopedClone types.ProofId, scopedSource types.ProofId) error {
	sourceEngineId, ok := a.tables.lookupProof(scopedSource)
	if !ok {
		return &ProofNotFound{ProofId: uint32(scopedSource)}
	}
	cloneEngineId, err := a.eng.CloneProof(sourceEngineId)
	if err != nil {
		return err
	}
	a.tables.insertProof(scopedClone, cloneEngineId)
	return nil
}

func (a *authZoneClient) dropProof(scoped types.ProofId) error {
	engineId, ok := a.tables.removeProof(scoped)
	if !ok {
		return &ProofNotFound{ProofId: uint32(scoped)}
	}
	return a.eng.DropProof(engineId)
}
