package engine

import (
	"fmt"
	"sync"

	"github.com/cuemby/txscope/pkg/types"
)

// worktopPile is the loose-resource pool for a single resource address.
type worktopPile struct {
	amount types.Decimal
	ids    map[types.NonFungibleId]struct{}
}

// bucketRecord is the engine-side content of a bucket, keyed by its
// engine-scoped BucketId.
type bucketRecord struct {
	resource types.ResourceAddress
	amount   types.Decimal
	ids      map[types.NonFungibleId]struct{}
}

// proofRecord is the engine-side content of a proof, keyed by its
// engine-scoped ProofId.
type proofRecord struct {
	resource types.ResourceAddress
	amount   types.Decimal
	ids      map[types.NonFungibleId]struct{}
}

// ReferenceEngine is an in-memory stand-in for the component execution
// engine, good enough to drive the interpreter end to end in tests and
// the txscope CLI. It is not the engine the runtime ships with — the real
// engine is an out-of-scope external collaborator (spec.md §1) — but it
// implements the exact Process contract (§6.2) the interpreter consumes,
// so the interpreter cannot tell the difference.
type ReferenceEngine struct {
	mu sync.Mutex

	worktop map[types.ResourceAddress]*worktopPile

	nextBucket uint32
	buckets    map[types.BucketId]*bucketRecord

	nextProof uint32
	proofs    map[types.ProofId]*proofRecord
	authZone  []types.ProofId

	nextPackage uint64
}

// NewReferenceEngine returns an engine with an empty worktop and auth zone.
func NewReferenceEngine() *ReferenceEngine {
	return &ReferenceEngine{
		worktop: make(map[types.ResourceAddress]*worktopPile),
		buckets: make(map[types.BucketId]*bucketRecord),
		proofs:  make(map[types.ProofId]*proofRecord),
	}
}

// SeedFungible deposits amount of res onto the worktop before a run, as if
// an upstream step (out of scope here) had already withdrawn it from an
// account.
func (e *ReferenceEngine) SeedFungible(res types.ResourceAddress, amount types.Decimal) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pile := e.pileLocked(res)
	pile.amount = pile.amount.Add(amount)
}

// SeedNonFungible deposits the given non-fungible ids of res onto the
// worktop before a run.
func (e *ReferenceEngine) SeedNonFungible(res types.ResourceAddress, ids []types.NonFungibleId) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pile := e.pileLocked(res)
	for _, id := range ids {
		pile.ids[id] = struct{}{}
	}
}

func (e *ReferenceEngine) pileLocked(res types.ResourceAddress) *worktopPile {
	pile, ok := e.worktop[res]
	if !ok {
		pile = &worktopPile{ids: make(map[types.NonFungibleId]struct{})}
		e.worktop[res] = pile
	}
	return pile
}

func (e *ReferenceEngine) allocBucket() types.BucketId {
	id := e.nextBucket
	e.nextBucket++
	return types.BucketId(id)
}

func (e *ReferenceEngine) allocProof() types.ProofId {
	id := e.nextProof
	e.nextProof++
	return types.ProofId(id)
}

func (e *ReferenceEngine) TakeAllFromWorktop(res types.ResourceAddress) (types.BucketId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec := &bucketRecord{resource: res, ids: make(map[types.NonFungibleId]struct{})}
	if pile, ok := e.worktop[res]; ok {
		rec.amount = pile.amount
		for id := range pile.ids {
			rec.ids[id] = struct{}{}
		}
		delete(e.worktop, res)
	}

	id := e.allocBucket()
	e.buckets[id] = rec
	return id, nil
}

func (e *ReferenceEngine) TakeFromWorktop(amount types.Decimal, res types.ResourceAddress) (types.BucketId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pile, ok := e.worktop[res]
	if !ok || !pile.amount.GreaterThanOrEqual(amount) {
		return 0, fmt.Errorf("engine: insufficient balance of %s on worktop", res)
	}
	pile.amount = pile.amount.Sub(amount)

	id := e.allocBucket()
	e.buckets[id] = &bucketRecord{resource: res, amount: amount, ids: make(map[types.NonFungibleId]struct{})}
	return id, nil
}

func (e *ReferenceEngine) TakeNonFungiblesFromWorktop(ids []types.NonFungibleId, res types.ResourceAddress) (types.BucketId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pile, ok := e.worktop[res]
	if !ok {
		return 0, fmt.Errorf("engine: resource %s not on worktop", res)
	}
	for _, id := range ids {
		if _, present := pile.ids[id]; !present {
			return 0, fmt.Errorf("engine: non-fungible %s of %s not on worktop", id, res)
		}
	}
	taken := make(map[types.NonFungibleId]struct{}, len(ids))
	for _, id := range ids {
		delete(pile.ids, id)
		taken[id] = struct{}{}
	}

	bucketId := e.allocBucket()
	e.buckets[bucketId] = &bucketRecord{resource: res, ids: taken}
	return bucketId, nil
}

func (e *ReferenceEngine) ReturnToWorktop(bucket types.BucketId) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.buckets[bucket]
	if !ok {
		return fmt.Errorf("engine: unknown bucket %d", bucket)
	}
	delete(e.buckets, bucket)

	pile := e.pileLocked(rec.resource)
	pile.amount = pile.amount.Add(rec.amount)
	for id := range rec.ids {
		pile.ids[id] = struct{}{}
	}
	return nil
}

func (e *ReferenceEngine) AssertWorktopContains(res types.ResourceAddress) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pile, ok := e.worktop[res]
	if !ok || (pile.amount.IsZero() && len(pile.ids) == 0) {
		return fmt.Errorf("engine: worktop does not contain any %s", res)
	}
	return nil
}

func (e *ReferenceEngine) AssertWorktopContainsByAmount(amount types.Decimal, res types.ResourceAddress) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pile, ok := e.worktop[res]
	if !ok || !pile.amount.GreaterThanOrEqual(amount) {
		return fmt.Errorf("engine: worktop does not contain %s of %s", amount, res)
	}
	return nil
}

func (e *ReferenceEngine) AssertWorktopContainsByIds(ids []types.NonFungibleId, res types.ResourceAddress) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pile, ok := e.worktop[res]
	if !ok {
		return fmt.Errorf("engine: worktop does not contain %s", res)
	}
	for _, id := range ids {
		if _, present := pile.ids[id]; !present {
			return fmt.Errorf("engine: worktop does not contain %s of %s", id, res)
		}
	}
	return nil
}

func (e *ReferenceEngine) PopFromAuthZone() (types.ProofId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.authZone) == 0 {
		return 0, fmt.Errorf("engine: auth zone is empty")
	}
	top := e.authZone[len(e.authZone)-1]
	e.authZone = e.authZone[:len(e.authZone)-1]
	return top, nil
}

func (e *ReferenceEngine) PushToAuthZone(proof types.ProofId) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.proofs[proof]; !ok {
		return fmt.Errorf("engine: unknown proof %d", proof)
	}
	e.authZone = append(e.authZone, proof)
	return nil
}

func (e *ReferenceEngine) DropAllAuthZoneProofs() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, proof := range e.authZone {
		delete(e.proofs, proof)
	}
	e.authZone = nil
	return nil
}

func (e *ReferenceEngine) CreateAuthZoneProof(res types.ResourceAddress) (types.ProofId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.allocProof()
	e.proofs[id] = &proofRecord{resource: res, ids: make(map[types.NonFungibleId]struct{})}
	return id, nil
}

func (e *ReferenceEngine) CreateAuthZoneProofByAmount(amount types.Decimal, res types.ResourceAddress) (types.ProofId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.allocProof()
	e.proofs[id] = &proofRecord{resource: res, amount: amount, ids: make(map[types.NonFungibleId]struct{})}
	return id, nil
}

func (e *ReferenceEngine) CreateAuthZoneProofByIds(ids []types.NonFungibleId, res types.ResourceAddress) (types.ProofId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.allocProof()
	set := make(map[types.NonFungibleId]struct{}, len(ids))
	for _, nfid := range ids {
		set[nfid] = struct{}{}
	}
	e.proofs[id] = &proofRecord{resource: res, ids: set}
	return id, nil
}

func (e *ReferenceEngine) CreateBucketProof(bucket types.BucketId) (types.ProofId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.buckets[bucket]
	if !ok {
		return 0, fmt.Errorf("engine: unknown bucket %d", bucket)
	}
	ids := make(map[types.NonFungibleId]struct{}, len(rec.ids))
	for id := range rec.ids {
		ids[id] = struct{}{}
	}

	proofId := e.allocProof()
	e.proofs[proofId] = &proofRecord{resource: rec.resource, amount: rec.amount, ids: ids}
	return proofId, nil
}

func (e *ReferenceEngine) CloneProof(proof types.ProofId) (types.ProofId, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.proofs[proof]
	if !ok {
		return 0, fmt.Errorf("engine: unknown proof %d", proof)
	}
	ids := make(map[types.NonFungibleId]struct{}, len(rec.ids))
	for id := range rec.ids {
		ids[id] = struct{}{}
	}

	cloneId := e.allocProof()
	e.proofs[cloneId] = &proofRecord{resource: rec.resource, amount: rec.amount, ids: ids}
	return cloneId, nil
}

func (e *ReferenceEngine) DropProof(proof types.ProofId) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.proofs[proof]; !ok {
		return fmt.Errorf("engine: unknown proof %d", proof)
	}
	delete(e.proofs, proof)
	return nil
}

// consumeValue walks a rewritten argument tree and releases any engine-side
// bucket/proof records it references, modeling the resources moving into
// the callee. Unknown ids are ignored: by the time arguments reach the
// engine they have already passed translation, so every Bucket/Proof leaf
// here is expected to resolve to a live engine record.
func (e *ReferenceEngine) consumeValue(v types.Value) {
	switch v.Kind {
	case types.KindBucket:
		delete(e.buckets, v.Bucket)
	case types.KindProof:
		delete(e.proofs, v.Proof)
	case types.KindTuple, types.KindArray:
		for _, child := range v.Elements {
			e.consumeValue(child)
		}
	case types.KindEnum:
		for _, child := range v.Fields {
			e.consumeValue(child)
		}
	}
}

func (e *ReferenceEngine) CallFunction(pkg types.PackageAddress, blueprint, function string, args []types.Value) (types.Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, arg := range args {
		e.consumeValue(arg)
	}
	return types.Unit(), nil
}

func (e *ReferenceEngine) CallMethod(component types.ComponentAddress, method string, args []types.Value) (types.Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, arg := range args {
		e.consumeValue(arg)
	}
	return types.Unit(), nil
}

func (e *ReferenceEngine) CallMethodWithAllResources(component types.ComponentAddress, method string) (types.Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.worktop = make(map[types.ResourceAddress]*worktopPile)
	return types.Unit(), nil
}

func (e *ReferenceEngine) PublishPackage(code []byte) (types.PackageAddress, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextPackage++
	return types.PackageAddress(fmt.Sprintf("package_sim1%d", e.nextPackage)), nil
}

func (e *ReferenceEngine) DropAllProofs() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.proofs = make(map[types.ProofId]*proofRecord)
	e.authZone = nil
	return nil
}

func (e *ReferenceEngine) CheckResource() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.buckets) > 0 {
		return fmt.Errorf("engine: %d bucket(s) still dangling at end of transaction", len(e.buckets))
	}
	return nil
}

var _ Engine = (*ReferenceEngine)(nil)
