package interpreter

import "github.com/cuemby/txscope/pkg/types"

// idTable maps a transaction-scoped id to the engine-scoped id the engine
// returned when the object was created. There is one idTable for buckets
// and one for proofs (spec.md §4.B); the two are never shared, since the
// engine may legitimately reuse the same numeric value across the two
// spaces.
type idTable struct {
	entries map[uint32]uint32
}

func newIdTable() *idTable {
	return &idTable{entries: make(map[uint32]uint32)}
}

// insert records that scopedId now maps to engineId. The caller (the
// dispatcher, via the IdAllocator) guarantees scopedId is fresh, so this
// never overwrites an existing entry.
func (t *idTable) insert(scopedId, engineId uint32) {
	t.entries[scopedId] = engineId
}

// remove deletes and returns the engine id for scopedId. This is the
// consuming lookup: once removed, the same scopedId can never be used
// again, which is how the table enforces linearity without a borrow
// checker (spec.md, Design Notes).
func (t *idTable) remove(scopedId uint32) (uint32, bool) {
	engineId, ok := t.entries[scopedId]
	if ok {
		delete(t.entries, scopedId)
	}
	return engineId, ok
}

// lookup reads the engine id for scopedId without consuming it, for the
// two operations that observe a bucket/proof without retiring it:
// CreateProofFromBucket and CloneProof.
func (t *idTable) lookup(scopedId uint32) (uint32, bool) {
	engineId, ok := t.entries[scopedId]
	return engineId, ok
}

// clear removes every entry. Only the proof table's clear is ever called,
// by ClearAuthZone (spec.md §4.D).
func (t *idTable) clear() {
	t.entries = make(map[uint32]uint32)
}

// len reports how many ids are currently live. Run records both tables'
// sizes in the end-of-run metrics, and tests read it to check which ids
// are still live.
func (t *idTable) len() int {
	return len(t.entries)
}

// translationTables holds the bucket and proof id tables for one run.
type translationTables struct {
	buckets *idTable
	proofs  *idTable
}

func newTranslationTables() *translationTables {
	return &translationTables{buckets: newIdTable(), proofs: newIdTable()}
}

func (t *translationTables) insertBucket(scoped types.BucketId, engine types.BucketId) {
	t.buckets.insert(uint32(scoped), uint32(engine))
}

func (t *translationTables) removeBucket(scoped types.BucketId) (types.BucketId, bool) {
	engine, ok := t.buckets.remove(uint32(scoped))
	return types.BucketId(engine), ok
}

func (t *translationTables) lookupBucket(scoped types.BucketId) (types.BucketId, bool) {
	engine, ok := t.buckets.lookup(uint32(scoped))
	return types.BucketId(engine), ok
}

func (t *translationTables) insertProof(scoped types.ProofId, engine types.ProofId) {
	t.proofs.insert(uint32(scoped), uint32(engine))
}

func (t *translationTables) removeProof(scoped types.ProofId) (types.ProofId, bool) {
	engine, ok := t.proofs.remove(uint32(scoped))
	return types.ProofId(engine), ok
}

func (t *translationTables) lookupProof(scoped types.ProofId) (types.ProofId, bool) {
	engine, ok := t.proofs.lookup(uint32(scoped))
	return types.ProofId(engine), ok
}
