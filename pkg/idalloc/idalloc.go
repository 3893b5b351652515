// Package idalloc issues fresh, monotonically increasing bucket and proof
// identifiers in a single transaction's id-space (spec.md §4.A). A
// transaction owns exactly one Allocator for its lifetime; ids are never
// reused, even once their associated bucket or proof has been dropped.
package idalloc

import "errors"

// ErrExhausted is returned once a 32-bit counter would overflow on its
// next allocation.
var ErrExhausted = errors.New("idalloc: id space exhausted")

// Allocator hands out BucketId and ProofId values from two independent
// 32-bit counters. The two spaces are kept separate deliberately: an
// engine that happened to return the same numeric value for a bucket and
// a proof would otherwise collide in the translation tables.
type Allocator struct {
	nextBucket uint64
	nextProof  uint64
}

// New returns an Allocator with both counters starting at zero.
func New() *Allocator {
	return &Allocator{}
}

// NewBucketId returns the next unused bucket id, or ErrExhausted if the
// 32-bit space is used up.
func (a *Allocator) NewBucketId() (uint32, error) {
	if a.nextBucket > 0xFFFFFFFF {
		return 0, ErrExhausted
	}
	id := uint32(a.nextBucket)
	a.nextBucket++
	return id, nil
}

// NewProofId returns the next unused proof id, or ErrExhausted if the
// 32-bit space is used up.
func (a *Allocator) NewProofId() (uint32, error) {
	if a.nextProof > 0xFFFFFFFF {
		return 0, ErrExhausted
	}
	id := uint32(a.nextProof)
	a.nextProof++
	return id, nil
}
