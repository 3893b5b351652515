package interpreter

import (
	"github.com/cuemby/txscope/pkg/engine"
	"github.com/cuemby/txscope/pkg/types"
)

// worktopClient adapts the engine's worktop operations to transaction-
// scoped ids, inserting and removing bucket table entries around each
// call (spec.md §4.E). It caches nothing and makes no decisions of its
// own; every call is a single synchronous round-trip to the engine.
type worktopClient struct {
	eng    engine.Engine
	tables *translationTables
}

func (w *worktopClient) takeAll(scoped types.BucketId, res types.ResourceAddress) error {
	engineId, err := w.eng.TakeAllFromWorktop(res)
	if err != nil {
		return err
	}
	w.tables.insertBucket(scoped, engineId)
	return nil
}

func (w *worktopClient) takeByAmount(scoped types.BucketId, amount types.Decimal, res types.ResourceAddress) error {
	engineId, err := w.eng.TakeFromWorktop(amount, res)
	if err != nil {
		return err
	}
	w.tables.insertBucket(scoped, engineId)
	return nil
}

func (w *worktopClient) takeByIds(scoped types.BucketId, ids []types.NonFungibleId, res types.ResourceAddress) error {
	engineId, err := w.eng.TakeNonFungiblesFromWorktop(ids, res)
	if err != nil {
		return err
	}
	w.tables.insertBucket(scoped, engineId)
	return nil
}

func (w *worktopClient) returnBucket(scoped types.BucketId) error {
	engineId, ok := w.tables.removeBucket(scoped)
	if !ok {
		return &BucketNotFound{BucketId: uint32(scoped)}
	}
	return w.eng.ReturnToWorktop(engineId)
}

func (w *worktopClient) assertContains(res types.ResourceAddress) error {
	return w.eng.AssertWorktopContains(res)
}

func (w *worktopClient) assertContainsByAmount(amount types.Decimal, res types.ResourceAddress) error {
	return w.eng.AssertWorktopContainsByAmount(amount, res)
}

func (w *worktopClient) assertContainsByIds(ids []types.NonFungibleId, res types.ResourceAddress) error {
	return w.eng.AssertWorktopContainsByIds(ids, res)
}
