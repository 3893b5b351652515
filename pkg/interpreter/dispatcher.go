package interpreter

import (
	"fmt"

	"github.com/cuemby/txscope/pkg/engine"
	"github.com/cuemby/txscope/pkg/idalloc"
	"github.com/cuemby/txscope/pkg/types"
)

// dispatcher holds everything one transaction's dispatch loop needs: the
// id allocator, the translation tables, and the two protocol clients that
// wrap the engine. One dispatcher is created per Run call and discarded
// afterward.
type dispatcher struct {
	ids     *idalloc.Allocator
	tables  *translationTables
	worktop *worktopClient
	auth    *authZoneClient
	eng     engine.Engine
}

func newDispatcher(eng engine.Engine) *dispatcher {
	tables := newTranslationTables()
	return &dispatcher{
		ids:     idalloc.New(),
		tables:  tables,
		worktop: &worktopClient{eng: eng, tables: tables},
		auth:    &authZoneClient{eng: eng, tables: tables},
		eng:     eng,
	}
}

// dispatch runs a single validated instruction and returns its output
// value, per the Emits column of spec.md §4.D's instruction table: the
// three Take* instructions, the four Create* instructions, PopFromAuthZone
// and CloneProof emit the freshly allocated scoped id wrapped as a
// Bucket/Proof leaf, PublishPackage
// emits the new PackageAddress, CallFunction/CallMethod/
// CallMethodWithAllResources emit whatever the engine call returned, and
// every other instruction emits types.Unit().
func (d *dispatcher) dispatch(ins types.ValidatedInstruction) (types.Value, error) {
	switch ins.Kind {
	case types.TakeFromWorktop:
		scoped, err := d.newBucketId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.worktop.takeAll(scoped, ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.BucketValue(scoped), nil

	case types.TakeFromWorktopByAmount:
		scoped, err := d.newBucketId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.worktop.takeByAmount(scoped, ins.Amount, ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.BucketValue(scoped), nil

	case types.TakeFromWorktopByIds:
		scoped, err := d.newBucketId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.worktop.takeByIds(scoped, ins.Ids, ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.BucketValue(scoped), nil

	case types.ReturnToWorktop:
		if err := d.worktop.returnBucket(ins.BucketId); err != nil {
			return types.Value{}, err
		}
		return types.Unit(), nil

	case types.AssertWorktopContains:
		if err := d.worktop.assertContains(ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.Unit(), nil

	case types.AssertWorktopContainsByAmount:
		if err := d.worktop.assertContainsByAmount(ins.Amount, ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.Unit(), nil

	case types.AssertWorktopContainsByIds:
		if err := d.worktop.assertContainsByIds(ins.Ids, ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.Unit(), nil

	case types.PopFromAuthZone:
		scoped, err := d.newProofId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.auth.pop(scoped); err != nil {
			return types.Value{}, err
		}
		return types.ProofValue(scoped), nil

	case types.PushToAuthZone:
		if err := d.auth.push(ins.ProofId); err != nil {
			return types.Value{}, err
		}
		return types.Unit(), nil

	case types.ClearAuthZone:
		if err := d.auth.clear(); err != nil {
			return types.Value{}, err
		}
		return types.Unit(), nil

	case types.CreateProofFromAuthZone:
		scoped, err := d.newProofId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.auth.createProof(scoped, ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.ProofValue(scoped), nil

	case types.CreateProofFromAuthZoneByAmount:
		scoped, err := d.newProofId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.auth.createProofByAmount(scoped, ins.Amount, ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.ProofValue(scoped), nil

	case types.CreateProofFromAuthZoneByIds:
		scoped, err := d.newProofId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.auth.createProofByIds(scoped, ins.Ids, ins.ResourceAddress); err != nil {
			return types.Value{}, err
		}
		return types.ProofValue(scoped), nil

	case types.CreateProofFromBucket:
		scoped, err := d.newProofId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.auth.createBucketProof(scoped, ins.BucketId); err != nil {
			return types.Value{}, err
		}
		return types.ProofValue(scoped), nil

	case types.CloneProof:
		scoped, err := d.newProofId()
		if err != nil {
			return types.Value{}, err
		}
		if err := d.auth.cloneProof(scoped, ins.ProofId); err != nil {
			return types.Value{}, err
		}
		return types.ProofValue(scoped), nil

	case types.DropProof:
		if err := d.auth.dropProof(ins.ProofId); err != nil {
			return types.Value{}, err
		}
		return types.Unit(), nil

	case types.CallFunction:
		args, err := rewriteArgs(d.tables, ins.Args)
		if err != nil {
			return types.Value{}, err
		}
		return d.eng.CallFunction(ins.PackageAddress, ins.BlueprintName, ins.Function, args)

	case types.CallMethod:
		args, err := rewriteArgs(d.tables, ins.Args)
		if err != nil {
			return types.Value{}, err
		}
		return d.eng.CallMethod(ins.ComponentAddress, ins.Method, args)

	case types.CallMethodWithAllResources:
		return d.eng.CallMethodWithAllResources(ins.ComponentAddress, ins.Method)

	case types.PublishPackage:
		addr, err := d.eng.PublishPackage(ins.Code)
		if err != nil {
			return types.Value{}, err
		}
		return types.PackageAddressValue(addr), nil

	default:
		return types.Value{}, fmt.Errorf("interpreter: unknown instruction kind %q", ins.Kind)
	}
}

func (d *dispatcher) newBucketId() (types.BucketId, error) {
	id, err := d.ids.NewBucketId()
	if err != nil {
		return 0, &IdAllocatorError{Cause: err}
	}
	return types.BucketId(id), nil
}

func (d *dispatcher) newProofId() (types.ProofId, error) {
	id, err := d.ids.NewProofId()
	if err != nil {
		return 0, &IdAllocatorError{Cause: err}
	}
	return types.ProofId(id), nil
}
