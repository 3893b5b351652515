package interpreter

import "github.com/cuemby/txscope/pkg/types"

// rewriteValue walks v depth-first and replaces every Bucket/Proof leaf's
// transaction-scoped id with the corresponding engine id, consuming the
// entry from the translation tables as it goes (spec.md §4.C). The
// traversal removes entries in order and does not roll back on a later
// failure: if the third Bucket leaf in a ten-leaf value is unknown, the
// first two have already been retired from the tables. This is the
// reference behavior (spec.md, Design Notes), not an accident.
func rewriteValue(tables *translationTables, v types.Value) (types.Value, error) {
	switch v.Kind {
	case types.KindBucket:
		engineId, ok := tables.removeBucket(v.Bucket)
		if !ok {
			return types.Value{}, &BucketNotFound{BucketId: uint32(v.Bucket)}
		}
		return types.BucketValue(engineId), nil

	case types.KindProof:
		engineId, ok := tables.removeProof(v.Proof)
		if !ok {
			return types.Value{}, &ProofNotFound{ProofId: uint32(v.Proof)}
		}
		return types.ProofValue(engineId), nil

	case types.KindTuple, types.KindArray:
		out := v
		out.Elements = make([]types.Value, len(v.Elements))
		for i, child := range v.Elements {
			rewritten, err := rewriteValue(tables, child)
			if err != nil {
				return types.Value{}, err
			}
			out.Elements[i] = rewritten
		}
		return out, nil

	case types.KindEnum:
		out := v
		out.Fields = make([]types.Value, len(v.Fields))
		for i, child := range v.Fields {
			rewritten, err := rewriteValue(tables, child)
			if err != nil {
				return types.Value{}, err
			}
			out.Fields[i] = rewritten
		}
		return out, nil

	default:
		return v, nil
	}
}

// rewriteArgs rewrites every value in args in order, per rewriteValue's
// partial-removal semantics: if the Nth argument fails to rewrite, the
// first N-1 have already consumed their table entries.
func rewriteArgs(tables *translationTables, args []types.Value) ([]types.Value, error) {
	out := make([]types.Value, len(args))
	for i, arg := range args {
		rewritten, err := rewriteValue(tables, arg)
		if err != nil {
			return nil, err
		}
		out[i] = rewritten
	}
	return out, nil
}
