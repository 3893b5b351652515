package interpreter

import "github.com/cuemby/txscope/pkg/types"

// Result is the single user-visible outcome of Run: one output value per
// instruction that completed, and the first error encountered anywhere in
// the run (instruction loop or finalizer), if any (spec.md §4.H).
type Result struct {
	Outputs []types.Value
	Err     error
}

// Committed reports whether the transaction should be treated as
// committed (no error recorded anywhere in the run).
func (r Result) Committed() bool {
	return r.Err == nil
}

// resultBuilder accumulates instruction outputs in order and records the
// first error raised anywhere during a run; later errors (in particular
// from the finalizer) are ignored once one is recorded.
type resultBuilder struct {
	outputs []types.Value
	err     error
}

func newResultBuilder(n int) *resultBuilder {
	return &resultBuilder{outputs: make([]types.Value, 0, n)}
}

// record appends a successful instruction output.
func (b *resultBuilder) record(v types.Value) {
	b.outputs = append(b.outputs, v)
}

// fail records the loop's first error; a later call keeps the first one.
// Run stops the instruction loop after calling it.
func (b *resultBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *resultBuilder) build(finalizerErr error) Result {
	err := b.err
	if err == nil {
		err = finalizerErr
	}
	return Result{Outputs: b.outputs, Err: err}
}
