package interpreter

import "github.com/cuemby/txscope/pkg/engine"

// finalize runs the two end-of-transaction engine calls unconditionally,
// regardless of whether the instruction loop already failed (spec.md
// §4.G), and returns the first of the two that failed along with which
// stage produced it. The caller (Run) logs and counts any finalizer
// error, but it becomes the run's error only when the instruction loop
// itself recorded none: a loop error always takes precedence.
func finalize(eng engine.Engine) (err error, stage string) {
	dropErr := eng.DropAllProofs()
	checkErr := eng.CheckResource()

	if dropErr != nil {
		return dropErr, "drop_all_proofs"
	}
	return checkErr, "resource_check"
}
