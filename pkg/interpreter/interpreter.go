// Package interpreter turns a validated transaction into a sequence of
// engine calls and a single (outputs, error) result. It owns translation
// between transaction-scoped bucket/proof ids and the ids an Engine
// hands back, the depth-first rewrite of structured argument values, and
// the finalizer that always runs drop-all-proofs and the resource check
// (spec.md §4).
package interpreter

import (
	"github.com/google/uuid"

	"github.com/cuemby/txscope/pkg/engine"
	"github.com/cuemby/txscope/pkg/log"
	"github.com/cuemby/txscope/pkg/metrics"
	"github.com/cuemby/txscope/pkg/types"
)

// Run interprets tx against eng and returns the single result the caller
// uses as its reject/commit signal (spec.md §6.2, §4.H). It is safe to
// call concurrently for distinct transactions against distinct Engine
// values; a single Engine implementation must serialize its own access
// to shared ledger state if it is shared across concurrent calls.
func Run(tx *types.Transaction, eng engine.Engine) Result {
	runID := uuid.New().String()
	runLog := log.WithRunID(runID).With().Str("tx_hash", tx.RawHash.String()).Logger()
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.RunDuration)

	runLog.Debug().Int("instruction_count", len(tx.Instructions)).Msg("run started")

	d := newDispatcher(eng)
	builder := newResultBuilder(len(tx.Instructions))

	for i, ins := range tx.Instructions {
		insLog := runLog.With().Int("instruction_index", i).Str("instruction_kind", string(ins.Kind)).Logger()
		insTimer := metrics.NewTimer()
		out, err := d.dispatch(ins)
		insTimer.ObserveDurationVec(metrics.InstructionDuration, string(ins.Kind))

		if err != nil {
			insLog.Error().Err(err).Msg("instruction failed")
			metrics.InstructionsTotal.WithLabelValues(string(ins.Kind), "error").Inc()
			builder.fail(err)
			break
		}

		insLog.Debug().Msg("instruction dispatched")
		metrics.InstructionsTotal.WithLabelValues(string(ins.Kind), "ok").Inc()
		builder.record(out)
	}

	metrics.TranslationTableSize.WithLabelValues("buckets").Observe(float64(d.tables.buckets.len()))
	metrics.TranslationTableSize.WithLabelValues("proofs").Observe(float64(d.tables.proofs.len()))

	finalizerErr, stage := finalize(eng)
	if finalizerErr != nil {
		runLog.Warn().Err(finalizerErr).Str("stage", stage).Msg("finalizer error")
		metrics.FinalizerErrorsTotal.WithLabelValues(stage).Inc()
	}

	result := builder.build(finalizerErr)

	outcome := "committed"
	if !result.Committed() {
		outcome = "rejected"
	}
	metrics.TransactionsTotal.WithLabelValues(outcome).Inc()
	runLog.Info().Str("outcome", outcome).Int("outputs", len(result.Outputs)).Msg("run finished")

	return result
}
