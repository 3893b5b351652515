package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// InstructionsTotal counts dispatched instructions by kind and outcome.
	InstructionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txscope_instructions_total",
			Help: "Total number of instructions dispatched, by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// TransactionsTotal counts completed Run calls by final outcome.
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txscope_transactions_total",
			Help: "Total number of transactions interpreted, by outcome",
		},
		[]string{"outcome"},
	)

	// RunDuration observes the wall-clock time of a full Run call,
	// including the finalizer.
	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "txscope_run_duration_seconds",
			Help:    "Duration of a full transaction interpretation, finalizer included",
			Buckets: prometheus.DefBuckets,
		},
	)

	// InstructionDuration observes per-instruction dispatch time.
	InstructionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "txscope_instruction_duration_seconds",
			Help:    "Duration of a single instruction's dispatch, by kind",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// TranslationTableSize observes how many bucket/proof ids were live in
	// each table at the moment a run finished, before the finalizer drops
	// remaining proofs. Non-zero proof counts here are expected (a run may
	// finish with unconsumed proofs the finalizer will clean up); non-zero
	// bucket counts always indicate a dangling-resource failure.
	TranslationTableSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "txscope_translation_table_size",
			Help:    "Number of live entries in a translation table at end of run, by table",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		},
		[]string{"table"},
	)

	// FinalizerErrorsTotal counts finalizer-stage failures separately from
	// main-loop failures, since the finalizer always runs regardless of
	// whether the main loop already failed.
	FinalizerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txscope_finalizer_errors_total",
			Help: "Total number of finalizer-stage errors, by stage",
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(InstructionsTotal)
	prometheus.MustRegister(TransactionsTotal)
	prometheus.MustRegister(RunDuration)
	prometheus.MustRegister(InstructionDuration)
	prometheus.MustRegister(TranslationTableSize)
	prometheus.MustRegister(FinalizerErrorsTotal)
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the duration to a histogram vec with labels.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
