/*
Package metrics provides Prometheus metrics collection and exposition for
the transaction instruction interpreter.

The package defines and registers interpreter metrics using the Prometheus
client library: instruction throughput by kind and outcome, transaction
outcomes, run and per-instruction latency, translation table occupancy at
end of run, and finalizer-stage error counts. Metrics are exposed via an
HTTP endpoint for scraping by Prometheus servers.

# Architecture

	┌──────────────────── METRICS SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │          Prometheus Registry                │          │
	│  │  - Global DefaultRegistry                   │          │
	│  │  - MustRegister at package init             │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │              Metric Categories              │          │
	│  │                                              │          │
	│  │  InstructionsTotal: count by kind, outcome  │          │
	│  │  TransactionsTotal: count by outcome        │          │
	│  │  RunDuration: full Run call latency         │          │
	│  │  InstructionDuration: per-kind latency      │          │
	│  │  TranslationTableSize: end-of-run occupancy │          │
	│  │  FinalizerErrorsTotal: drop/check failures  │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │          HTTP Metrics Endpoint              │          │
	│  │  - Path: /metrics                           │          │
	│  │  - Handler: promhttp.Handler()              │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Health and Readiness

The package also carries a small health registry (RegisterComponent,
GetHealth, GetReadiness) used by the CLI's long-running serve mode, which
registers the "engine" component as healthy once at startup and does not
update it afterward; it is reported independent of Prometheus scraping.
This has nothing to do with transaction semantics:
an interpreter run never consults health state, it only ever consults the
Engine it was given.

# Timer

Timer is a small stopwatch helper: NewTimer starts it, ObserveDuration (or
ObserveDurationVec) records the elapsed time to a histogram. The
interpreter wraps one Timer around each Run call and one around each
instruction dispatch.
*/
package metrics
