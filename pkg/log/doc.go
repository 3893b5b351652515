/*
Package log provides structured logging for the transaction instruction
interpreter using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with context-specific child loggers, configurable log levels, and helper
functions for common logging patterns. All logs include timestamps and
support filtering by severity level for production debugging.

# Architecture

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stdout, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Context Loggers                     │          │
	│  │  - WithComponent("dispatcher")              │          │
	│  │  - WithRunID("run-abc123")                  │          │
	│  │  - WithTxHash("a1b2...")                    │          │
	│  │  - WithInstruction(3, "TakeFromWorktop")    │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │  {"level":"debug","run_id":"run-abc123",    │          │
	│  │   "instruction_index":3,                    │          │
	│  │   "instruction_kind":"TakeFromWorktop",     │          │
	│  │   "message":"instruction dispatched"}       │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Usage

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true, Output: os.Stdout})

	runLog := log.WithRunID(runID.String())
	runLog.Debug().Msg("run started")

	insLog := runLog.With().Int("instruction_index", i).Logger()
	insLog.Error().Err(err).Msg("instruction failed")

# Log Levels

Debug is for run start and per-instruction dispatch tracing, Info for run finish,
Warn for finalizer-stage errors that do not override the main-loop result,
Error for the first instruction failure in a run.

# Design Patterns

Global Logger Pattern: a single package-level Logger instance, initialized
once at process start and read from every package without being passed
down explicitly.

Context Logger Pattern: WithRunID/WithTxHash/WithInstruction return child
loggers carrying structured fields, so callers never repeat
.Str("run_id", ...) at every call site.

# Security

Instruction arguments may carry application data; never log a full
types.Value tree at Info level or above, since it is not this package's
job to decide what is sensitive. Debug-level per-instruction logs include
only the instruction kind and index, never its Args.
*/
package log
