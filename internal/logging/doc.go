// Package logging assembles structured slog loggers and formatting helpers used
// across dramarec.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so HTTP handlers can tag log
// lines with request correlation IDs. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit the same fields and routing as the rest of the system.
package logging
