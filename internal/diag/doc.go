// Package diag defines the diagnostic model shared by all compiler phases.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// short human-oriented Message, a primary source.Span, and optional Notes
// adding secondary context. Phases emit diagnostics through a Reporter so
// that producers stay decoupled from storage; BagReporter aggregates into
// a Bag, which supports sorting and deduplication for deterministic output.
//
// Rendering and host integration live elsewhere: the CLI formats bags for
// terminals, and Sink carries located build errors to the host editor
// channel. This package performs no IO.
package diag
