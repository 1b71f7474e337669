// Package diag defines the diagnostic model shared by the lexer, the
// parser and the driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the scanning and parsing phases.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering lives in internal/diagfmt; orchestration lives in the driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable banded
//     string form such as LEX1002 or SYN2001.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "declared here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. The parser
// constructs a ReportBuilder via NewReportBuilder (or the ReportError /
// ReportWarning / ReportInfo helpers), chains WithNote, and calls Emit.
// When no metadata is needed, phases may call Reporter.Report directly.
// BagReporter aggregates diagnostics into a Bag, which supports sorting,
// deduplication and merging.
//
// Keep the data model deterministic: any new fields should avoid side
// effects so the CLI and future tooling can safely serialise diagnostics
// for caching and testing.
package diag
