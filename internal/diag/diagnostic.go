package diag

import (
	"volt/internal/source"
)

// Note attaches supporting context to a diagnostic. Span may be empty
// for free-floating explanatory text.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single reportable finding. Primary is the span the
// finding points at and is always set.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
