package diag

import "volt/internal/source"

// New builds a diagnostic. When msg is empty the code's title is used.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	if msg == "" {
		msg = code.Title()
	}
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote returns a copy with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
