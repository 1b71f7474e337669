package driver

import (
	"errors"
	"io/fs"

	"volt/internal/diag"
	"volt/internal/source"
)

// loadDiagnostic turns a FileSet.Load failure into a diagnostic so that
// missing or unreadable inputs flow through the same reporting path as
// lexical and syntactic errors.
func loadDiagnostic(path string, err error) diag.Diagnostic {
	code := diag.IOReadFailed
	if errors.Is(err, fs.ErrNotExist) {
		code = diag.IOFileNotFound
	}
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  path + ": " + err.Error(),
		Primary:  source.Span{},
	}
}
