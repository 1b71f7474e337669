package lexer

import (
	"volt/internal/diag"
	"volt/internal/source"
)

type Options struct {
	// Reporter receives lexical diagnostics. May be nil: errors are then
	// dropped but lexing still continues and emits Invalid tokens.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
