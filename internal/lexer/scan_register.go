package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// scanRegister consumes `$name` and emits Register with the bare name as
// Text (sigil excluded, span includes it). When the name is immediately
// followed by ':' the type annotation is scanned here as well and queued
// as a TypeAnnot token right behind the register.
func (lx *Lexer) scanRegister() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'

	nameStart := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameSpan := lx.cursor.SpanFrom(nameStart)
	if nameSpan.Empty() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexEmptyRegisterName, sp, "register name cannot be empty")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	reg := token.Token{Kind: token.Register, Span: sp, Text: string(lx.file.Content[nameSpan.Start:nameSpan.End])}

	if lx.cursor.Peek() == ':' {
		if annot, ok := lx.scanTypeAnnot(); ok {
			lx.pending = append(lx.pending, annot)
		}
	}

	return reg
}

// scanTypeAnnot consumes `: TypeName` after a register. The type name is a
// maximal run of bytes that are not whitespace and not '%'. When the run
// turns out empty the ':' is put back so it lexes as an ordinary Colon.
func (lx *Lexer) scanTypeAnnot() (token.Token, bool) {
	colon := lx.cursor.Mark()
	lx.cursor.Bump() // ':'
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}

	nameStart := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '%' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(nameStart)
	if sp.Empty() {
		lx.cursor.Reset(colon)
		return token.Token{}, false
	}
	return token.Token{Kind: token.TypeAnnot, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}, true
}
