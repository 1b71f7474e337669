package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// scanDirective consumes `@name`. The name must belong to the closed
// directive set (import, const, typeOf, func, while, for); anything else
// is not a compiler keyword and lexes as Invalid.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'

	nameStart := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameSpan := lx.cursor.SpanFrom(nameStart)
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if nameSpan.Empty() {
		lx.errLex(diag.LexEmptyDirectiveName, sp, "directive name cannot be empty")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	name := string(lx.file.Content[nameSpan.Start:nameSpan.End])
	kind, ok := token.LookupDirective(name)
	if !ok {
		lx.errLex(diag.LexUnknownDirective, sp, "@"+name+" is not a compiler keyword")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: kind, Span: sp, Text: name}
}
