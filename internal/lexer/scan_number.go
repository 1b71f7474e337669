package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// scanNumber handles 0x/0b/0o prefixed literals and decimal literals with
// an optional fraction. The radix prefix stays in Token.Text; no value
// conversion happens here, that is deferred to later stages.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		switch b1 {
		case 'x', 'X':
			return lx.scanRadix(start, token.HexLit, isHex)
		case 'b', 'B':
			return lx.scanRadix(start, token.BinaryLit, isBin)
		case 'o', 'O':
			return lx.scanRadix(start, token.OctalLit, isOctal)
		}
	}

	// decimal integer part
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fraction only when '.' is followed by at least one digit,
	// otherwise the dot belongs to a member access
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanRadix consumes a two-byte radix prefix and a maximal run of digits
// valid for that radix. A prefix with no digits after it is malformed.
func (lx *Lexer) scanRadix(start Mark, kind token.Kind, valid func(byte) bool) token.Token {
	lx.cursor.Bump() // '0'
	lx.cursor.Bump() // radix letter
	digits := 0
	for valid(lx.cursor.Peek()) {
		lx.cursor.Bump()
		digits++
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if digits == 0 {
		lx.errLex(diag.LexBadNumber, sp, "expected digits after radix prefix")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
