package lexer

import (
	"volt/internal/source"
	"volt/internal/token"
)

// Lexer produces the significant-token stream for one file. Registers with
// a type annotation expand into two tokens (Register, then TypeAnnot), so
// scanners may queue extra tokens into pending.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *token.Token  // one-token lookahead buffer
	hold    []token.Trivia // accumulated leading trivia
	pending []token.Token  // tokens queued by a scanner ahead of the cursor
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with Leading already collected.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if len(lx.pending) > 0 {
		tok := lx.pending[0]
		lx.pending = lx.pending[1:]
		return tok
	}

	lx.collectLeadingTrivia()

	// Leading from hold is not glued onto EOF.
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	case ch == '$':
		tok = lx.scanRegister()

	case ch == '@':
		tok = lx.scanDirective()

	case isDec(ch):
		tok = lx.scanNumber()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// File returns the source file this lexer reads from.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return lx.emptySpan()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Scan drains the lexer into a complete token slice, EOF included.
// The stream is finite: after the first EOF no further tokens follow.
func (lx *Lexer) Scan() []token.Token {
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
