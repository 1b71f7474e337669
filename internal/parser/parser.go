package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Result is what one ParseFile invocation produces. File is always a
// valid document root; when Bag carries errors the tree is partial and
// stops at the first malformed construct.
type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the state for one file. The grammar is fail-fast: the
// first syntactic error aborts the parse, no resynchronization happens.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
	failed   bool
}

// ParseFile is the entry point for one file. It requires an already
// constructed lexer over a source.File.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	p.file = arenas.StartFile(lx.EmptySpan(), lx.File().ID)

	p.parseStmts()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

// parseStmts is the top-level loop: one statement at a time until EOF
// or the first error.
func (p *Parser) parseStmts() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) && !p.failed {
		stmtID, ok := p.parseStmt()
		if !ok {
			break
		}
		p.arenas.PushStmt(p.file, stmtID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

// parseStmt dispatches on the current token kind.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Register:
		reg := p.advance()
		next := p.lx.Peek()
		// plain '=' or a type annotation starts a declaration; compound
		// assignment operators stay expression statements
		if next.Kind == token.Assign || next.Kind == token.TypeAnnot {
			return p.parseDeclRest(reg, false)
		}
		seed := p.arenas.NewRegister(reg.Span, reg.Text)
		return p.parseExprStmtFrom(seed)

	case token.KwReturn:
		return p.parseReturn()

	case token.Ident, token.BoolLit, token.StringLit,
		token.NumberLit, token.HexLit, token.BinaryLit, token.OctalLit,
		token.Bang, token.Minus, token.Plus, token.LParen:
		return p.parseExprStmt()

	case token.DirImport:
		return p.parseImport()
	case token.DirConst:
		return p.parseConstDecl()
	case token.DirFunc:
		return p.parseFn()
	case token.DirWhile:
		return p.parseWhile()
	case token.DirTypeOf:
		p.report(diag.FutTypeOfDirective, diag.SevError, tok.Span, "@typeOf is not supported yet")
		return ast.NoStmtID, false
	case token.DirFor:
		p.report(diag.FutForDirective, diag.SevError, tok.Span, "@for is not supported yet")
		return ast.NoStmtID, false

	case token.Invalid:
		// the lexer already reported this lexeme
		p.failed = true
		return ast.NoStmtID, false

	default:
		p.err(diag.SynUnexpectedToken, "unexpected token "+tok.Kind.String())
		return ast.NoStmtID, false
	}
}

// parseExprStmt parses `expr ;`.
func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.finishExprStmt(expr)
}

// parseExprStmtFrom continues an expression statement whose primary was
// already consumed by the statement dispatcher.
func (p *Parser) parseExprStmtFrom(seed ast.ExprID) (ast.StmtID, bool) {
	expr, ok := p.parsePostfixTail(seed)
	if !ok {
		return ast.NoStmtID, false
	}
	expr, ok = p.parseBinaryTail(expr, 0)
	if !ok {
		return ast.NoStmtID, false
	}
	expr, ok = p.parseAssignTail(expr)
	if !ok {
		return ast.NoStmtID, false
	}
	return p.finishExprStmt(expr)
}

func (p *Parser) finishExprStmt(expr ast.ExprID) (ast.StmtID, bool) {
	exprSpan := p.arenas.Exprs.Get(expr).Span
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon,
		"expected ';' after expression, found "+p.lx.Peek().Kind.String())
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.NewExprStmt(exprSpan.Cover(semi.Span), expr), true
}
