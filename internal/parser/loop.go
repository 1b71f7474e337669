package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseWhile parses `@while (cond) |capture| { body }`. The capture
// binding between pipes is optional and restricted to a single primary
// expression.
func (p *Parser) parseWhile() (ast.StmtID, bool) {
	dir := p.advance() // @while
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken,
		"expected '(' after @while, found "+p.lx.Peek().Kind.String()); !ok {
		return ast.NoStmtID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' after the loop condition, found "+p.lx.Peek().Kind.String()); !ok {
		return ast.NoStmtID, false
	}

	capture := ast.NoExprID
	if p.eat(token.PipeDelim) {
		expr, okCapture := p.parsePrimary()
		if !okCapture {
			return ast.NoStmtID, false
		}
		capture = expr
		if _, okPipe := p.expect(token.PipeDelim, diag.SynExpectPipe,
			"expected '|' to close the capture, found "+p.lx.Peek().Kind.String()); !okPipe {
			return ast.NoStmtID, false
		}
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	span := dir.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.NewWhile(span, cond, capture, body), true
}

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken,
		"expected '{', found "+p.lx.Peek().Kind.String())
	if !ok {
		return ast.NoStmtID, false
	}
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, okStmt := p.parseStmt()
		if !okStmt {
			return ast.NoStmtID, false
		}
		stmts = append(stmts, stmt)
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace,
		"expected '}' to close the block, found "+p.lx.Peek().Kind.String())
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.NewBlock(open.Span.Cover(closeTok.Span), stmts), true
}
