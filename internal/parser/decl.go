package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseConstDecl parses `@const $name ...`; the rest is an ordinary
// declaration with the const flag set.
func (p *Parser) parseConstDecl() (ast.StmtID, bool) {
	dir := p.advance() // @const
	reg, ok := p.expect(token.Register, diag.SynExpectIdentifier,
		"expected register after @const, found "+p.lx.Peek().Kind.String())
	if !ok {
		return ast.NoStmtID, false
	}
	id, ok := p.parseDeclRest(reg, true)
	if !ok {
		return ast.NoStmtID, false
	}
	stmt := p.arenas.Stmts.Get(id)
	stmt.Span = dir.Span.Cover(stmt.Span)
	return id, true
}

// parseDeclRest parses the remainder of a register declaration after the
// register token has been consumed. Two forms:
//
//	$name = expr ;        value is an expression
//	$name: Type <stmt>    value is the next statement
func (p *Parser) parseDeclRest(reg token.Token, isConst bool) (ast.StmtID, bool) {
	if p.at(token.TypeAnnot) {
		annot := p.advance()
		typ := p.arenas.NewTypeName(annot.Span, annot.Text)
		valueStmt, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		span := reg.Span.Cover(p.arenas.Stmts.Get(valueStmt).Span)
		return p.arenas.NewDecl(span, ast.StmtDeclData{
			Name:      p.arenas.Intern(reg.Text),
			NameSpan:  reg.Span,
			Type:      typ,
			ValueStmt: valueStmt,
			IsConst:   isConst,
		}), true
	}

	if _, ok := p.expect(token.Assign, diag.SynExpectAssign,
		"expected '=' in declaration, found "+p.lx.Peek().Kind.String()); !ok {
		return ast.NoStmtID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	span := reg.Span.Cover(p.arenas.Exprs.Get(value).Span)
	if p.at(token.Semicolon) {
		semi := p.advance()
		span = span.Cover(semi.Span)
	}
	return p.arenas.NewDecl(span, ast.StmtDeclData{
		Name:     p.arenas.Intern(reg.Text),
		NameSpan: reg.Span,
		Value:    value,
		IsConst:  isConst,
	}), true
}

// parseReturn parses `return;` or `return expr;`.
func (p *Parser) parseReturn() (ast.StmtID, bool) {
	kw := p.advance() // return
	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = expr
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon,
		"expected ';' after return, found "+p.lx.Peek().Kind.String())
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.NewReturn(kw.Span.Cover(semi.Span), value), true
}
