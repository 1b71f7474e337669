package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseImport parses `@import("path");`. The path is kept verbatim;
// module resolution happens outside the front end.
func (p *Parser) parseImport() (ast.StmtID, bool) {
	dir := p.advance() // @import
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken,
		"expected '(' after @import, found "+p.lx.Peek().Kind.String()); !ok {
		return ast.NoStmtID, false
	}
	path, ok := p.expect(token.StringLit, diag.SynExpectImportPath,
		"expected import path string, found "+p.lx.Peek().Kind.String())
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' after the import path, found "+p.lx.Peek().Kind.String()); !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon,
		"expected ';' after @import, found "+p.lx.Peek().Kind.String())
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.NewImport(dir.Span.Cover(semi.Span), path.Text, path.Span), true
}
