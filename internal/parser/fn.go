package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseFn parses `@func name(params): ReturnType { body }`. The return
// type annotation is optional; parameter and return types are kept on
// the node for later stages.
func (p *Parser) parseFn() (ast.StmtID, bool) {
	dir := p.advance() // @func
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected function name after @func, found "+p.lx.Peek().Kind.String())
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken,
		"expected '(' after function name, found "+p.lx.Peek().Kind.String()); !ok {
		return ast.NoStmtID, false
	}

	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoStmtID, false
	}

	returnType := ast.NoTypeID
	if p.eat(token.Colon) {
		typeTok, okType := p.expect(token.Ident, diag.SynExpectIdentifier,
			"expected return type after ':', found "+p.lx.Peek().Kind.String())
		if !okType {
			return ast.NoStmtID, false
		}
		returnType = p.arenas.NewTypeName(typeTok.Span, typeTok.Text)
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	span := dir.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.NewFn(span, ast.StmtFnData{
		Name:       p.arenas.Intern(name.Text),
		NameSpan:   name.Span,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}), true
}

// parseFnParams parses `name[: Type] (, name[: Type])* )`, tolerating a
// trailing comma. The opening paren is already consumed.
func (p *Parser) parseFnParams() ([]ast.FnParamID, bool) {
	var params []ast.FnParamID
	for !p.at(token.RParen) {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
			"expected parameter name, found "+p.lx.Peek().Kind.String())
		if !ok {
			return nil, false
		}
		typ := ast.NoTypeID
		span := name.Span
		if p.eat(token.Colon) {
			typeTok, okType := p.expect(token.Ident, diag.SynExpectIdentifier,
				"expected parameter type after ':', found "+p.lx.Peek().Kind.String())
			if !okType {
				return nil, false
			}
			typ = p.arenas.NewTypeName(typeTok.Span, typeTok.Text)
			span = span.Cover(typeTok.Span)
		}
		params = append(params, p.arenas.NewFnParam(span, name.Text, typ))
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' to close the parameter list, found "+p.lx.Peek().Kind.String()); !ok {
		return nil, false
	}
	return params, true
}
