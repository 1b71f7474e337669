package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseExpr parses a full expression: a binary expression with an
// optional right-associative assignment tail.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	left, ok := p.parseBinaryExpr(0)
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseAssignTail(left)
}

// parseAssignTail consumes `op expr` when the current token is an
// assignment operator. The right-hand side re-enters parseExpr, which
// makes chains like `$a = $b = 1` right-associative. No validation of
// the assignment target happens at parse time.
func (p *Parser) parseAssignTail(left ast.ExprID) (ast.ExprID, bool) {
	if !p.lx.Peek().Kind.IsAssignOp() {
		return left, true
	}
	opTok := p.advance()
	right, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	leftSpan := p.arenas.Exprs.Get(left).Span
	rightSpan := p.arenas.Exprs.Get(right).Span
	return p.arenas.NewAssign(leftSpan.Cover(rightSpan), tokenKindToAssignOp(opTok.Kind), left, right), true
}

// parseBinaryExpr climbs operator precedence: it consumes operators with
// precedence >= minPrec, parsing each right-hand side one level tighter,
// which yields left-associative trees.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseBinaryTail(left, minPrec)
}

func (p *Parser) parseBinaryTail(left ast.ExprID, minPrec int) (ast.ExprID, bool) {
	for {
		opKind := p.lx.Peek().Kind
		prec := binaryPrec(opKind)
		if prec < 0 || prec < minPrec {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}
		leftSpan := p.arenas.Exprs.Get(left).Span
		rightSpan := p.arenas.Exprs.Get(right).Span
		left = p.arenas.NewBinary(leftSpan.Cover(rightSpan), tokenKindToBinaryOp(opKind), left, right)
	}
}

// parseUnary handles prefix operators, including `+`/`-` overloaded from
// binary position, then falls through to postfix.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	if op, ok := unaryOp(p.lx.Peek().Kind); ok {
		opTok := p.advance()
		operand, okOperand := p.parseUnary()
		if !okOperand {
			return ast.NoExprID, false
		}
		operandSpan := p.arenas.Exprs.Get(operand).Span
		return p.arenas.NewUnary(opTok.Span.Cover(operandSpan), op, operand), true
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression and its postfix chain.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	prim, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parsePostfixTail(prim)
}

// parsePostfixTail loops over call argument lists and member accesses,
// left to right.
func (p *Parser) parsePostfixTail(expr ast.ExprID) (ast.ExprID, bool) {
	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			p.advance()
			args, closeTok, ok := p.parseCallArgs()
			if !ok {
				return ast.NoExprID, false
			}
			calleeSpan := p.arenas.Exprs.Get(expr).Span
			expr = p.arenas.NewCall(calleeSpan.Cover(closeTok.Span), expr, args)

		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
				"expected identifier after '.', found "+p.lx.Peek().Kind.String())
			if !ok {
				return ast.NoExprID, false
			}
			prop := p.arenas.NewIdent(name.Span, name.Text)
			objSpan := p.arenas.Exprs.Get(expr).Span
			expr = p.arenas.NewMember(objSpan.Cover(name.Span), expr, prop)

		default:
			return expr, true
		}
	}
}

// parseCallArgs parses a comma-separated argument list after '('. A
// trailing comma before ')' is tolerated.
func (p *Parser) parseCallArgs() (args []ast.ExprID, closeTok token.Token, ok bool) {
	for !p.at(token.RParen) {
		arg, okArg := p.parseExpr()
		if !okArg {
			return nil, token.Token{}, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	closeTok, ok = p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' to close the argument list, found "+p.lx.Peek().Kind.String())
	if !ok {
		return nil, token.Token{}, false
	}
	return args, closeTok, true
}

// parsePrimary handles literals, references, and parenthesized groups.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.NumberLit:
		p.advance()
		return p.arenas.NewLiteral(tok.Span, ast.LitNumber, tok.Text), true
	case token.HexLit:
		p.advance()
		return p.arenas.NewLiteral(tok.Span, ast.LitHex, tok.Text), true
	case token.BinaryLit:
		p.advance()
		return p.arenas.NewLiteral(tok.Span, ast.LitBinary, tok.Text), true
	case token.OctalLit:
		p.advance()
		return p.arenas.NewLiteral(tok.Span, ast.LitOctal, tok.Text), true
	case token.BoolLit:
		p.advance()
		return p.arenas.NewLiteral(tok.Span, ast.LitBool, tok.Text), true
	case token.StringLit:
		p.advance()
		return p.arenas.NewLiteral(tok.Span, ast.LitString, tok.Text), true

	case token.Ident:
		p.advance()
		return p.arenas.NewIdent(tok.Span, tok.Text), true

	case token.Register:
		p.advance()
		return p.arenas.NewRegister(tok.Span, tok.Text), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen,
			"expected ')' to close the group, found "+p.lx.Peek().Kind.String())
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.NewGroup(open.Span.Cover(closeTok.Span), inner), true

	default:
		if tok.Kind == token.KwReturn || tok.Kind.IsDirective() {
			p.err(diag.SynUnexpectedKeyword, "unexpected keyword "+keywordLexeme(tok))
			return ast.NoExprID, false
		}
		p.err(diag.SynExpectExpression, "unexpected token in expression: "+tok.Kind.String())
		return ast.NoExprID, false
	}
}

// keywordLexeme reconstructs the source form of a keyword or directive
// token; directive texts are stored without their '@' sigil.
func keywordLexeme(tok token.Token) string {
	if tok.Kind.IsDirective() {
		return "@" + tok.Text
	}
	return tok.Text
}
