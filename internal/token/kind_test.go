package token_test

import (
	"testing"

	"volt/internal/token"
)

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.NumberLit, token.HexLit, token.BinaryLit,
		token.OctalLit, token.BoolLit, token.StringLit,
	}
	for _, k := range lits {
		if !k.IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Register, token.KwReturn, token.Plus, token.LParen}
	for _, k := range non {
		if k.IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsBinaryOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Caret, token.EqEq, token.BangEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.AndAnd, token.OrOr,
	}
	for _, k := range ops {
		if !k.IsBinaryOp() {
			t.Fatalf("%v should be a binary op", k)
		}
	}
	non := []token.Kind{token.Bang, token.Assign, token.PlusAssign, token.Semicolon}
	for _, k := range non {
		if k.IsBinaryOp() {
			t.Fatalf("%v must NOT be a binary op", k)
		}
	}
}

func TestIsAssignOp(t *testing.T) {
	ops := []token.Kind{
		token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.CaretAssign,
		token.AndAndAssign, token.OrOrAssign,
	}
	for _, k := range ops {
		if !k.IsAssignOp() {
			t.Fatalf("%v should be an assign op", k)
		}
	}
	// Comparison operators never belong to the assignment set.
	non := []token.Kind{token.EqEq, token.BangEq, token.GtEq, token.LtEq, token.Gt, token.Lt}
	for _, k := range non {
		if k.IsAssignOp() {
			t.Fatalf("%v must NOT be an assign op", k)
		}
	}
}

func TestIsUnaryOp(t *testing.T) {
	if !token.Bang.IsUnaryOp() || !token.Minus.IsUnaryOp() {
		t.Fatal("expected '!' and '-' to be unary operators")
	}
	if token.Star.IsUnaryOp() {
		t.Fatal("'*' must not be a unary operator")
	}
}

func TestIsDelim(t *testing.T) {
	delims := []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Comma, token.Semicolon, token.Colon, token.Dot, token.PipeDelim,
	}
	for _, k := range delims {
		if !k.IsDelim() {
			t.Fatalf("%v should be a delimiter", k)
		}
	}
}

func TestIsDirective(t *testing.T) {
	dirs := []token.Kind{
		token.DirImport, token.DirConst, token.DirTypeOf,
		token.DirFunc, token.DirWhile, token.DirFor,
	}
	for _, k := range dirs {
		if !k.IsDirective() {
			t.Fatalf("%v should be a directive", k)
		}
	}
	if token.KwReturn.IsDirective() {
		t.Fatal("KwReturn must not be a directive")
	}
}
