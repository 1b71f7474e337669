package parser

import (
	"volt/internal/ast"
	"volt/internal/token"
)

// Binary operator precedences; higher binds tighter. Assignment sits
// below all of these and is handled separately (right-associative).
const (
	precLogicalOr      = 2 // ||
	precLogicalAnd     = 3 // &&
	precEquality       = 4 // == !=
	precComparison     = 5 // < <= > >=
	precAdditive       = 6 // + -
	precMultiplicative = 7 // * / %
	precCaret          = 8 // ^
)

// binaryPrec returns the precedence for a binary operator token, or -1
// when the token is not a binary operator.
func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.OrOr:
		return precLogicalOr
	case token.AndAnd:
		return precLogicalAnd
	case token.EqEq, token.BangEq:
		return precEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	case token.Caret:
		return precCaret
	default:
		return -1
	}
}

func tokenKindToBinaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.Percent:
		return ast.BinRem
	case token.Caret:
		return ast.BinCaret
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNe
	case token.Lt:
		return ast.BinLt
	case token.LtEq:
		return ast.BinLe
	case token.Gt:
		return ast.BinGt
	case token.GtEq:
		return ast.BinGe
	case token.AndAnd:
		return ast.BinAnd
	case token.OrOr:
		return ast.BinOr
	default:
		return ast.BinInvalid
	}
}

func tokenKindToAssignOp(kind token.Kind) ast.AssignOp {
	switch kind {
	case token.Assign:
		return ast.AssignEq
	case token.PlusAssign:
		return ast.AssignAdd
	case token.MinusAssign:
		return ast.AssignSub
	case token.StarAssign:
		return ast.AssignMul
	case token.SlashAssign:
		return ast.AssignDiv
	case token.PercentAssign:
		return ast.AssignRem
	case token.CaretAssign:
		return ast.AssignCaret
	case token.AndAndAssign:
		return ast.AssignAnd
	case token.OrOrAssign:
		return ast.AssignOr
	default:
		return ast.AssignInvalid
	}
}

// unaryOp returns the prefix operator for a token. Plus and Minus are
// binary operators overloaded into prefix position.
func unaryOp(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Bang:
		return ast.UnNot, true
	case token.Minus:
		return ast.UnNeg, true
	case token.Plus:
		return ast.UnPlus, true
	default:
		return ast.UnInvalid, false
	}
}
