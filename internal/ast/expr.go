package ast

import (
	"volt/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprRegister
	ExprLit
	ExprMember
	ExprCall
	ExprBinary
	ExprUnary
	ExprAssign
	ExprGroup
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "ident"
	case ExprRegister:
		return "register"
	case ExprLit:
		return "literal"
	case ExprMember:
		return "member"
	case ExprCall:
		return "call"
	case ExprBinary:
		return "binary"
	case ExprUnary:
		return "unary"
	case ExprAssign:
		return "assign"
	case ExprGroup:
		return "group"
	default:
		return "invalid"
	}
}

// Expr is the arena header for one expression node. Parent and File are
// non-owning back-references assigned exactly once when the enclosing
// node is built.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
	Parent  NodeRef
	File    FileID
}
