package ast

import (
	"volt/internal/source"
)

type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtDecl
	StmtReturn
	StmtWhile
	StmtBlock
	StmtImport
	StmtFn
)

func (k StmtKind) String() string {
	switch k {
	case StmtExpr:
		return "expr"
	case StmtDecl:
		return "decl"
	case StmtReturn:
		return "return"
	case StmtWhile:
		return "while"
	case StmtBlock:
		return "block"
	case StmtImport:
		return "import"
	case StmtFn:
		return "fn"
	default:
		return "invalid"
	}
}

// Stmt is the arena header for one statement node. Parent and File are
// non-owning back-references assigned exactly once when the enclosing
// node (or the file, for top-level statements) is built.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
	Parent  NodeRef
	File    FileID
}
