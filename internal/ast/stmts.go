package ast

import (
	"volt/internal/source"
)

type StmtExprData struct {
	Expr ExprID
}

// StmtDeclData carries a register declaration. Exactly one of Value and
// ValueStmt is set: `$a = expr` binds an expression, `$a: T` binds the
// next statement as the declared value.
type StmtDeclData struct {
	Name      source.StringID
	NameSpan  source.Span
	Type      TypeID // NoTypeID when untyped
	Value     ExprID
	ValueStmt StmtID
	IsConst   bool
}

type StmtReturnData struct {
	Value ExprID // NoExprID for bare `return;`
}

type StmtWhileData struct {
	Cond    ExprID
	Capture ExprID // NoExprID when there is no |x| binding
	Body    StmtID // always a StmtBlock
}

type StmtBlockData struct {
	Stmts []StmtID
}

type StmtImportData struct {
	Path     source.StringID
	PathSpan source.Span
}

type StmtFnData struct {
	Name       source.StringID
	NameSpan   source.Span
	Params     []FnParamID
	ReturnType TypeID // NoTypeID when omitted
	Body       StmtID
}

// Stmts manages allocation of statements and their per-kind payloads.
type Stmts struct {
	Arena   *Arena[Stmt]
	Exprs   *Arena[StmtExprData]
	Decls   *Arena[StmtDeclData]
	Returns *Arena[StmtReturnData]
	Whiles  *Arena[StmtWhileData]
	Blocks  *Arena[StmtBlockData]
	Imports *Arena[StmtImportData]
	Fns     *Arena[StmtFnData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
		Decls:   NewArena[StmtDeclData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Whiles:  NewArena[StmtWhileData](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
		Imports: NewArena[StmtImportData](capHint),
		Fns:     NewArena[StmtFnData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression-statement data for the given ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewDecl creates a register declaration statement.
func (s *Stmts) NewDecl(span source.Span, data StmtDeclData) StmtID {
	payload := s.Decls.Allocate(data)
	return s.new(StmtDecl, span, PayloadID(payload))
}

// Decl returns the declaration data for the given ID.
func (s *Stmts) Decl(id StmtID) (*StmtDeclData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDecl {
		return nil, false
	}
	return s.Decls.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return-statement data for the given ID.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a while-loop statement.
func (s *Stmts) NewWhile(span source.Span, cond, capture ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Capture: capture, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the while-loop data for the given ID.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewBlock creates a block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block data for the given ID.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewImport creates an import directive statement.
func (s *Stmts) NewImport(span source.Span, path source.StringID, pathSpan source.Span) StmtID {
	payload := s.Imports.Allocate(StmtImportData{Path: path, PathSpan: pathSpan})
	return s.new(StmtImport, span, PayloadID(payload))
}

// Import returns the import data for the given ID.
func (s *Stmts) Import(id StmtID) (*StmtImportData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtImport {
		return nil, false
	}
	return s.Imports.Get(uint32(stmt.Payload)), true
}

// NewFn creates a function declaration statement.
func (s *Stmts) NewFn(span source.Span, data StmtFnData) StmtID {
	payload := s.Fns.Allocate(data)
	return s.new(StmtFn, span, PayloadID(payload))
}

// Fn returns the function data for the given ID.
func (s *Stmts) Fn(id StmtID) (*StmtFnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFn {
		return nil, false
	}
	return s.Fns.Get(uint32(stmt.Payload)), true
}
