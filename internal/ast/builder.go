package ast

import (
	"volt/internal/source"
)

type Hints struct{ Files, Stmts, Exprs uint }

// Builder is the single entry point the parser allocates nodes through.
// It owns the arenas plus the string interner, stamps every node with the
// document root being built, and wires children's parent back-references
// at construction time so the tree invariant holds without a fixup pass.
type Builder struct {
	Files   *Files
	Stmts   *Stmts
	Exprs   *Exprs
	Types   *Types
	Params  *FnParams
	Strings *source.Interner

	file FileID // document currently under construction
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files:   NewFiles(hints.Files),
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Types:   NewTypes(hints.Stmts),
		Params:  NewFnParams(hints.Stmts),
		Strings: source.NewInterner(),
	}
}

// Intern interns a string through the builder's interner.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}

// StartFile allocates the document root for one source unit. All nodes
// created until the next StartFile belong to it.
func (b *Builder) StartFile(sp source.Span, src source.FileID) FileID {
	b.file = b.Files.New(sp, src)
	return b.file
}

// PushStmt appends a top-level statement to the file and parents it there.
func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
	b.setStmtParent(stmt, FileRef(file))
}

func (b *Builder) setExprParent(id ExprID, parent NodeRef) {
	if e := b.Exprs.Get(id); e != nil {
		e.Parent = parent
	}
}

func (b *Builder) setStmtParent(id StmtID, parent NodeRef) {
	if s := b.Stmts.Get(id); s != nil {
		s.Parent = parent
	}
}

func (b *Builder) stampExpr(id ExprID) ExprID {
	b.Exprs.Get(id).File = b.file
	return id
}

func (b *Builder) stampStmt(id StmtID) StmtID {
	b.Stmts.Get(id).File = b.file
	return id
}

// ===== Expressions =====

func (b *Builder) NewIdent(span source.Span, name string) ExprID {
	return b.stampExpr(b.Exprs.NewIdent(span, b.Intern(name)))
}

func (b *Builder) NewRegister(span source.Span, name string) ExprID {
	return b.stampExpr(b.Exprs.NewRegister(span, b.Intern(name)))
}

func (b *Builder) NewLiteral(span source.Span, kind ExprLitKind, raw string) ExprID {
	return b.stampExpr(b.Exprs.NewLiteral(span, kind, b.Intern(raw)))
}

func (b *Builder) NewMember(span source.Span, object, property ExprID) ExprID {
	id := b.stampExpr(b.Exprs.NewMember(span, object, property))
	b.setExprParent(object, ExprRef(id))
	b.setExprParent(property, ExprRef(id))
	return id
}

func (b *Builder) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	id := b.stampExpr(b.Exprs.NewCall(span, callee, args))
	b.setExprParent(callee, ExprRef(id))
	for _, arg := range args {
		b.setExprParent(arg, ExprRef(id))
	}
	return id
}

func (b *Builder) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	id := b.stampExpr(b.Exprs.NewBinary(span, op, left, right))
	b.setExprParent(left, ExprRef(id))
	b.setExprParent(right, ExprRef(id))
	return id
}

func (b *Builder) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	id := b.stampExpr(b.Exprs.NewUnary(span, op, operand))
	b.setExprParent(operand, ExprRef(id))
	return id
}

func (b *Builder) NewAssign(span source.Span, op AssignOp, target, value ExprID) ExprID {
	id := b.stampExpr(b.Exprs.NewAssign(span, op, target, value))
	b.setExprParent(target, ExprRef(id))
	b.setExprParent(value, ExprRef(id))
	return id
}

func (b *Builder) NewGroup(span source.Span, inner ExprID) ExprID {
	id := b.stampExpr(b.Exprs.NewGroup(span, inner))
	b.setExprParent(inner, ExprRef(id))
	return id
}

// ===== Types and parameters =====

func (b *Builder) NewTypeName(span source.Span, name string) TypeID {
	return b.Types.New(span, b.Intern(name))
}

func (b *Builder) NewFnParam(span source.Span, name string, typ TypeID) FnParamID {
	return b.Params.New(span, b.Intern(name), typ)
}

// ===== Statements =====

func (b *Builder) NewExprStmt(span source.Span, expr ExprID) StmtID {
	id := b.stampStmt(b.Stmts.NewExpr(span, expr))
	b.setExprParent(expr, StmtRef(id))
	return id
}

func (b *Builder) NewDecl(span source.Span, data StmtDeclData) StmtID {
	id := b.stampStmt(b.Stmts.NewDecl(span, data))
	if data.Value.IsValid() {
		b.setExprParent(data.Value, StmtRef(id))
	}
	if data.ValueStmt.IsValid() {
		b.setStmtParent(data.ValueStmt, StmtRef(id))
	}
	return id
}

func (b *Builder) NewReturn(span source.Span, value ExprID) StmtID {
	id := b.stampStmt(b.Stmts.NewReturn(span, value))
	if value.IsValid() {
		b.setExprParent(value, StmtRef(id))
	}
	return id
}

func (b *Builder) NewWhile(span source.Span, cond, capture ExprID, body StmtID) StmtID {
	id := b.stampStmt(b.Stmts.NewWhile(span, cond, capture, body))
	b.setExprParent(cond, StmtRef(id))
	if capture.IsValid() {
		b.setExprParent(capture, StmtRef(id))
	}
	b.setStmtParent(body, StmtRef(id))
	return id
}

func (b *Builder) NewBlock(span source.Span, stmts []StmtID) StmtID {
	id := b.stampStmt(b.Stmts.NewBlock(span, stmts))
	for _, s := range stmts {
		b.setStmtParent(s, StmtRef(id))
	}
	return id
}

func (b *Builder) NewImport(span source.Span, path string, pathSpan source.Span) StmtID {
	return b.stampStmt(b.Stmts.NewImport(span, b.Intern(path), pathSpan))
}

func (b *Builder) NewFn(span source.Span, data StmtFnData) StmtID {
	id := b.stampStmt(b.Stmts.NewFn(span, data))
	b.setStmtParent(data.Body, StmtRef(id))
	return id
}
