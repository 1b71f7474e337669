package diagfmt

import (
	"fmt"
	"io"

	"volt/internal/ast"
	"volt/internal/source"
)

// DumpFileTree renders the document tree with box-drawing connectors:
//
//	file main.vt
//	├── decl $a
//	│   └── literal number "1"
//	└── fn add(a: i32, b: i32): i32
//	    └── block
//	        └── return
//	            └── binary +
//	                ├── ident a
//	                └── ident b
func DumpFileTree(w io.Writer, b *ast.Builder, fileID ast.FileID, fs *source.FileSet) {
	file := b.Files.Get(fileID)
	if file == nil {
		fmt.Fprintln(w, "file <invalid>")
		return
	}
	path := "<virtual>"
	if f := fs.Get(file.Source); f != nil {
		path = f.Path
	}
	fmt.Fprintf(w, "file %s\n", path)
	for i, stmt := range file.Stmts {
		d := dumper{w: w, b: b}
		d.stmt(stmt, "", i == len(file.Stmts)-1)
	}
}

type dumper struct {
	w io.Writer
	b *ast.Builder
}

func (d *dumper) line(prefix string, last bool, format string, args ...any) string {
	connector := "├── "
	childPrefix := prefix + "│   "
	if last {
		connector = "└── "
		childPrefix = prefix + "    "
	}
	fmt.Fprintf(d.w, "%s%s%s\n", prefix, connector, fmt.Sprintf(format, args...))
	return childPrefix
}

func (d *dumper) lookup(id source.StringID) string {
	return d.b.Strings.MustLookup(id)
}

func (d *dumper) typeName(id ast.TypeID) string {
	if !id.IsValid() {
		return ""
	}
	return d.lookup(d.b.Types.Get(id).Name)
}

func (d *dumper) stmt(id ast.StmtID, prefix string, last bool) {
	stmt := d.b.Stmts.Get(id)
	if stmt == nil {
		d.line(prefix, last, "<invalid stmt>")
		return
	}
	switch stmt.Kind {
	case ast.StmtDecl:
		data, _ := d.b.Stmts.Decl(id)
		label := "decl $" + d.lookup(data.Name)
		if data.IsConst {
			label = "const " + label
		}
		if data.Type.IsValid() {
			label += ": " + d.typeName(data.Type)
		}
		child := d.line(prefix, last, "%s", label)
		if data.Value.IsValid() {
			d.expr(data.Value, child, true)
		}
		if data.ValueStmt.IsValid() {
			d.stmt(data.ValueStmt, child, true)
		}

	case ast.StmtExpr:
		data, _ := d.b.Stmts.Expr(id)
		child := d.line(prefix, last, "expr-stmt")
		d.expr(data.Expr, child, true)

	case ast.StmtReturn:
		data, _ := d.b.Stmts.Return(id)
		child := d.line(prefix, last, "return")
		if data.Value.IsValid() {
			d.expr(data.Value, child, true)
		}

	case ast.StmtWhile:
		data, _ := d.b.Stmts.While(id)
		child := d.line(prefix, last, "while")
		d.expr(data.Cond, child, false)
		if data.Capture.IsValid() {
			d.expr(data.Capture, child, false)
		}
		d.stmt(data.Body, child, true)

	case ast.StmtBlock:
		data, _ := d.b.Stmts.Block(id)
		child := d.line(prefix, last, "block")
		for i, s := range data.Stmts {
			d.stmt(s, child, i == len(data.Stmts)-1)
		}

	case ast.StmtImport:
		data, _ := d.b.Stmts.Import(id)
		d.line(prefix, last, "import %q", d.lookup(data.Path))

	case ast.StmtFn:
		data, _ := d.b.Stmts.Fn(id)
		sig := "fn " + d.lookup(data.Name) + "("
		for i, pid := range data.Params {
			if i > 0 {
				sig += ", "
			}
			param := d.b.Params.Get(pid)
			sig += d.lookup(param.Name)
			if param.Type.IsValid() {
				sig += ": " + d.typeName(param.Type)
			}
		}
		sig += ")"
		if data.ReturnType.IsValid() {
			sig += ": " + d.typeName(data.ReturnType)
		}
		child := d.line(prefix, last, "%s", sig)
		d.stmt(data.Body, child, true)

	default:
		d.line(prefix, last, "<unknown stmt kind %d>", stmt.Kind)
	}
}

func (d *dumper) expr(id ast.ExprID, prefix string, last bool) {
	expr := d.b.Exprs.Get(id)
	if expr == nil {
		d.line(prefix, last, "<invalid expr>")
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := d.b.Exprs.Ident(id)
		d.line(prefix, last, "ident %s", d.lookup(data.Name))

	case ast.ExprRegister:
		data, _ := d.b.Exprs.Register(id)
		d.line(prefix, last, "register $%s", d.lookup(data.Name))

	case ast.ExprLit:
		data, _ := d.b.Exprs.Literal(id)
		d.line(prefix, last, "literal %s %q", data.Kind, d.lookup(data.Value))

	case ast.ExprMember:
		data, _ := d.b.Exprs.Member(id)
		child := d.line(prefix, last, "member")
		d.expr(data.Object, child, false)
		d.expr(data.Property, child, true)

	case ast.ExprCall:
		data, _ := d.b.Exprs.Call(id)
		child := d.line(prefix, last, "call (%d args)", len(data.Args))
		d.expr(data.Callee, child, len(data.Args) == 0)
		for i, arg := range data.Args {
			d.expr(arg, child, i == len(data.Args)-1)
		}

	case ast.ExprBinary:
		data, _ := d.b.Exprs.Binary(id)
		child := d.line(prefix, last, "binary %s", data.Op)
		d.expr(data.Left, child, false)
		d.expr(data.Right, child, true)

	case ast.ExprUnary:
		data, _ := d.b.Exprs.Unary(id)
		child := d.line(prefix, last, "unary %s", data.Op)
		d.expr(data.Operand, child, true)

	case ast.ExprAssign:
		data, _ := d.b.Exprs.Assign(id)
		child := d.line(prefix, last, "assign %s", data.Op)
		d.expr(data.Target, child, false)
		d.expr(data.Value, child, true)

	case ast.ExprGroup:
		data, _ := d.b.Exprs.Group(id)
		child := d.line(prefix, last, "group")
		d.expr(data.Inner, child, true)

	default:
		d.line(prefix, last, "<unknown expr kind %d>", expr.Kind)
	}
}
