package diagfmt

import (
	"encoding/json"
	"io"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
)

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Span     source.Span  `json:"span"`
	Line     uint32       `json:"line,omitempty"`
	Col      uint32       `json:"col,omitempty"`
	Path     string       `json:"path,omitempty"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

type NoteJSON struct {
	Span    source.Span `json:"span"`
	Message string      `json:"message"`
}

// DiagnosticsJSON writes the bag as an indented JSON array.
func DiagnosticsJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	output := make([]DiagnosticJSON, 0, len(items))
	for i := range items {
		d := &items[i]
		out := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     d.Primary,
		}
		if file := fs.Get(d.Primary.File); file != nil {
			out.Path = displayPath(file, opts.PathMode)
			if opts.IncludePositions {
				start, _ := fs.Resolve(d.Primary)
				out.Line = start.Line
				out.Col = start.Col
			}
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				out.Notes = append(out.Notes, NoteJSON{Span: n.Span, Message: n.Msg})
			}
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

type stmtJSON struct {
	Kind     string      `json:"kind"`
	Span     source.Span `json:"span"`
	Name     string      `json:"name,omitempty"`
	Type     string      `json:"type,omitempty"`
	Const    bool        `json:"const,omitempty"`
	Path     string      `json:"path,omitempty"`
	Params   []paramJSON `json:"params,omitempty"`
	Return   string      `json:"return,omitempty"`
	Expr     *exprJSON   `json:"expr,omitempty"`
	Cond     *exprJSON   `json:"cond,omitempty"`
	Capture  *exprJSON   `json:"capture,omitempty"`
	Value    *exprJSON   `json:"value,omitempty"`
	Stmts    []stmtJSON  `json:"stmts,omitempty"`
	Body     *stmtJSON   `json:"body,omitempty"`
	ValueOf  *stmtJSON   `json:"valueStmt,omitempty"`
}

type paramJSON struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type exprJSON struct {
	Kind     string      `json:"kind"`
	Span     source.Span `json:"span"`
	Name     string      `json:"name,omitempty"`
	Literal  string      `json:"literal,omitempty"`
	LitKind  string      `json:"litKind,omitempty"`
	Op       string      `json:"op,omitempty"`
	Left     *exprJSON   `json:"left,omitempty"`
	Right    *exprJSON   `json:"right,omitempty"`
	Operand  *exprJSON   `json:"operand,omitempty"`
	Object   *exprJSON   `json:"object,omitempty"`
	Property *exprJSON   `json:"property,omitempty"`
	Callee   *exprJSON   `json:"callee,omitempty"`
	Args     []exprJSON  `json:"args,omitempty"`
	Inner    *exprJSON   `json:"inner,omitempty"`
}

// DumpFileJSON writes the document tree as indented JSON.
func DumpFileJSON(w io.Writer, b *ast.Builder, fileID ast.FileID) error {
	file := b.Files.Get(fileID)
	stmts := make([]stmtJSON, 0, len(file.Stmts))
	for _, id := range file.Stmts {
		stmts = append(stmts, stmtToJSON(b, id))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		Kind  string      `json:"kind"`
		Span  source.Span `json:"span"`
		Stmts []stmtJSON  `json:"stmts"`
	}{Kind: "file", Span: file.Span, Stmts: stmts})
}

func typeNameJSON(b *ast.Builder, id ast.TypeID) string {
	if !id.IsValid() {
		return ""
	}
	return b.Strings.MustLookup(b.Types.Get(id).Name)
}

func stmtToJSON(b *ast.Builder, id ast.StmtID) stmtJSON {
	stmt := b.Stmts.Get(id)
	out := stmtJSON{Kind: stmt.Kind.String(), Span: stmt.Span}
	switch stmt.Kind {
	case ast.StmtDecl:
		data, _ := b.Stmts.Decl(id)
		out.Name = b.Strings.MustLookup(data.Name)
		out.Type = typeNameJSON(b, data.Type)
		out.Const = data.IsConst
		if data.Value.IsValid() {
			out.Value = exprPtr(b, data.Value)
		}
		if data.ValueStmt.IsValid() {
			nested := stmtToJSON(b, data.ValueStmt)
			out.ValueOf = &nested
		}
	case ast.StmtExpr:
		data, _ := b.Stmts.Expr(id)
		out.Expr = exprPtr(b, data.Expr)
	case ast.StmtReturn:
		data, _ := b.Stmts.Return(id)
		if data.Value.IsValid() {
			out.Value = exprPtr(b, data.Value)
		}
	case ast.StmtWhile:
		data, _ := b.Stmts.While(id)
		out.Cond = exprPtr(b, data.Cond)
		if data.Capture.IsValid() {
			out.Capture = exprPtr(b, data.Capture)
		}
		body := stmtToJSON(b, data.Body)
		out.Body = &body
	case ast.StmtBlock:
		data, _ := b.Stmts.Block(id)
		for _, s := range data.Stmts {
			out.Stmts = append(out.Stmts, stmtToJSON(b, s))
		}
	case ast.StmtImport:
		data, _ := b.Stmts.Import(id)
		out.Path = b.Strings.MustLookup(data.Path)
	case ast.StmtFn:
		data, _ := b.Stmts.Fn(id)
		out.Name = b.Strings.MustLookup(data.Name)
		out.Return = typeNameJSON(b, data.ReturnType)
		for _, pid := range data.Params {
			param := b.Params.Get(pid)
			out.Params = append(out.Params, paramJSON{
				Name: b.Strings.MustLookup(param.Name),
				Type: typeNameJSON(b, param.Type),
			})
		}
		body := stmtToJSON(b, data.Body)
		out.Body = &body
	}
	return out
}

func exprPtr(b *ast.Builder, id ast.ExprID) *exprJSON {
	out := exprToJSON(b, id)
	return &out
}

func exprToJSON(b *ast.Builder, id ast.ExprID) exprJSON {
	expr := b.Exprs.Get(id)
	out := exprJSON{Kind: expr.Kind.String(), Span: expr.Span}
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := b.Exprs.Ident(id)
		out.Name = b.Strings.MustLookup(data.Name)
	case ast.ExprRegister:
		data, _ := b.Exprs.Register(id)
		out.Name = b.Strings.MustLookup(data.Name)
	case ast.ExprLit:
		data, _ := b.Exprs.Literal(id)
		out.Literal = b.Strings.MustLookup(data.Value)
		out.LitKind = data.Kind.String()
	case ast.ExprMember:
		data, _ := b.Exprs.Member(id)
		out.Object = exprPtr(b, data.Object)
		out.Property = exprPtr(b, data.Property)
	case ast.ExprCall:
		data, _ := b.Exprs.Call(id)
		out.Callee = exprPtr(b, data.Callee)
		for _, arg := range data.Args {
			out.Args = append(out.Args, exprToJSON(b, arg))
		}
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		out.Op = data.Op.String()
		out.Left = exprPtr(b, data.Left)
		out.Right = exprPtr(b, data.Right)
	case ast.ExprUnary:
		data, _ := b.Exprs.Unary(id)
		out.Op = data.Op.String()
		out.Operand = exprPtr(b, data.Operand)
	case ast.ExprAssign:
		data, _ := b.Exprs.Assign(id)
		out.Op = data.Op.String()
		out.Left = exprPtr(b, data.Target)
		out.Right = exprPtr(b, data.Value)
	case ast.ExprGroup:
		data, _ := b.Exprs.Group(id)
		out.Inner = exprPtr(b, data.Inner)
	}
	return out
}
