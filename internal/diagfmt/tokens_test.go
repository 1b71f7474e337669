package diagfmt

import (
	"strings"
	"testing"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("tok.vt", []byte("$a = 1;"))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	toks := lx.Scan()

	var sb strings.Builder
	if err := FormatTokensPretty(&sb, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "Register") || !strings.Contains(out, `"a"`) {
		t.Fatalf("register token missing:\n%s", out)
	}
	if !strings.Contains(out, "EOF") {
		t.Fatalf("EOF missing:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("tok.vt", []byte("1 + 2;"))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	toks := lx.Scan()

	var sb strings.Builder
	if err := FormatTokensJSON(&sb, toks); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"kind": "Plus"`) {
		t.Fatalf("missing Plus kind:\n%s", sb.String())
	}
}

func TestDumpFileTree(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("tree.vt", []byte("$a = 1 + 2;"))
	bag := diag.NewBag(8)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("parse failed: %v", bag.Items())
	}

	var sb strings.Builder
	DumpFileTree(&sb, b, res.File, fs)
	out := sb.String()
	for _, want := range []string{"file tree.vt", "decl $a", "binary +", `literal number "1"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in tree dump:\n%s", want, out)
		}
	}
}
