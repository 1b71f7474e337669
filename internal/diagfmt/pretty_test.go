package diagfmt

import (
	"strings"
	"testing"

	"volt/internal/diag"
	"volt/internal/source"
)

func TestPrettyRendersLocatorAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("main.vt", []byte("$a = 1;\n$b = ;\n$c = 2;\n"))

	bag := diag.NewBag(4)
	// the ';' at offset 13 is where the expression was expected
	bag.Add(diag.NewError(diag.SynExpectExpression,
		source.Span{File: fileID, Start: 13, End: 14},
		"unexpected token in expression"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: false, Context: 1})
	out := sb.String()

	if !strings.Contains(out, "--> main.vt:2:6") {
		t.Fatalf("missing locator, got:\n%s", out)
	}
	if !strings.Contains(out, "2 | $b = ;") {
		t.Fatalf("missing offending line, got:\n%s", out)
	}
	if !strings.Contains(out, "1 | $a = 1;") || !strings.Contains(out, "3 | $c = 2;") {
		t.Fatalf("missing context lines, got:\n%s", out)
	}
	if !strings.Contains(out, "error[SYN2006]: main.vt: unexpected token in expression") {
		t.Fatalf("missing message header, got:\n%s", out)
	}

	// the caret must line up with the ';' in the offending line
	var offendingLine, caretLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "$b = ;") {
			offendingLine = line
		}
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	if offendingLine == "" || caretLine == "" {
		t.Fatalf("snippet incomplete, got:\n%s", out)
	}
	if strings.Index(caretLine, "^") != strings.Index(offendingLine, ";") {
		t.Fatalf("caret misplaced:\n%s\n%s", offendingLine, caretLine)
	}
}

func TestPrettyFirstLineError(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("one.vt", []byte("~\n"))
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.LexUnknownChar,
		source.Span{File: fileID, Start: 0, End: 1}, "unexpected character"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()
	if !strings.Contains(out, "--> one.vt:1:1") {
		t.Fatalf("locator wrong:\n%s", out)
	}
	if !strings.Contains(out, "error[LEX1001]") {
		t.Fatalf("code missing:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("notes.vt", []byte("$a = 1;\n"))
	bag := diag.NewBag(4)
	d := diag.NewError(diag.SynExpectSemicolon, source.Span{File: fileID, Start: 6, End: 7}, "expected ';'").
		WithNote(source.Span{File: fileID, Start: 0, End: 2}, "statement starts here")
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true})
	out := sb.String()
	if !strings.Contains(out, "note: notes.vt:1:1: statement starts here") {
		t.Fatalf("note missing:\n%s", out)
	}
}

func TestPrettyFilelessDiagnostic(t *testing.T) {
	// Failed loads report against an empty FileSet with a zero span;
	// rendering must fall back to a header-only form instead of
	// resolving positions in a file that was never added.
	fs := source.NewFileSet()

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOFileNotFound,
		Message:  "missing.vt: no such file or directory",
		Primary:  source.Span{},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: false, Context: 1})
	out := sb.String()

	if strings.Contains(out, "-->") {
		t.Fatalf("fileless diagnostic must not print a locator, got:\n%s", out)
	}
	if !strings.Contains(out, "[IO4001]") || !strings.Contains(out, "missing.vt: no such file") {
		t.Fatalf("missing header, got:\n%s", out)
	}
}

func TestDiagnosticsJSONFilelessDiagnostic(t *testing.T) {
	fs := source.NewFileSet()

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOReadFailed,
		Message:  "locked.vt: permission denied",
		Primary:  source.Span{},
	})

	var sb strings.Builder
	if err := DiagnosticsJSON(&sb, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("DiagnosticsJSON error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, `"IO4002"`) {
		t.Fatalf("missing code, got:\n%s", out)
	}
	if strings.Contains(out, `"path"`) {
		t.Fatalf("fileless diagnostic must not report a path, got:\n%s", out)
	}
}
