package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"volt/internal/diag"
	"volt/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() in order (call bag.Sort() beforehand). For each diagnostic
// it prints a `--> path:line:col` locator, the surrounding source lines
// with the offending line underlined by a caret, and a message header:
//
//	 --> main.vt:2:6
//	  1 | $a = 1;
//	  2 | $b = ;
//	    |      ^
//	  3 | $c = 2;
//	error[SYN2006]: main.vt: unexpected token in expression
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if opts.Context <= 0 {
		opts.Context = 1
	}
	for i := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &bag.Items()[i], fs, opts)
	}
}

// PrettyOne renders a single diagnostic.
func PrettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	if opts.Context <= 0 {
		opts.Context = 1
	}
	prettyOne(w, d, fs, opts)
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	path := displayPath(file, opts.PathMode)

	if file != nil {
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(w, " --> %s:%d:%d\n", path, start.Line, start.Col)
		writeSnippet(w, file, start, end, opts)
	}

	header := severityLabel(d.Severity, opts.Color)
	code := fmt.Sprintf("[%s]", d.Code.ID())
	if opts.Color {
		code = color.New(color.Bold).Sprint(code)
	}
	fmt.Fprintf(w, "%s%s: %s: %s\n", header, code, path, d.Message)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			if note.Span.Empty() || fs.Get(note.Span.File) == nil {
				fmt.Fprintf(w, "note: %s\n", note.Msg)
				continue
			}
			pos, _ := fs.Resolve(note.Span)
			notePath := displayPath(fs.Get(note.Span.File), opts.PathMode)
			fmt.Fprintf(w, "note: %s:%d:%d: %s\n", notePath, pos.Line, pos.Col, note.Msg)
		}
	}
}

// writeSnippet prints context lines around the offending line and a
// caret underneath the primary span.
func writeSnippet(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	lineCount := file.LineCount()
	firstLine := start.Line
	ctx := uint32(opts.Context)
	if firstLine > ctx {
		firstLine -= ctx
	} else {
		firstLine = 1
	}
	lastLine := start.Line + ctx
	if lastLine > lineCount {
		lastLine = lineCount
	}

	gutter := len(fmt.Sprintf("%d", lastLine))
	for line := firstLine; line <= lastLine; line++ {
		text := file.GetLine(line)
		fmt.Fprintf(w, " %*d | %s\n", gutter, line, text)
		if line == start.Line {
			writeCaret(w, text, start, end, gutter, opts.Color)
		}
	}
}

func writeCaret(w io.Writer, lineText string, start, end source.LineCol, gutter int, colored bool) {
	// pad by the display width of everything before the column
	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	prefix := lineText
	if col-1 < len(prefix) {
		prefix = prefix[:col-1]
	}
	pad := runewidth.StringWidth(prefix)

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	caret := "^" + strings.Repeat("~", width-1)
	if colored {
		caret = color.New(color.FgRed, color.Bold).Sprint(caret)
	}
	fmt.Fprintf(w, " %*s | %s%s\n", gutter, "", strings.Repeat(" ", pad), caret)
}

func severityLabel(sev diag.Severity, colored bool) string {
	var name string
	var c *color.Color
	switch sev {
	case diag.SevError:
		name, c = "error", color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		name, c = "warning", color.New(color.FgYellow, color.Bold)
	default:
		name, c = "info", color.New(color.FgCyan)
	}
	if !colored {
		return name
	}
	return c.Sprint(name)
}
