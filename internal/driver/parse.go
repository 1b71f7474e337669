package driver

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
)

// ParseResult is the output of one front-end run over a single file: the
// arena-backed tree plus every diagnostic from both phases. When the bag
// carries errors the tree stops at the first malformed construct.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse loads a file from disk and runs the scanner and parser over it.
// Load failures become I/O diagnostics in the bag; the returned error is
// reserved for programming mistakes.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)

	fileID, err := fs.Load(path)
	if err != nil {
		bag.Add(loadDiagnostic(path, err))
		return &ParseResult{FileSet: fs, Bag: bag}, nil
	}

	return parseFile(fs, fs.Get(fileID), bag), nil
}

// ParseSource parses an in-memory buffer (stdin, tests).
func ParseSource(name string, src []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)
	fileID := fs.AddVirtual(name, src)
	return parseFile(fs, fs.Get(fileID), bag)
}

func parseFile(fs *source.FileSet, file *source.File, bag *diag.Bag) *ParseResult {
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	builder := ast.NewBuilder(ast.Hints{})

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}
}
