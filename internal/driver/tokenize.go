package driver

import (
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

// TokenizeResult is the output of one scanner run: the token stream up to
// and including EOF, plus every lexical diagnostic the scanner emitted.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and scans it completely. Load failures
// surface as I/O diagnostics in the bag, not as process failures; the
// returned error is reserved for programming mistakes.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)

	fileID, err := fs.Load(path)
	if err != nil {
		bag.Add(loadDiagnostic(path, err))
		return &TokenizeResult{FileSet: fs, Bag: bag}, nil
	}

	return tokenizeFile(fs, fs.Get(fileID), bag), nil
}

// TokenizeSource scans an in-memory buffer (stdin, tests). The name is
// only used for diagnostics display.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)
	fileID := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fs.Get(fileID), bag)
}

func tokenizeFile(fs *source.FileSet, file *source.File, bag *diag.Bag) *TokenizeResult {
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.Scan(),
		Bag:     bag,
	}
}
