package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
	"volt/internal/token"
)

// FileTokenizeResult holds the scanner output for one file of a batch run.
type FileTokenizeResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// FileParseResult holds the front-end output for one file of a batch run.
type FileParseResult struct {
	Path    string
	FileID  ast.FileID
	Builder *ast.Builder
	Bag     *diag.Bag
}

// ListSourceFiles returns every *.vt file under dir, sorted for a
// deterministic processing order.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".vt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// TokenizeAll scans every listed file concurrently. Each file gets its own
// bag; result order matches the input order. Files that fail to load get a
// bag with a single I/O diagnostic.
func TokenizeAll(ctx context.Context, paths []string, maxDiagnostics, jobs int) (*source.FileSet, []FileTokenizeResult, error) {
	fileSet, fileIDs, loadErrors := loadAll(paths)

	results := make([]FileTokenizeResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(clampJobs(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(loadDiagnostic(path, loadErr))
				results[i] = FileTokenizeResult{Path: path, Bag: bag}
				return nil
			}

			file := fileSet.Get(fileIDs[path])
			lx := lexer.New(file, lexer.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})

			// Slot i is owned by this goroutine, no locking needed.
			results[i] = FileTokenizeResult{
				Path:   path,
				FileID: file.ID,
				Tokens: lx.Scan(),
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseAll runs the full front end over every listed file concurrently.
// Each file gets its own builder and bag; result order matches the input
// order.
func ParseAll(ctx context.Context, paths []string, maxDiagnostics, jobs int) (*source.FileSet, []FileParseResult, error) {
	fileSet, fileIDs, loadErrors := loadAll(paths)

	results := make([]FileParseResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(clampJobs(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(loadDiagnostic(path, loadErr))
				results[i] = FileParseResult{Path: path, Bag: bag}
				return nil
			}

			file := fileSet.Get(fileIDs[path])
			lx := lexer.New(file, lexer.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})
			builder := ast.NewBuilder(ast.Hints{})

			result := parser.ParseFile(fileSet, lx, builder, parser.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})

			results[i] = FileParseResult{
				Path:    path,
				FileID:  result.File,
				Builder: builder,
				Bag:     bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// loadAll preloads every path into one FileSet up front so the worker
// goroutines never mutate it concurrently.
func loadAll(paths []string) (*source.FileSet, map[string]source.FileID, map[string]error) {
	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error)

	for _, path := range paths {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileSet, fileIDs, loadErrors
}

func clampJobs(jobs, work int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return min(jobs, max(work, 1))
}
