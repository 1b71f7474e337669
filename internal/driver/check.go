package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
)

// CheckResult is the outcome of checking one file. A cached result has no
// tree and an empty bag; the digest matched a clean entry from an earlier
// run so the scan and parse phases were skipped entirely.
type CheckResult struct {
	Path   string
	Cached bool
	Broken bool
	Bag    *diag.Bag
}

// CheckAll runs the front end over every listed file concurrently,
// consulting the disk cache when one is given. Only clean entries are
// trusted from the cache: a previously broken file is re-parsed so its
// diagnostics come out with full spans. Pass a nil cache to disable
// caching.
func CheckAll(ctx context.Context, paths []string, cache *DiskCache, maxDiagnostics, jobs int) (*source.FileSet, []CheckResult, error) {
	fileSet, fileIDs, loadErrors := loadAll(paths)

	results := make([]CheckResult, len(paths))

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
				results[i] = CheckResult{Path: path, Broken: true, Bag: bag}
				return nil
			}

			file := fileSet.Get(fileIDs[path])

			if cache != nil {
				var cached DiskPayload
				if hit, err := cache.Get(file.Hash, &cached); err == nil && hit && !cached.Broken {
					results[i] = CheckResult{Path: path, Cached: true, Bag: bag}
					return nil
				}
			}

			lx := lexer.New(file, lexer.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})
			builder := ast.NewBuilder(ast.Hints{})
			parsed := parser.ParseFile(fileSet, lx, builder, parser.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})

			broken := bag.HasErrors()
			results[i] = CheckResult{Path: path, Broken: broken, Bag: bag}

			if cache != nil {
				payload := PayloadFor(&ParseResult{
					FileSet: fileSet,
					File:    file,
					Builder: builder,
					FileID:  parsed.File,
					Bag:     bag,
				})
				// Cache write failures are not check failures.
				_ = cache.Put(file.Hash, payload)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
