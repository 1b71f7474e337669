package diagfmt

import (
	"path/filepath"

	"volt/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path exactly as recorded in the FileSet.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is the number of surrounding source lines shown on each
	// side of the offending line.
	Context   int
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col next to byte offsets
	PathMode         PathMode
	IncludeNotes     bool
}

func displayPath(f *source.File, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		return abs
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.Path
	}
}
