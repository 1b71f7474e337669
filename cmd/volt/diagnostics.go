package main

import (
	"os"

	"github.com/spf13/cobra"

	"volt/internal/diag"
	"volt/internal/diagfmt"
	"volt/internal/source"
)

// printDiagnostics renders a bag to stderr when it carries anything worth
// showing. Tool output stays on stdout so the two streams can be split.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || (!bag.HasErrors() && !bag.HasWarnings()) {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
	})
}
