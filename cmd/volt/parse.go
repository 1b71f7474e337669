package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"volt/internal/diagfmt"
	"volt/internal/driver"
	"volt/internal/observ"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.vt|directory>",
	Short: "Parse a volt source file or directory and dump the tree",
	Long:  `Parse runs the scanner and parser over volt sources and dumps the resulting trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	timer := observ.NewTimer()

	if !st.IsDir() {
		phase := timer.Begin("parse")
		result, err := driver.Parse(path, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		timer.End(phase, path)

		printDiagnostics(cmd, result.Bag, result.FileSet)
		if showTimings {
			fmt.Fprint(os.Stderr, timer.Summary())
		}
		if result.Builder == nil {
			return fmt.Errorf("nothing to dump for %s", path)
		}
		return dumpTree(format, result)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	phase := timer.Begin("collect")
	files, err := driver.ListSourceFiles(path)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(files)))

	phase = timer.Begin("parse")
	fs, results, err := driver.ParseAll(cmd.Context(), files, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	timer.End(phase, "")

	for _, r := range results {
		printDiagnostics(cmd, r.Bag, fs)
	}
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	for idx, r := range results {
		if r.Builder == nil {
			continue
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
		}
		single := &driver.ParseResult{
			FileSet: fs,
			Builder: r.Builder,
			FileID:  r.FileID,
		}
		if err := dumpTree(format, single); err != nil {
			return err
		}
		if !quiet && idx < len(results)-1 {
			fmt.Fprintln(os.Stdout)
		}
	}
	return nil
}

func dumpTree(format string, result *driver.ParseResult) error {
	switch format {
	case "tree":
		diagfmt.DumpFileTree(os.Stdout, result.Builder, result.FileID, result.FileSet)
		return nil
	case "json":
		return diagfmt.DumpFileJSON(os.Stdout, result.Builder, result.FileID)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
