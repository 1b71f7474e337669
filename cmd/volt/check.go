package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"volt/internal/driver"
	"volt/internal/observ"
	"volt/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.vt|directory ...]",
	Short: "Check volt sources for lexical and syntactic errors",
	Long: `Check runs the full front end over the given files or directories.
With no arguments it looks for a volt.toml manifest upward from the
current directory and checks the project root.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("cache", true, "reuse cached results for unchanged files")
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}

	timer := observ.NewTimer()

	phase := timer.Begin("collect")
	roots := args
	if len(roots) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		manifest, err := project.Find(cwd)
		if err != nil {
			return err
		}
		roots = []string{manifest.Root()}
		if !cmd.Flags().Changed("jobs") && manifest.Check.Jobs > 0 {
			jobs = manifest.Check.Jobs
		}
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Check.MaxDiagnostics > 0 {
			maxDiagnostics = manifest.Check.MaxDiagnostics
		}
	}

	files, err := expandRoots(roots)
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d files", len(files)))

	if len(files) == 0 {
		return fmt.Errorf("no .vt files found in %s", strings.Join(roots, ", "))
	}

	var cache *driver.DiskCache
	if useCache {
		// A broken cache dir degrades to a cold run, not a failure.
		cache, _ = driver.OpenDiskCache("volt")
	}

	phase = timer.Begin("check")
	fs, results, err := driver.CheckAll(cmd.Context(), files, cache, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	timer.End(phase, "")

	broken := 0
	for _, r := range results {
		printDiagnostics(cmd, r.Bag, fs)
		switch {
		case r.Broken:
			broken++
			fmt.Fprintf(os.Stdout, "%s: %d error(s)\n", r.Path, r.Bag.Len())
		case quiet:
		case r.Cached:
			fmt.Fprintf(os.Stdout, "%s: ok (cached)\n", r.Path)
		default:
			fmt.Fprintf(os.Stdout, "%s: ok\n", r.Path)
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if broken > 0 {
		return fmt.Errorf("%d of %d files have errors", broken, len(results))
	}
	return nil
}

// expandRoots turns a mix of files and directories into a flat file list.
func expandRoots(roots []string) ([]string, error) {
	var files []string
	for _, root := range roots {
		st, err := os.Stat(root)
		if err != nil {
			// Let the driver report the missing file as a diagnostic.
			files = append(files, root)
			continue
		}
		if !st.IsDir() {
			files = append(files, root)
			continue
		}
		listed, err := driver.ListSourceFiles(root)
		if err != nil {
			return nil, fmt.Errorf("failed to list sources in %s: %w", root, err)
		}
		files = append(files, listed...)
	}
	return files, nil
}
