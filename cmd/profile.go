package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peekknuf/txnqa/internal/connectors"
	"github.com/peekknuf/txnqa/internal/output"
	"github.com/peekknuf/txnqa/internal/processing"
	"github.com/peekknuf/txnqa/internal/profiler"
)

var (
	profileRecursive bool
	profileWorkers   int
	profileMinSize   int64
	profileMaxSize   int64
)

var profileCmd = &cobra.Command{
	Use:   "profile [file or directory]",
	Short: "Generate per-column statistics for CSV files",
	Long: `Generate per-column statistics for CSV files: value types, null and
distinct counts, ranges, and numeric summaries.

Examples:
  txnqa profile transactions.csv              # Single file
  txnqa profile data/ --recursive             # Whole directory tree
  txnqa profile data/ --workers 4             # Limit CPU usage
  txnqa profile transactions.csv --verbose    # Per-column detail`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := args[0]
		info, err := os.Stat(target)
		if err != nil {
			log.Fatalf("Error accessing %s: %v", target, err)
		}

		w, done := openOutput()
		defer done()

		if !info.IsDir() {
			profileFile(w, target, cfg.Progress)
			return
		}
		profileDirectory(w, target)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().BoolVarP(&profileRecursive, "recursive", "r", false,
		"Search directories recursively")
	profileCmd.Flags().IntVar(&profileWorkers, "workers", 0,
		"Number of parallel workers (default: auto-detect CPU cores)")
	profileCmd.Flags().Int64Var(&profileMinSize, "min-size", 0,
		"Minimum file size in bytes")
	profileCmd.Flags().Int64Var(&profileMaxSize, "max-size", 0,
		"Maximum file size in bytes")
}

func profileFile(w io.Writer, path string, progress bool) {
	ds, err := connectors.LoadCSV(path, loadOptions(progress))
	if err != nil {
		log.Fatalf("Failed to profile %s: %v", path, err)
	}
	output.WriteProfile(w, profiler.Describe(ds), cfg.Verbose)
}

func profileDirectory(w io.Writer, dir string) {
	files, err := connectors.DiscoverFiles(dir, "csv", connectors.DiscoveryOptions{
		Recursive: profileRecursive,
		MinSize:   profileMinSize,
		MaxSize:   profileMaxSize,
	})
	if err != nil {
		log.Fatalf("Failed to discover files: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Found %d CSV files\n", len(files))

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan][reset] Profiling files..."),
		progressbar.OptionSetWidth(20),
	)

	workers := profileWorkers
	if workers == 0 {
		workers = cfg.Workers
	}

	profiles := make([]*profiler.Profile, len(files))
	errs := make([]error, len(files))
	options := loadOptions(false)
	processing.ForEach(len(files), workers, func(i int) {
		defer bar.Add(1)
		ds, err := connectors.LoadCSV(files[i].Path, options)
		if err != nil {
			errs[i] = err
			return
		}
		profiles[i] = profiler.Describe(ds)
	})
	bar.Finish()

	for i, file := range files {
		if errs[i] != nil {
			log.WithError(errs[i]).Errorf("Failed to profile %s", file.Path)
			continue
		}
		fmt.Fprintf(w, "\nFile: %s (%s)\n", file.Path, humanize.Bytes(uint64(file.Size)))
		output.WriteProfile(w, profiles[i], cfg.Verbose)
	}
}
