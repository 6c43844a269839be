package cmd

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/peekknuf/txnqa/internal/connectors"
	"github.com/peekknuf/txnqa/internal/history"
	"github.com/peekknuf/txnqa/internal/output"
)

// loadOptions maps the resolved config onto CSV load options.
func loadOptions(progress bool) connectors.LoadOptions {
	delim, err := cfg.DelimiterRune()
	if err != nil {
		log.Fatalf("%v", err)
	}
	options := connectors.DefaultLoadOptions()
	options.Delimiter = delim
	options.TrimSpace = cfg.TrimSpace
	options.Progress = progress
	return options
}

// openOutput returns the report destination and a cleanup func to run when
// rendering is done.
func openOutput() (io.Writer, func()) {
	if cfg.Output == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		log.Fatalf("Failed to create output file %s: %v", cfg.Output, err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Errorf("Failed to close output file: %v", err)
		}
		log.Infof("Results saved to %s", cfg.Output)
	}
}

// openStore opens the history database, creating its directory if needed.
func openStore() *history.Store {
	if dir := filepath.Dir(cfg.HistoryDB); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create history directory: %v", err)
		}
	}
	store, err := history.NewStore(cfg.HistoryDB, output.Version)
	if err != nil {
		log.Fatalf("Failed to open history database: %v", err)
	}
	return store
}

func saveRun(store *history.Store, result *output.Result) {
	id, err := store.SaveReport(result.Dir, result.Rows, result.Report)
	if err != nil {
		log.Fatalf("Failed to save run: %v", err)
	}
	log.WithField("run", id).Info("Saved report to history")
}
