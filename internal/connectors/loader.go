// Package connectors reads scoring inputs from disk: single CSV files and
// the three-table bundles the scoring engine consumes.
package connectors

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/peekknuf/txnqa/internal/dataset"
)

// LoadOptions control how a CSV file is read into a Dataset.
type LoadOptions struct {
	Delimiter rune // zero means sniff from the first line
	TrimSpace bool // trim surrounding whitespace from every field
	Progress  bool // render a byte progress bar while reading
}

// DefaultLoadOptions returns the options used by the CLI unless overridden.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Delimiter: 0,
		TrimSpace: true,
		Progress:  false,
	}
}

// LoadCSV reads one CSV file into an in-memory Dataset. The first row is the
// header; every data row must carry the same number of fields. The dataset is
// named after the file, without its extension.
func LoadCSV(path string, options LoadOptions) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var reader io.Reader = f
	if options.Progress {
		bar := progressbar.NewOptions64(stat.Size(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("loading "+filepath.Base(path)),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		reader = io.TeeReader(f, bar)
	}

	buffered := bufio.NewReader(reader)
	delim := options.Delimiter
	if delim == 0 {
		sample, _ := buffered.Peek(sniffSampleSize)
		delim = DetectDelimiter(sample)
	}

	r := csv.NewReader(buffered)
	r.Comma = delim

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ds, err := dataset.New(name, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		row := make([]string, len(record))
		for i, field := range record {
			if options.TrimSpace {
				field = strings.TrimSpace(field)
			}
			row[i] = field
		}
		if err := ds.AppendRow(row); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return ds, nil
}

// sniffSampleSize bounds how much of the file the delimiter sniffer sees.
const sniffSampleSize = 4096

var delimiterCandidates = []rune{',', ';', '\t', '|'}

// DetectDelimiter picks the most frequent candidate separator in the first
// line of the sample. Empty samples and ties fall back to a comma.
func DetectDelimiter(sample []byte) rune {
	counts := make(map[rune]int, len(delimiterCandidates))
	for _, b := range sample {
		if b == '\n' || b == '\r' {
			break
		}
		for _, cand := range delimiterCandidates {
			if rune(b) == cand {
				counts[cand]++
			}
		}
	}

	best := ','
	bestCount := 0
	for _, cand := range delimiterCandidates {
		if counts[cand] > bestCount {
			best, bestCount = cand, counts[cand]
		}
	}
	return best
}
