package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/peekknuf/txnqa/internal/engine"
)

// JSONFormatter renders a report as a machine-readable JSON document.
type JSONFormatter struct {
	indent bool
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(indent bool) *JSONFormatter {
	return &JSONFormatter{indent: indent}
}

// JSONReport is the complete serialized report document. The nested report
// object keeps the canonical overall_dqs/scores/explanations/recommendations
// shape consumed downstream.
type JSONReport struct {
	Header  Header         `json:"header" yaml:"header"`
	Dataset DatasetInfo    `json:"dataset" yaml:"dataset"`
	Report  *engine.Report `json:"report" yaml:"report"`
}

// DatasetInfo describes the scored bundle.
type DatasetInfo struct {
	Dir             string `json:"dir" yaml:"dir"`
	TransactionRows int    `json:"transaction_rows" yaml:"transaction_rows"`
	Duration        string `json:"duration" yaml:"duration"`
}

func buildJSONReport(result *Result) JSONReport {
	return JSONReport{
		Header: NewHeader(),
		Dataset: DatasetInfo{
			Dir:             result.Dir,
			TransactionRows: result.Rows,
			Duration:        result.Duration.Round(time.Millisecond).String(),
		},
		Report: result.Report,
	}
}

// Format writes the report as JSON.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	report := buildJSONReport(result)

	var (
		data []byte
		err  error
	)
	if f.indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("error writing JSON report: %w", err)
	}
	return nil
}
