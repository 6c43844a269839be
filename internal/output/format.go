// Package output renders quality reports for terminals and files.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/peekknuf/txnqa/internal/engine"
)

// Tool and Version identify report producers in serialized output.
const (
	Tool    = "txnqa"
	Version = "0.3.0"
)

// Result is one scored bundle, ready for rendering.
type Result struct {
	Dir      string
	Rows     int
	Duration time.Duration
	Report   *engine.Report
}

// Formatter renders one scored bundle to w.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// New returns the formatter registered under name.
func New(name string, verbose bool) (Formatter, error) {
	switch name {
	case "console", "":
		return NewConsoleFormatter(verbose, true), nil
	case "json":
		return NewJSONFormatter(true), nil
	case "yaml":
		return NewYAMLFormatter(), nil
	case "markdown", "md":
		return NewMarkdownFormatter(verbose), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}

// Header carries report metadata in serialized formats.
type Header struct {
	Tool      string `json:"tool" yaml:"tool"`
	Version   string `json:"version" yaml:"version"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// NewHeader stamps a header with the current time.
func NewHeader() Header {
	return Header{
		Tool:      Tool,
		Version:   Version,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
