package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders a report as a YAML document.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes the report as YAML.
func (f *YAMLFormatter) Format(w io.Writer, result *Result) error {
	report := buildJSONReport(result)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("error marshaling YAML: %w", err)
	}
	return encoder.Close()
}
