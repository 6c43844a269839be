package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peekknuf/txnqa/internal/profiler"
)

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewMarkdownFormatter(true)
	require.NoError(t, formatter.Format(&buf, sampleResult(t)))

	out := buf.String()
	assert.Contains(t, out, "# Data Quality Report")
	assert.Contains(t, out, "**Bundle:** data/acme")
	assert.Contains(t, out, "**Overall DQS: 85.71**")
	assert.Contains(t, out, "| Validity | 0.00 | high |")
	assert.Contains(t, out, "| Completeness | 100.00 | low |")
	assert.Contains(t, out, "- **Validity** - Standardize formats and apply domain-level validations.")
	assert.Contains(t, out, "## Explanations")
}

func TestWriteProfile(t *testing.T) {
	profile := &profiler.Profile{
		Dataset:   "transactions",
		Rows:      1500,
		NullRatio: 0.05,
		Columns: []profiler.ColumnStats{
			{
				Name: "transaction_amount", Type: profiler.TypeFloat,
				Count: 1450, NullCount: 50, DistinctCount: 900,
				Min: "1.5", Max: "9000", Mean: 420.5, Std: 120.7,
				TopValue: "100", TopCount: 12,
				SampleValues: []string{"1.5", "100", "9000"},
			},
		},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		WriteProfile(&buf, profile, false)
		out := buf.String()
		assert.Contains(t, out, "Dataset: transactions")
		assert.Contains(t, out, "Rows: 1,500 | Null rate: 5.0%")
		assert.Contains(t, out, "transaction_amount")
		assert.NotContains(t, out, "Mean:")
	})

	t.Run("verbose statistics", func(t *testing.T) {
		var buf bytes.Buffer
		WriteProfile(&buf, profile, true)
		out := buf.String()
		assert.Contains(t, out, "Mean: 420.50")
		assert.Contains(t, out, "Top: 100 (12)")
		assert.Contains(t, out, "Samples: 1.5, 100, 9000")
	})
}

func TestTruncateValue(t *testing.T) {
	assert.Equal(t, "short", truncateValue("short", 10))
	assert.Equal(t, "longer-...", truncateValue("longer-than-ten", 10))
	assert.Equal(t, "abc", truncateValue("abcdef", 3))
}
