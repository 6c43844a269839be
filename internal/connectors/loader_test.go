package connectors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("reads header and rows", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "transactions.csv",
			"transaction_id,transaction_amount\nT1, 100 \nT2,200\n")

		ds, err := LoadCSV(path, DefaultLoadOptions())
		require.NoError(t, err)
		assert.Equal(t, "transactions", ds.Name)
		assert.Equal(t, []string{"transaction_id", "transaction_amount"}, ds.Columns())
		require.Equal(t, 2, ds.RowCount())
		assert.Equal(t, "100", ds.At(0, 1), "fields are trimmed by default")
	})

	t.Run("sniffs a semicolon delimiter", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "semi.csv", "a;b\n1;2\n")

		ds, err := LoadCSV(path, DefaultLoadOptions())
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ds.Columns())
		assert.Equal(t, "2", ds.At(0, 1))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), DefaultLoadOptions())
		assert.Error(t, err)
	})

	t.Run("empty file has no header", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "empty.csv", "")
		_, err := LoadCSV(path, DefaultLoadOptions())
		assert.ErrorContains(t, err, "no header row")
	})

	t.Run("ragged row", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "ragged.csv", "a,b\n1,2,3\n")
		_, err := LoadCSV(path, DefaultLoadOptions())
		assert.Error(t, err)
	})
}

func TestDetectDelimiter(t *testing.T) {
	cases := []struct {
		name   string
		sample string
		want   rune
	}{
		{"empty falls back to comma", "", ','},
		{"comma", "a,b,c\n", ','},
		{"semicolon", "a;b;c\n", ';'},
		{"tab", "a\tb\tc\n", '\t'},
		{"pipe", "a|b|c\n", '|'},
		{"only the first line counts", "a,b\n1;2;3;4;5\n", ','},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectDelimiter([]byte(tc.sample)))
		})
	}
}
