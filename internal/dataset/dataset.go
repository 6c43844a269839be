package dataset

import (
	"fmt"
	"time"
)

// Dataset is one tabular input held fully in memory: an ordered set of named
// columns plus string-valued rows. It is append-only while a loader fills it
// and treated as read-only afterwards, so concurrent readers need no locking.
type Dataset struct {
	Name string

	columns []string
	index   map[string]int
	rows    [][]string
}

// New creates an empty dataset with the given column layout.
func New(name string, columns []string) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("dataset %s: no columns", name)
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col == "" {
			return nil, fmt.Errorf("dataset %s: empty column name at position %d", name, i)
		}
		if _, dup := index[col]; dup {
			return nil, fmt.Errorf("dataset %s: duplicate column %q", name, col)
		}
		index[col] = i
	}

	return &Dataset{
		Name:    name,
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

// AppendRow adds one row. The value count must match the column count.
func (d *Dataset) AppendRow(values []string) error {
	if len(values) != len(d.columns) {
		return fmt.Errorf("dataset %s: row %d has %d values, want %d",
			d.Name, len(d.rows)+1, len(values), len(d.columns))
	}
	d.rows = append(d.rows, values)
	return nil
}

// RowCount returns the number of data rows (the header is not a row).
func (d *Dataset) RowCount() int {
	return len(d.rows)
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.columns)
}

// Columns returns the column names in table order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// ColumnIndex resolves a column name to its position.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// At returns the raw cell value at (row, col).
func (d *Dataset) At(row, col int) string {
	return d.rows[row][col]
}

// IsNull reports whether a cell value counts as missing. Loaders trim
// whitespace on ingest, so an empty string is the only null representation.
func IsNull(value string) bool {
	return value == ""
}

// timestampLayouts are the accepted temporal formats, tried in order.
var timestampLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"02-Jan-2006",
}

// ParseTimestamp parses a cell value against the accepted temporal layouts.
func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
