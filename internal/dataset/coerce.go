package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// TypeCoercionError reports a cell that could not be coerced to the type a
// metric expects. Callers decide the policy: the scoring pipeline counts the
// affected row as invalid rather than aborting, so one dirty cell never sinks
// a whole run.
type TypeCoercionError struct {
	Dataset string
	Column  string
	Row     int
	Value   string
	Want    string
}

func (e *TypeCoercionError) Error() string {
	if IsNull(e.Value) {
		return fmt.Sprintf("%s: column %s row %d: empty value, want %s",
			e.Dataset, e.Column, e.Row, e.Want)
	}
	return fmt.Sprintf("%s: column %s row %d: cannot parse %q as %s",
		e.Dataset, e.Column, e.Row, e.Value, e.Want)
}

// FloatAt coerces the cell at (row, col) to a float64. Null and malformed
// cells both yield a *TypeCoercionError.
func (d *Dataset) FloatAt(row, col int) (float64, error) {
	value := d.rows[row][col]
	if IsNull(value) {
		return 0, d.coercionError(row, col, value, "number")
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, d.coercionError(row, col, value, "number")
	}
	return f, nil
}

// TimeAt coerces the cell at (row, col) to a timestamp. Null and malformed
// cells both yield a *TypeCoercionError.
func (d *Dataset) TimeAt(row, col int) (time.Time, error) {
	value := d.rows[row][col]
	if IsNull(value) {
		return time.Time{}, d.coercionError(row, col, value, "timestamp")
	}
	t, ok := ParseTimestamp(value)
	if !ok {
		return time.Time{}, d.coercionError(row, col, value, "timestamp")
	}
	return t, nil
}

func (d *Dataset) coercionError(row, col int, value, want string) *TypeCoercionError {
	return &TypeCoercionError{
		Dataset: d.Name,
		Column:  d.columns[col],
		Row:     row,
		Value:   value,
		Want:    want,
	}
}
