package engine

import "fmt"

// DataShapeError reports an input table that cannot be scored at all: a
// required column is absent, or the table is empty so a metric's denominator
// would be zero. The pipeline stops on the first one; no partial report is
// produced and retrying over the same data cannot help.
type DataShapeError struct {
	Dataset string
	Column  string
	Reason  string
}

func (e *DataShapeError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: required column %s is missing", e.Dataset, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Dataset, e.Reason)
}

func missingColumn(ds, column string) *DataShapeError {
	return &DataShapeError{Dataset: ds, Column: column}
}

func emptyTable(ds string) *DataShapeError {
	return &DataShapeError{Dataset: ds, Reason: "table has no rows, scores are undefined"}
}

// UnknownDimensionError reports a lookup keyed by a dimension outside the
// seven known ones. That is a programming defect, not a data defect: the
// resolvers refuse to fall back to a default sentence.
type UnknownDimensionError struct {
	Dimension Dimension
}

func (e *UnknownDimensionError) Error() string {
	return fmt.Sprintf("unknown quality dimension %q", string(e.Dimension))
}
