// Package engine scores a transactional dataset against seven fixed quality
// dimensions and explains every score in analyst-readable terms. Scoring is
// deterministic: the same three input tables always produce the same report.
package engine

// Dimension is one of the seven quality axes. The set is closed: lookup
// tables are keyed by it and never fall back to a default entry.
type Dimension string

const (
	Completeness Dimension = "Completeness"
	Accuracy     Dimension = "Accuracy"
	Validity     Dimension = "Validity"
	Uniqueness   Dimension = "Uniqueness"
	Timeliness   Dimension = "Timeliness"
	Consistency  Dimension = "Consistency"
	Integrity    Dimension = "Integrity"
)

// Dimensions returns all seven dimensions in report order.
func Dimensions() []Dimension {
	return []Dimension{
		Completeness,
		Accuracy,
		Validity,
		Uniqueness,
		Timeliness,
		Consistency,
		Integrity,
	}
}

// ParseDimension resolves a free-form name to a known dimension.
func ParseDimension(name string) (Dimension, error) {
	for _, dim := range Dimensions() {
		if string(dim) == name {
			return dim, nil
		}
	}
	return "", &UnknownDimensionError{Dimension: Dimension(name)}
}
