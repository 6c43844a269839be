package engine

// Severity is the band a dimension score falls into. It selects the
// explanation sentence and drives console coloring.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ClassifySeverity maps a score to its severity band. The 90/75 cut points
// are fixed; note they deliberately differ from the 85 threshold used by
// Recommendation, so a score of 87 is medium severity yet needs no action.
func ClassifySeverity(score float64) Severity {
	switch {
	case score >= 90:
		return SeverityLow
	case score >= 75:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}
