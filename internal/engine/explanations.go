package engine

import "fmt"

// explanations holds one fixed sentence per (dimension, severity) cell.
// The wording is load-bearing: downstream compliance reports diff against
// these exact strings, so edits here are breaking changes.
var explanations = map[Dimension]map[Severity]string{
	Completeness: {
		SeverityLow:    "Most required fields are populated, indicating strong data capture processes.",
		SeverityMedium: "Some critical fields contain missing values, which may affect downstream processing.",
		SeverityHigh:   "A significant number of required fields are missing, impacting reconciliation and compliance.",
	},
	Accuracy: {
		SeverityLow:    "Transaction values are largely accurate and within expected ranges.",
		SeverityMedium: "Some transaction values appear unrealistic or invalid, affecting reporting reliability.",
		SeverityHigh:   "Many transaction values are incorrect or invalid, posing financial and operational risks.",
	},
	Validity: {
		SeverityLow:    "Most fields conform to expected formats and domain rules.",
		SeverityMedium: "Several fields violate format or domain constraints, reducing system reliability.",
		SeverityHigh:   "Widespread format and domain violations prevent reliable data processing.",
	},
	Uniqueness: {
		SeverityLow:    "Records are mostly unique, minimizing duplication risks.",
		SeverityMedium: "Some duplicate records were detected, which may lead to reconciliation errors.",
		SeverityHigh:   "High duplication levels detected, risking double counting and reporting inaccuracies.",
	},
	Timeliness: {
		SeverityLow:    "Transactions are settled within acceptable timeframes.",
		SeverityMedium: "Settlement delays are observed, impacting real-time visibility.",
		SeverityHigh:   "Significant delays detected, reducing operational effectiveness and fraud detection capability.",
	},
	Consistency: {
		SeverityLow:    "Related fields show strong alignment across records.",
		SeverityMedium: "Some inconsistencies exist between related fields, causing reporting mismatches.",
		SeverityHigh:   "Frequent inconsistencies detected, reducing trust in analytical outputs.",
	},
	Integrity: {
		SeverityLow:    "Relationships across datasets are well maintained.",
		SeverityMedium: "Some records reference missing or invalid entities.",
		SeverityHigh:   "Broken relationships detected, impacting end-to-end data reliability.",
	},
}

// recommendations holds the remediation sentence per dimension, used when a
// score falls below the no-action threshold.
var recommendations = map[Dimension]string{
	Completeness: "Enforce mandatory field validation at data ingestion.",
	Accuracy:     "Apply value range checks and validation rules at the source.",
	Validity:     "Standardize formats and apply domain-level validations.",
	Uniqueness:   "Implement unique constraints and deduplication logic.",
	Timeliness:   "Optimize settlement workflows and monitor delays.",
	Consistency:  "Introduce cross-field validation rules.",
	Integrity:    "Enforce referential integrity across related datasets.",
}

// NoActionRecommendation is returned for any dimension scoring at or above
// the no-action threshold.
const NoActionRecommendation = "No immediate action required. Continue monitoring."

// noActionThreshold is coarser than the 90/75 severity bands on purpose: a
// medium-severity 87 still gets the no-action sentence.
const noActionThreshold = 85

// Explanation returns the fixed sentence for a dimension at a severity band.
func Explanation(dim Dimension, severity Severity) (string, error) {
	table, ok := explanations[dim]
	if !ok {
		return "", &UnknownDimensionError{Dimension: dim}
	}
	text, ok := table[severity]
	if !ok {
		return "", fmt.Errorf("no %s explanation for severity %q", dim, severity)
	}
	return text, nil
}

// Recommendation returns the remediation sentence for a dimension score, or
// the shared no-action sentence when the score clears the threshold.
func Recommendation(dim Dimension, score float64) (string, error) {
	if score >= noActionThreshold {
		return NoActionRecommendation, nil
	}
	text, ok := recommendations[dim]
	if !ok {
		return "", &UnknownDimensionError{Dimension: dim}
	}
	return text, nil
}
