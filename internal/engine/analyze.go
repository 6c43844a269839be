package engine

import (
	"github.com/peekknuf/txnqa/internal/dataset"
	"github.com/peekknuf/txnqa/internal/processing"
)

// AnalyzeDataset scores the transaction table against all seven quality
// dimensions, cross-referencing the customer and merchant tables for
// referential integrity, and assembles the full report. Any DataShapeError
// aborts the whole run: a report is complete or it does not exist. When
// several dimensions fail at once the error returned is the first in report
// order, keeping failures deterministic too.
func AnalyzeDataset(transactions, customers, merchants *dataset.Dataset) (*Report, error) {
	dims := Dimensions()
	scores := make([]float64, len(dims))
	errs := make([]error, len(dims))

	// Metrics only read the shared tables, so they fan out freely.
	processing.ForEach(len(dims), len(dims), func(i int) {
		scores[i], errs[i] = scoreDimension(dims[i], transactions, customers, merchants)
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	report := &Report{
		Scores:          make(map[Dimension]float64, len(dims)),
		Explanations:    make(map[Dimension]string, len(dims)),
		Recommendations: make(map[Dimension]string, len(dims)),
	}

	var sum float64
	for i, dim := range dims {
		score := scores[i]
		report.Scores[dim] = score
		sum += score

		explanation, err := Explanation(dim, ClassifySeverity(score))
		if err != nil {
			return nil, err
		}
		report.Explanations[dim] = explanation

		recommendation, err := Recommendation(dim, score)
		if err != nil {
			return nil, err
		}
		report.Recommendations[dim] = recommendation
	}
	report.OverallDQS = round2(sum / float64(len(dims)))

	return report, nil
}

func scoreDimension(dim Dimension, txns, customers, merchants *dataset.Dataset) (float64, error) {
	switch dim {
	case Completeness:
		return CompletenessScore(txns)
	case Accuracy:
		return AccuracyScore(txns)
	case Validity:
		return ValidityScore(txns)
	case Uniqueness:
		return UniquenessScore(txns, ColumnTransactionID)
	case Timeliness:
		return TimelinessScore(txns)
	case Consistency:
		return ConsistencyScore(txns)
	case Integrity:
		return IntegrityScore(txns, customers, merchants)
	default:
		return 0, &UnknownDimensionError{Dimension: dim}
	}
}
