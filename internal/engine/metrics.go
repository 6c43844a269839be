package engine

import (
	"math"
	"time"

	"github.com/peekknuf/txnqa/internal/dataset"
)

// Transaction table columns the metrics rely on.
const (
	ColumnTransactionID = "transaction_id"
	ColumnCustomerID    = "customer_id"
	ColumnMerchantID    = "merchant_id"
	ColumnCurrencyCode  = "currency_code"
	ColumnAmount        = "transaction_amount"
	ColumnTimestamp     = "transaction_timestamp"
	ColumnSettlement    = "settlement_date"
)

// ValidCurrencies is the closed set of accepted currency codes.
var ValidCurrencies = map[string]bool{
	"INR": true,
	"USD": true,
	"EUR": true,
}

// maxSettlementDelayDays is the lateness cutoff: settlement more than this
// many whole days after the transaction counts as late.
const maxSettlementDelayDays = 7

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// fractionScore turns a bad-row count into a 0..100 score.
func fractionScore(bad, total int) float64 {
	return round2(100 * (1 - float64(bad)/float64(total)))
}

// CompletenessScore measures the fraction of populated cells across every
// column of the transaction table.
func CompletenessScore(txns *dataset.Dataset) (float64, error) {
	rows := txns.RowCount()
	if rows == 0 {
		return 0, emptyTable(txns.Name)
	}

	cols := txns.ColumnCount()
	missing := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if dataset.IsNull(txns.At(r, c)) {
				missing++
			}
		}
	}
	return fractionScore(missing, rows*cols), nil
}

// UniquenessScore measures how many rows carry a distinct identifier.
// Null identifiers contribute rows but never a distinct value, so heavy
// duplication and missing ids both pull the score down.
func UniquenessScore(txns *dataset.Dataset, idColumn string) (float64, error) {
	idx, ok := txns.ColumnIndex(idColumn)
	if !ok {
		return 0, missingColumn(txns.Name, idColumn)
	}
	rows := txns.RowCount()
	if rows == 0 {
		return 0, emptyTable(txns.Name)
	}

	seen := make(map[string]struct{}, rows)
	for r := 0; r < rows; r++ {
		if v := txns.At(r, idx); !dataset.IsNull(v) {
			seen[v] = struct{}{}
		}
	}
	return round2(100 * float64(len(seen)) / float64(rows)), nil
}

// ValidityScore measures the fraction of rows whose currency code belongs to
// the accepted set. A null code is invalid.
func ValidityScore(txns *dataset.Dataset) (float64, error) {
	idx, ok := txns.ColumnIndex(ColumnCurrencyCode)
	if !ok {
		return 0, missingColumn(txns.Name, ColumnCurrencyCode)
	}
	rows := txns.RowCount()
	if rows == 0 {
		return 0, emptyTable(txns.Name)
	}

	invalid := 0
	for r := 0; r < rows; r++ {
		if !ValidCurrencies[txns.At(r, idx)] {
			invalid++
		}
	}
	return fractionScore(invalid, rows), nil
}

// AccuracyScore measures the fraction of rows with a present, strictly
// positive transaction amount. Null and unparseable amounts are invalid.
func AccuracyScore(txns *dataset.Dataset) (float64, error) {
	idx, ok := txns.ColumnIndex(ColumnAmount)
	if !ok {
		return 0, missingColumn(txns.Name, ColumnAmount)
	}
	rows := txns.RowCount()
	if rows == 0 {
		return 0, emptyTable(txns.Name)
	}

	invalid := 0
	for r := 0; r < rows; r++ {
		amount, err := txns.FloatAt(r, idx)
		if err != nil || amount <= 0 {
			invalid++
		}
	}
	return fractionScore(invalid, rows), nil
}

// TimelinessScore measures the fraction of rows settled within the delay
// cutoff. Lateness compares whole days, truncated toward zero. Rows whose
// timestamps are null or unparseable count as late rather than aborting the
// run; dirty cells must not sink the score of the clean rows.
func TimelinessScore(txns *dataset.Dataset) (float64, error) {
	tsIdx, ok := txns.ColumnIndex(ColumnTimestamp)
	if !ok {
		return 0, missingColumn(txns.Name, ColumnTimestamp)
	}
	settleIdx, ok := txns.ColumnIndex(ColumnSettlement)
	if !ok {
		return 0, missingColumn(txns.Name, ColumnSettlement)
	}
	rows := txns.RowCount()
	if rows == 0 {
		return 0, emptyTable(txns.Name)
	}

	late := 0
	for r := 0; r < rows; r++ {
		ts, err := txns.TimeAt(r, tsIdx)
		if err != nil {
			late++
			continue
		}
		settle, err := txns.TimeAt(r, settleIdx)
		if err != nil {
			late++
			continue
		}
		if wholeDays(settle.Sub(ts)) > maxSettlementDelayDays {
			late++
		}
	}
	return fractionScore(late, rows), nil
}

func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}

// ConsistencyScore measures the fraction of rows free of the one known
// cross-field contradiction: an INR transaction with no merchant attached.
func ConsistencyScore(txns *dataset.Dataset) (float64, error) {
	curIdx, ok := txns.ColumnIndex(ColumnCurrencyCode)
	if !ok {
		return 0, missingColumn(txns.Name, ColumnCurrencyCode)
	}
	merchIdx, ok := txns.ColumnIndex(ColumnMerchantID)
	if !ok {
		return 0, missingColumn(txns.Name, ColumnMerchantID)
	}
	rows := txns.RowCount()
	if rows == 0 {
		return 0, emptyTable(txns.Name)
	}

	inconsistent := 0
	for r := 0; r < rows; r++ {
		if txns.At(r, curIdx) == "INR" && dataset.IsNull(txns.At(r, merchIdx)) {
			inconsistent++
		}
	}
	return fractionScore(inconsistent, rows), nil
}

// IntegrityScore measures the fraction of rows whose customer and merchant
// both exist in the reference tables. A null id never matches a reference.
func IntegrityScore(txns, customers, merchants *dataset.Dataset) (float64, error) {
	custIdx, ok := txns.ColumnIndex(ColumnCustomerID)
	if !ok {
		return 0, missingColumn(txns.Name, ColumnCustomerID)
	}
	merchIdx, ok := txns.ColumnIndex(ColumnMerchantID)
	if !ok {
		return 0, missingColumn(txns.Name, ColumnMerchantID)
	}
	rows := txns.RowCount()
	if rows == 0 {
		return 0, emptyTable(txns.Name)
	}

	custSet, err := referenceSet(customers, ColumnCustomerID)
	if err != nil {
		return 0, err
	}
	merchSet, err := referenceSet(merchants, ColumnMerchantID)
	if err != nil {
		return 0, err
	}

	invalid := 0
	for r := 0; r < rows; r++ {
		_, custOK := custSet[txns.At(r, custIdx)]
		_, merchOK := merchSet[txns.At(r, merchIdx)]
		if !custOK || !merchOK {
			invalid++
		}
	}
	return fractionScore(invalid, rows), nil
}

// referenceSet collects the non-null values of one reference column.
func referenceSet(ds *dataset.Dataset, column string) (map[string]struct{}, error) {
	idx, ok := ds.ColumnIndex(column)
	if !ok {
		return nil, missingColumn(ds.Name, column)
	}
	set := make(map[string]struct{}, ds.RowCount())
	for r := 0; r < ds.RowCount(); r++ {
		if v := ds.At(r, idx); !dataset.IsNull(v) {
			set[v] = struct{}{}
		}
	}
	return set, nil
}
