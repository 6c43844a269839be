package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peekknuf/txnqa/internal/dataset"
)

var txnColumns = []string{
	ColumnTransactionID,
	ColumnCustomerID,
	ColumnMerchantID,
	ColumnCurrencyCode,
	ColumnAmount,
	ColumnTimestamp,
	ColumnSettlement,
}

// txnTable builds a transaction table with the standard column layout.
func txnTable(t *testing.T, rows ...[]string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New("transactions", txnColumns)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, ds.AppendRow(row))
	}
	return ds
}

// cleanRow is a transaction row that violates no quality rule.
func cleanRow(id string) []string {
	return []string{id, "C1", "M1", "INR", "100", "2024-01-01", "2024-01-03"}
}

func refTable(t *testing.T, name, column string, ids ...string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(name, []string{column})
	require.NoError(t, err)
	for _, id := range ids {
		require.NoError(t, ds.AppendRow([]string{id}))
	}
	return ds
}

func TestCompletenessScore(t *testing.T) {
	t.Run("fully populated", func(t *testing.T) {
		score, err := CompletenessScore(txnTable(t, cleanRow("T1"), cleanRow("T2")))
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("one empty cell", func(t *testing.T) {
		row := cleanRow("T2")
		row[2] = ""
		score, err := CompletenessScore(txnTable(t, cleanRow("T1"), row))
		require.NoError(t, err)
		// 1 missing cell out of 14
		assert.Equal(t, 92.86, score)
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := CompletenessScore(txnTable(t))
		var shape *DataShapeError
		require.True(t, errors.As(err, &shape))
		assert.Equal(t, "transactions", shape.Dataset)
	})
}

func TestUniquenessScore(t *testing.T) {
	t.Run("all distinct", func(t *testing.T) {
		score, err := UniquenessScore(txnTable(t, cleanRow("T1"), cleanRow("T2")), ColumnTransactionID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("duplicates", func(t *testing.T) {
		score, err := UniquenessScore(
			txnTable(t, cleanRow("T1"), cleanRow("T1"), cleanRow("T2")), ColumnTransactionID)
		require.NoError(t, err)
		assert.Equal(t, 66.67, score)
	})

	t.Run("null ids count no distinct value", func(t *testing.T) {
		score, err := UniquenessScore(txnTable(t, cleanRow("T1"), cleanRow("")), ColumnTransactionID)
		require.NoError(t, err)
		assert.Equal(t, 50.0, score)
	})

	t.Run("missing id column", func(t *testing.T) {
		ds, err := dataset.New("transactions", []string{ColumnCurrencyCode})
		require.NoError(t, err)
		require.NoError(t, ds.AppendRow([]string{"INR"}))

		_, err = UniquenessScore(ds, ColumnTransactionID)
		var shape *DataShapeError
		require.True(t, errors.As(err, &shape))
		assert.Equal(t, ColumnTransactionID, shape.Column)
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := UniquenessScore(txnTable(t), ColumnTransactionID)
		var shape *DataShapeError
		assert.True(t, errors.As(err, &shape))
	})
}

func TestValidityScore(t *testing.T) {
	t.Run("accepted currencies", func(t *testing.T) {
		rows := [][]string{cleanRow("T1"), cleanRow("T2"), cleanRow("T3")}
		rows[1][3] = "USD"
		rows[2][3] = "EUR"
		score, err := ValidityScore(txnTable(t, rows...))
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("single foreign currency row", func(t *testing.T) {
		row := cleanRow("T1")
		row[3] = "GBP"
		score, err := ValidityScore(txnTable(t, row))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("null currency is invalid", func(t *testing.T) {
		bad := cleanRow("T2")
		bad[3] = ""
		score, err := ValidityScore(txnTable(t, cleanRow("T1"), bad, cleanRow("T3"), cleanRow("T4")))
		require.NoError(t, err)
		assert.Equal(t, 75.0, score)
	})

	t.Run("more valid codes never lower the score", func(t *testing.T) {
		const rows = 5
		prev := -1.0
		for valid := 0; valid <= rows; valid++ {
			var table [][]string
			for i := 0; i < rows; i++ {
				row := cleanRow("T")
				if i >= valid {
					row[3] = "GBP"
				}
				table = append(table, row)
			}
			score, err := ValidityScore(txnTable(t, table...))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, prev)
			prev = score
		}
	})
}

func TestAccuracyScore(t *testing.T) {
	t.Run("positive amounts", func(t *testing.T) {
		score, err := AccuracyScore(txnTable(t, cleanRow("T1"), cleanRow("T2")))
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("zero negative null and malformed are invalid", func(t *testing.T) {
		rows := [][]string{cleanRow("T1"), cleanRow("T2"), cleanRow("T3"), cleanRow("T4"), cleanRow("T5")}
		rows[1][4] = "0"
		rows[2][4] = "-25.50"
		rows[3][4] = ""
		rows[4][4] = "ten"
		score, err := AccuracyScore(txnTable(t, rows...))
		require.NoError(t, err)
		assert.Equal(t, 20.0, score)
	})

	t.Run("every amount null", func(t *testing.T) {
		rows := [][]string{cleanRow("T1"), cleanRow("T2")}
		rows[0][4] = ""
		rows[1][4] = ""
		score, err := AccuracyScore(txnTable(t, rows...))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})
}

func TestTimelinessScore(t *testing.T) {
	withDates := func(id, ts, settle string) []string {
		row := cleanRow(id)
		row[5] = ts
		row[6] = settle
		return row
	}

	t.Run("settled within the window", func(t *testing.T) {
		score, err := TimelinessScore(txnTable(t,
			withDates("T1", "2024-01-01", "2024-01-03"),
			withDates("T2", "2024-01-01", "2024-01-08"), // exactly 7 days
		))
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("fractional days truncate", func(t *testing.T) {
		// 7 days 23 hours is still 7 whole days.
		score, err := TimelinessScore(txnTable(t,
			withDates("T1", "2024-01-01 00:00:00", "2024-01-08 23:00:00"),
		))
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("late settlement", func(t *testing.T) {
		score, err := TimelinessScore(txnTable(t,
			withDates("T1", "2024-01-01", "2024-01-09"),
			withDates("T2", "2024-01-01", "2024-01-02"),
		))
		require.NoError(t, err)
		assert.Equal(t, 50.0, score)
	})

	t.Run("unparseable timestamps count late", func(t *testing.T) {
		score, err := TimelinessScore(txnTable(t,
			withDates("T1", "not-a-date", "2024-01-02"),
			withDates("T2", "2024-01-01", ""),
			withDates("T3", "2024-01-01", "2024-01-02"),
		))
		require.NoError(t, err)
		assert.Equal(t, 33.33, score)
	})

	t.Run("missing settlement column", func(t *testing.T) {
		ds, err := dataset.New("transactions", []string{ColumnTimestamp})
		require.NoError(t, err)
		require.NoError(t, ds.AppendRow([]string{"2024-01-01"}))

		_, err = TimelinessScore(ds)
		var shape *DataShapeError
		require.True(t, errors.As(err, &shape))
		assert.Equal(t, ColumnSettlement, shape.Column)
	})
}

func TestConsistencyScore(t *testing.T) {
	t.Run("inr with merchant is consistent", func(t *testing.T) {
		score, err := ConsistencyScore(txnTable(t, cleanRow("T1")))
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("inr without merchant is the contradiction", func(t *testing.T) {
		bad := cleanRow("T2")
		bad[2] = ""
		score, err := ConsistencyScore(txnTable(t, cleanRow("T1"), bad))
		require.NoError(t, err)
		assert.Equal(t, 50.0, score)
	})

	t.Run("missing merchant alone is tolerated", func(t *testing.T) {
		row := cleanRow("T1")
		row[2] = ""
		row[3] = "USD"
		score, err := ConsistencyScore(txnTable(t, row))
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})
}

func TestIntegrityScore(t *testing.T) {
	customers := func(t *testing.T, ids ...string) *dataset.Dataset {
		return refTable(t, "customers", ColumnCustomerID, ids...)
	}
	merchants := func(t *testing.T, ids ...string) *dataset.Dataset {
		return refTable(t, "merchants", ColumnMerchantID, ids...)
	}

	t.Run("all references resolve", func(t *testing.T) {
		score, err := IntegrityScore(txnTable(t, cleanRow("T1")), customers(t, "C1"), merchants(t, "M1"))
		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("one unknown customer lowers by one row share", func(t *testing.T) {
		rows := [][]string{cleanRow("T1"), cleanRow("T2"), cleanRow("T3"), cleanRow("T4")}
		rows[2][1] = "C404"
		score, err := IntegrityScore(txnTable(t, rows...), customers(t, "C1"), merchants(t, "M1"))
		require.NoError(t, err)
		assert.Equal(t, 75.0, score)
	})

	t.Run("unknown merchant is just as broken", func(t *testing.T) {
		row := cleanRow("T1")
		row[2] = "M404"
		score, err := IntegrityScore(txnTable(t, row), customers(t, "C1"), merchants(t, "M1"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("null id never matches", func(t *testing.T) {
		row := cleanRow("T1")
		row[1] = ""
		score, err := IntegrityScore(txnTable(t, row), customers(t, "C1"), merchants(t, "M1"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("empty reference table matches nothing", func(t *testing.T) {
		score, err := IntegrityScore(txnTable(t, cleanRow("T1")), customers(t), merchants(t, "M1"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("reference table missing its id column", func(t *testing.T) {
		wrong := refTable(t, "customers", "name", "Alice")
		_, err := IntegrityScore(txnTable(t, cleanRow("T1")), wrong, merchants(t, "M1"))
		var shape *DataShapeError
		require.True(t, errors.As(err, &shape))
		assert.Equal(t, ColumnCustomerID, shape.Column)
	})
}

func TestScoresAreRoundedToTwoDecimals(t *testing.T) {
	// 1 bad row in 3 exercises a repeating fraction in every metric.
	bad := []string{"T1", "C404", "", "GBP", "-1", "bad", "bad"}
	txns := txnTable(t, cleanRow("T1"), cleanRow("T2"), bad)
	customers := refTable(t, "customers", ColumnCustomerID, "C1")
	merchants := refTable(t, "merchants", ColumnMerchantID, "M1")

	checks := []struct {
		name  string
		score func() (float64, error)
	}{
		{"completeness", func() (float64, error) { return CompletenessScore(txns) }},
		{"uniqueness", func() (float64, error) { return UniquenessScore(txns, ColumnTransactionID) }},
		{"validity", func() (float64, error) { return ValidityScore(txns) }},
		{"accuracy", func() (float64, error) { return AccuracyScore(txns) }},
		{"timeliness", func() (float64, error) { return TimelinessScore(txns) }},
		{"consistency", func() (float64, error) { return ConsistencyScore(txns) }},
		{"integrity", func() (float64, error) { return IntegrityScore(txns, customers, merchants) }},
	}
	for _, check := range checks {
		t.Run(check.name, func(t *testing.T) {
			score, err := check.score()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
			assert.Equal(t, round2(score), score, "score must carry at most 2 decimals")
		})
	}
}
