// Package profiler computes per-column descriptive statistics for a loaded
// dataset. It backs the drill-down view shown next to a quality report.
package profiler

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/peekknuf/txnqa/internal/dataset"
)

// Column value types as reported in a profile.
const (
	TypeInt       = "int"
	TypeFloat     = "float"
	TypeTimestamp = "timestamp"
	TypeString    = "string"
)

const maxSampleValues = 5

// ColumnStats describes one column of a dataset.
type ColumnStats struct {
	Name          string
	Type          string
	Count         int // non-null values
	NullCount     int
	DistinctCount int
	Min           string
	Max           string
	Mean          float64 // numeric columns only
	Std           float64 // numeric columns only
	TopValue      string
	TopCount      int
	SampleValues  []string
}

// Profile is the full description of one dataset.
type Profile struct {
	Dataset   string
	Rows      int
	NullRatio float64 // empty cells over all cells
	Columns   []ColumnStats
}

// Describe profiles every column of the dataset. Columns appear in table
// order, so the output is stable across runs.
func Describe(ds *dataset.Dataset) *Profile {
	profile := &Profile{
		Dataset: ds.Name,
		Rows:    ds.RowCount(),
		Columns: make([]ColumnStats, 0, ds.ColumnCount()),
	}

	totalNulls := 0
	for col, name := range ds.Columns() {
		stats := describeColumn(ds, col, name)
		totalNulls += stats.NullCount
		profile.Columns = append(profile.Columns, stats)
	}

	cells := ds.RowCount() * ds.ColumnCount()
	if cells > 0 {
		profile.NullRatio = float64(totalNulls) / float64(cells)
	}
	return profile
}

func describeColumn(ds *dataset.Dataset, col int, name string) ColumnStats {
	stats := ColumnStats{Name: name}

	freq := make(map[string]int)
	var (
		colType  string
		sum      float64
		sumSq    float64
		numCount int

		minNum, maxNum     float64
		minTime, maxTime   time.Time
		minTimeS, maxTimeS string
		minLex, maxLex     string
		haveNum, haveLex   bool
	)

	for row := 0; row < ds.RowCount(); row++ {
		value := ds.At(row, col)
		if dataset.IsNull(value) {
			stats.NullCount++
			continue
		}
		stats.Count++
		freq[value]++

		if len(stats.SampleValues) < maxSampleValues {
			stats.SampleValues = append(stats.SampleValues, value)
		}

		colType = mergeType(colType, classify(value))

		if num, err := strconv.ParseFloat(value, 64); err == nil {
			sum += num
			sumSq += num * num
			numCount++
			if !haveNum || num < minNum {
				minNum = num
			}
			if !haveNum || num > maxNum {
				maxNum = num
			}
			haveNum = true
		}
		if ts, ok := dataset.ParseTimestamp(value); ok {
			if minTime.IsZero() || ts.Before(minTime) {
				minTime, minTimeS = ts, value
			}
			if maxTime.IsZero() || ts.After(maxTime) {
				maxTime, maxTimeS = ts, value
			}
		}
		if !haveLex || value < minLex {
			minLex = value
		}
		if !haveLex || value > maxLex {
			maxLex = value
		}
		haveLex = true
	}

	stats.DistinctCount = len(freq)
	if colType == "" {
		colType = TypeString
	}
	stats.Type = colType

	switch colType {
	case TypeInt, TypeFloat:
		if numCount > 0 {
			stats.Min = strconv.FormatFloat(minNum, 'g', -1, 64)
			stats.Max = strconv.FormatFloat(maxNum, 'g', -1, 64)
			stats.Mean = sum / float64(numCount)
			if numCount > 1 {
				variance := (sumSq - sum*sum/float64(numCount)) / float64(numCount-1)
				if variance > 0 {
					stats.Std = math.Sqrt(variance)
				}
			}
		}
	case TypeTimestamp:
		stats.Min = minTimeS
		stats.Max = maxTimeS
	default:
		stats.Min = minLex
		stats.Max = maxLex
	}

	stats.TopValue, stats.TopCount = topOf(freq)
	return stats
}

// classify types a single non-null value.
func classify(value string) string {
	if _, err := strconv.Atoi(value); err == nil {
		return TypeInt
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return TypeFloat
	}
	if _, ok := dataset.ParseTimestamp(value); ok {
		return TypeTimestamp
	}
	return TypeString
}

// mergeType folds a new value type into the column type seen so far. Ints
// widen to floats; any other mix degrades to string.
func mergeType(have, next string) string {
	switch {
	case have == "" || have == next:
		return next
	case (have == TypeInt && next == TypeFloat) || (have == TypeFloat && next == TypeInt):
		return TypeFloat
	default:
		return TypeString
	}
}

// topOf returns the most frequent value, breaking ties lexically so repeated
// profiles agree.
func topOf(freq map[string]int) (string, int) {
	values := make([]string, 0, len(freq))
	for value := range freq {
		values = append(values, value)
	}
	sort.Strings(values)

	top, count := "", 0
	for _, value := range values {
		if freq[value] > count {
			top, count = value, freq[value]
		}
	}
	return top, count
}
