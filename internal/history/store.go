// Package history persists scoring runs in a local SQLite database so score
// drift can be tracked across runs.
package history

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/peekknuf/txnqa/internal/engine"
)

// Store reads and writes the run history database.
type Store struct {
	db      *gorm.DB
	version string
}

// NewStore opens (and if needed migrates) the history database at dbPath.
// The version is stamped onto every saved run.
func NewStore(dbPath, version string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&Run{}, &DimensionScore{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db, version: version}, nil
}

// SaveReport persists one scored bundle and returns the new run id.
func (s *Store) SaveReport(dir string, rows int, report *engine.Report) (string, error) {
	run := Run{
		UUID:       uuid.NewString(),
		Dir:        dir,
		Rows:       rows,
		OverallDQS: report.OverallDQS,
		Version:    s.version,
	}
	for _, dim := range engine.Dimensions() {
		run.Scores = append(run.Scores, DimensionScore{
			Dimension:      string(dim),
			Score:          report.Scores[dim],
			Severity:       string(report.SeverityFor(dim)),
			Explanation:    report.Explanations[dim],
			Recommendation: report.Recommendations[dim],
		})
	}
	if err := s.db.Create(&run).Error; err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}
	return run.UUID, nil
}

// ListRuns returns the most recent runs, newest first. A limit of zero or
// less returns everything.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := s.db.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var runs []Run
	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run with its dimension scores.
func (s *Store) GetRun(id string) (*Run, error) {
	var run Run
	err := s.db.Preload("Scores").Where("uuid = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return &run, nil
}
