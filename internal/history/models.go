package history

import (
	"gorm.io/gorm"
)

// Run is one persisted scoring run.
type Run struct {
	gorm.Model
	UUID       string `gorm:"uniqueIndex"`
	Dir        string
	Rows       int
	OverallDQS float64
	Version    string
	Scores     []DimensionScore
}

// DimensionScore is one dimension's outcome within a run.
type DimensionScore struct {
	gorm.Model
	RunID          uint `gorm:"index"`
	Dimension      string
	Score          float64
	Severity       string
	Explanation    string
	Recommendation string
}
