package engine

// Report is the immutable outcome of one scoring run: the seven dimension
// scores, the overall DQS (their unweighted mean), and the resolved
// explanation and recommendation per dimension. Nothing mutates a report
// after AnalyzeDataset returns it.
type Report struct {
	OverallDQS      float64               `json:"overall_dqs" yaml:"overall_dqs"`
	Scores          map[Dimension]float64 `json:"scores" yaml:"scores"`
	Explanations    map[Dimension]string  `json:"explanations" yaml:"explanations"`
	Recommendations map[Dimension]string  `json:"recommendations" yaml:"recommendations"`
}

// SeverityFor re-derives the severity band of one dimension's recorded score.
func (r *Report) SeverityFor(dim Dimension) Severity {
	return ClassifySeverity(r.Scores[dim])
}
