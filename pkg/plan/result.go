package plan

import "time"

// ScoreBreakdown holds the four sub-scores in [0,1] and the weighted
// overall score in [0,100].
type ScoreBreakdown struct {
	Workflow      float64 `json:"workflow_efficiency"`
	Space         float64 `json:"space_utilization"`
	Safety        float64 `json:"safety_compliance"`
	Accessibility float64 `json:"accessibility"`
	Overall       float64 `json:"overall"`
}

// Result is the outcome of an optimization run: the best iteration's
// zones, placements, findings, and score, plus the full score trace.
// Score.Overall always equals the maximum of Trace.
type Result struct {
	Zones      []Zone          `json:"zones"`
	Placement  PlacementResult `json:"placement"`
	Violations []Violation     `json:"violations,omitempty"`
	Score      ScoreBreakdown  `json:"score"`
	Iterations int             `json:"iterations_run"`
	Elapsed    time.Duration   `json:"elapsed_ns"`
	Trace      []float64       `json:"trace,omitempty"`
}
