package model

// ReportSummary holds the project-wide totals of one analysis run
type ReportSummary struct {
	TotalBuckets       int     `json:"total_buckets"`
	TotalCurrentCost   float64 `json:"total_current_cost"`
	TotalOptimizedCost float64 `json:"total_optimized_cost"`
	TotalSavings       float64 `json:"total_savings"`
	SavingsPercent     float64 `json:"savings_percent"`
}

// AnalysisReport aggregates all bucket snapshots from a single run.
// Built once, exported or discarded; never updated incrementally.
type AnalysisReport struct {
	ProjectID   string           `json:"project_id"`
	GeneratedAt string           `json:"generated_at"`
	Summary     ReportSummary    `json:"summary"`
	Buckets     []BucketSnapshot `json:"buckets"`
}
