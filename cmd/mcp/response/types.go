package response

// AgeCohorts buckets object counts by age relative to the analysis time
type AgeCohorts struct {
	Recent int64 `json:"recent"`
	Medium int64 `json:"medium"`
	Rare   int64 `json:"rare"`
	Cold   int64 `json:"cold"`
}

// Recommendation represents a single optimization action
type Recommendation struct {
	Type    string  `json:"type"`
	Action  string  `json:"action"`
	Savings float64 `json:"savings"`
	Details string  `json:"details"`
}

// BucketSnapshot represents the analysis result for one bucket
type BucketSnapshot struct {
	Name            string           `json:"name"`
	Location        string           `json:"location"`
	StorageClass    string           `json:"storage_class"`
	SizeGB          float64          `json:"size_gb"`
	ObjectCount     int64            `json:"object_count"`
	AgeCohorts      AgeCohorts       `json:"age_cohorts"`
	CurrentCost     float64          `json:"current_monthly_cost"`
	OptimizedCost   float64          `json:"optimized_monthly_cost"`
	Savings         float64          `json:"monthly_savings"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Summary holds the project-wide totals
type Summary struct {
	TotalBuckets       int     `json:"total_buckets"`
	TotalCurrentCost   float64 `json:"total_current_cost"`
	TotalOptimizedCost float64 `json:"total_optimized_cost"`
	TotalSavings       float64 `json:"total_savings"`
	SavingsPercent     float64 `json:"savings_percent"`
}

// AnalysisReport represents a full storage analysis run
type AnalysisReport struct {
	ProjectID   string           `json:"project_id"`
	GeneratedAt string           `json:"generated_at"`
	Summary     Summary          `json:"summary"`
	Buckets     []BucketSnapshot `json:"buckets"`
}

// BucketRecommendations pairs a bucket with its recommendations
type BucketRecommendations struct {
	Bucket          string           `json:"bucket"`
	Recommendations []Recommendation `json:"recommendations"`
}
