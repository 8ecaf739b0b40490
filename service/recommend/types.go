package recommend

import (
	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service/pricing"
)

type service struct {
	pricingService pricing.PricingService
}

type RecommendService interface {
	Recommend(snapshot *model.BucketSnapshot) ([]model.Recommendation, float64)
}

// Triage bands for the cold ratio. Deliberately coarse: only
// high-confidence cold buckets get a direct tier change, mildly cold
// buckets get a deferred lifecycle rule instead, which keeps the
// engine from triggering early-deletion or retrieval fees it does not
// model precisely.
const (
	tierChangeRatio = 0.7
	directRatio     = 0.9
	lifecycleRatio  = 0.3
)

// lifecycleSavingsFactor is a flat heuristic, not derived from
// size/tier math; kept for compatibility with exported reports.
const lifecycleSavingsFactor = 0.3

// versioningReviewThreshold is the object count above which a
// versioning review advisory is emitted
const versioningReviewThreshold = 1000
