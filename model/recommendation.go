package model

// RecommendationKind represents the kind of optimization recommended
type RecommendationKind string

const (
	RecommendationStorageClass RecommendationKind = "storage_class"
	RecommendationLifecycle    RecommendationKind = "lifecycle"
	RecommendationVersioning   RecommendationKind = "versioning"
)

// Recommendation is a single optimization action for a bucket.
// Savings is the estimated monthly saving in USD; advisory
// recommendations carry 0.
type Recommendation struct {
	Kind    RecommendationKind `json:"type"`
	Action  string             `json:"action"`
	Savings float64            `json:"savings"`
	Details string             `json:"details"`
}

// TargetTier is the tier a storage_class recommendation moves the
// bucket to, empty for other kinds.
func (r Recommendation) TargetTier() StorageTier {
	if r.Kind != RecommendationStorageClass {
		return ""
	}
	for i := len(r.Action) - 1; i >= 0; i-- {
		if r.Action[i] == ' ' {
			return StorageTier(r.Action[i+1:])
		}
	}
	return ""
}
