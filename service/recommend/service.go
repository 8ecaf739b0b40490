package recommend

import (
	"fmt"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service/pricing"
)

func NewService(pricingService pricing.PricingService) *service {
	return &service{
		pricingService: pricingService,
	}
}

// Recommend implements service.RecommendService.
// It returns the ordered recommendation list for a bucket together with
// its optimized monthly cost. Tier-change and lifecycle recommendations
// are mutually exclusive; the versioning advisory is additive and never
// changes the optimized cost.
func (s *service) Recommend(snapshot *model.BucketSnapshot) ([]model.Recommendation, float64) {
	var recommendations []model.Recommendation
	optimizedCost := snapshot.CurrentCost

	coldRatio := float64(snapshot.AgeCohorts.Rare+snapshot.AgeCohorts.Cold) / float64(max(snapshot.ObjectCount, 1))

	if snapshot.StorageClass == model.TierStandard && coldRatio > tierChangeRatio {
		targetTier := model.TierNearline
		if coldRatio > directRatio {
			targetTier = model.TierColdline
			if snapshot.AgeCohorts.Cold > snapshot.AgeCohorts.Rare {
				targetTier = model.TierArchive
			}
		}

		newCost := snapshot.SizeGB() * s.pricingService.Rate(targetTier)
		savings := snapshot.CurrentCost - newCost

		recommendations = append(recommendations, model.Recommendation{
			Kind:    model.RecommendationStorageClass,
			Action:  fmt.Sprintf("Change storage class from %s to %s", snapshot.StorageClass, targetTier),
			Savings: savings,
			Details: fmt.Sprintf("Estimated monthly savings: $%.2f", savings),
		})
		optimizedCost = newCost
	} else if coldRatio > lifecycleRatio {
		savings := snapshot.CurrentCost * lifecycleSavingsFactor

		recommendations = append(recommendations, model.Recommendation{
			Kind:    model.RecommendationLifecycle,
			Action:  "Implement lifecycle policy to transition older objects to cheaper storage classes",
			Savings: savings,
			Details: "Suggested policy: Move objects older than 30 days to NEARLINE, " +
				"90 days to COLDLINE, and 365 days to ARCHIVE",
		})
		optimizedCost = snapshot.CurrentCost - savings
	}

	if snapshot.ObjectCount > versioningReviewThreshold {
		recommendations = append(recommendations, model.Recommendation{
			Kind:    model.RecommendationVersioning,
			Action:  "Review object versioning settings",
			Savings: 0, // cannot estimate without knowing versioning status
			Details: "If enabled, consider adding lifecycle rules to delete old versions",
		})
	}

	return recommendations, optimizedCost
}

// LifecyclePolicy is the fixed three-rule policy installed by the apply
// phase, matching the suggestion text emitted above.
func LifecyclePolicy() []model.LifecycleRule {
	return []model.LifecycleRule{
		{AgeDays: 30, TargetTier: model.TierNearline},
		{AgeDays: 90, TargetTier: model.TierColdline},
		{AgeDays: 365, TargetTier: model.TierArchive},
	}
}
