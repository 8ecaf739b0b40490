package recommend

import (
	"fmt"
	"testing"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gb = int64(1 << 30)

// standardSnapshot builds a 100GB STANDARD bucket with the given cohort
// spread and a current cost derived from the pricing table
func standardSnapshot(recent, medium, rare, cold int64) *model.BucketSnapshot {
	snapshot := &model.BucketSnapshot{
		Name:         "test-bucket",
		StorageClass: model.TierStandard,
		SizeBytes:    100 * gb,
		ObjectCount:  recent + medium + rare + cold,
		AgeCohorts: model.AgeCohortCounts{
			Recent: recent,
			Medium: medium,
			Rare:   rare,
			Cold:   cold,
		},
	}
	snapshot.CurrentCost = snapshot.SizeGB() * pricing.NewService().Rate(snapshot.StorageClass)
	return snapshot
}

func TestMostlyColdBucketGetsArchive(t *testing.T) {
	svc := NewService(pricing.NewService())

	snapshot := standardSnapshot(0, 0, 0, 10)
	recommendations, optimizedCost := svc.Recommend(snapshot)

	require.Len(t, recommendations, 1)
	assert.Equal(t, model.RecommendationStorageClass, recommendations[0].Kind)
	assert.Equal(t, model.TierArchive, recommendations[0].TargetTier())
	assert.InDelta(t, 100*0.0012, optimizedCost, 1e-9)
	assert.InDelta(t, snapshot.CurrentCost-optimizedCost, recommendations[0].Savings, 1e-9)
}

func TestMostlyRareBucketGetsColdline(t *testing.T) {
	svc := NewService(pricing.NewService())

	snapshot := standardSnapshot(0, 0, 10, 0)
	recommendations, optimizedCost := svc.Recommend(snapshot)

	require.Len(t, recommendations, 1)
	assert.Equal(t, model.RecommendationStorageClass, recommendations[0].Kind)
	assert.Equal(t, model.TierColdline, recommendations[0].TargetTier())
	assert.InDelta(t, 100*0.004, optimizedCost, 1e-9)
}

func TestModeratelyColdBucketGetsNearline(t *testing.T) {
	svc := NewService(pricing.NewService())

	// cold ratio 0.8, between the 0.7 and 0.9 bands
	snapshot := standardSnapshot(2, 0, 4, 4)
	recommendations, optimizedCost := svc.Recommend(snapshot)

	require.Len(t, recommendations, 1)
	assert.Equal(t, model.RecommendationStorageClass, recommendations[0].Kind)
	assert.Equal(t, model.TierNearline, recommendations[0].TargetTier())
	assert.InDelta(t, 100*0.010, optimizedCost, 1e-9)
}

func TestMildlyColdBucketGetsLifecyclePolicy(t *testing.T) {
	svc := NewService(pricing.NewService())

	// cold ratio 0.5
	snapshot := standardSnapshot(5, 0, 3, 2)
	recommendations, optimizedCost := svc.Recommend(snapshot)

	require.Len(t, recommendations, 1)
	assert.Equal(t, model.RecommendationLifecycle, recommendations[0].Kind)
	assert.InDelta(t, snapshot.CurrentCost*0.3, recommendations[0].Savings, 1e-9)
	assert.InDelta(t, snapshot.CurrentCost*0.7, optimizedCost, 1e-9)
}

func TestWarmBucketGetsNoRecommendation(t *testing.T) {
	svc := NewService(pricing.NewService())

	// cold ratio 0.1
	snapshot := standardSnapshot(9, 0, 1, 0)
	recommendations, optimizedCost := svc.Recommend(snapshot)

	assert.Empty(t, recommendations)
	assert.Equal(t, snapshot.CurrentCost, optimizedCost)
}

func TestNonStandardColdBucketGetsLifecycleNotTierChange(t *testing.T) {
	svc := NewService(pricing.NewService())

	snapshot := standardSnapshot(0, 0, 0, 10)
	snapshot.StorageClass = model.TierNearline
	snapshot.CurrentCost = snapshot.SizeGB() * pricing.NewService().Rate(model.TierNearline)

	recommendations, _ := svc.Recommend(snapshot)

	require.Len(t, recommendations, 1)
	assert.Equal(t, model.RecommendationLifecycle, recommendations[0].Kind)
}

func TestLargeBucketGetsVersioningAdvisory(t *testing.T) {
	svc := NewService(pricing.NewService())

	snapshot := standardSnapshot(1500, 0, 0, 0)
	recommendations, optimizedCost := svc.Recommend(snapshot)

	require.Len(t, recommendations, 1)
	assert.Equal(t, model.RecommendationVersioning, recommendations[0].Kind)
	assert.Zero(t, recommendations[0].Savings)
	assert.Equal(t, snapshot.CurrentCost, optimizedCost)
}

func TestVersioningAdvisoryIsAdditiveAndLast(t *testing.T) {
	svc := NewService(pricing.NewService())

	snapshot := standardSnapshot(0, 0, 0, 1500)
	recommendations, optimizedCost := svc.Recommend(snapshot)

	require.Len(t, recommendations, 2)
	assert.Equal(t, model.RecommendationStorageClass, recommendations[0].Kind)
	assert.Equal(t, model.RecommendationVersioning, recommendations[1].Kind)
	// The advisory never changes the optimized cost
	assert.InDelta(t, 100*0.0012, optimizedCost, 1e-9)
}

func TestEmptyBucket(t *testing.T) {
	svc := NewService(pricing.NewService())

	snapshot := &model.BucketSnapshot{
		Name:         "empty-bucket",
		StorageClass: model.TierStandard,
	}
	recommendations, optimizedCost := svc.Recommend(snapshot)

	assert.Empty(t, recommendations)
	assert.Zero(t, optimizedCost)
}

func TestRecommendIsIdempotent(t *testing.T) {
	svc := NewService(pricing.NewService())

	snapshot := standardSnapshot(1, 1, 4, 4)
	first, firstCost := svc.Recommend(snapshot)
	second, secondCost := svc.Recommend(snapshot)

	assert.Equal(t, first, second)
	assert.Equal(t, firstCost, secondCost)
}

func TestOptimizedCostNeverExceedsCurrentCost(t *testing.T) {
	svc := NewService(pricing.NewService())

	spreads := [][4]int64{
		{0, 0, 0, 0},
		{10, 0, 0, 0},
		{0, 10, 0, 0},
		{0, 0, 10, 0},
		{0, 0, 0, 10},
		{1, 1, 1, 1},
		{2, 0, 4, 4},
		{5, 0, 3, 2},
		{0, 0, 0, 1500},
		{1500, 0, 0, 0},
		{100, 100, 700, 600},
	}

	for _, spread := range spreads {
		t.Run(fmt.Sprintf("%v", spread), func(t *testing.T) {
			snapshot := standardSnapshot(spread[0], spread[1], spread[2], spread[3])
			recommendations, optimizedCost := svc.Recommend(snapshot)

			assert.LessOrEqual(t, optimizedCost, snapshot.CurrentCost)

			var tierSavings float64
			for _, recommendation := range recommendations {
				if recommendation.Kind != model.RecommendationVersioning {
					tierSavings += recommendation.Savings
				}
			}
			assert.InDelta(t, snapshot.CurrentCost-optimizedCost, tierSavings, 1e-9)
		})
	}
}

func TestLifecyclePolicyRules(t *testing.T) {
	rules := LifecyclePolicy()

	require.Len(t, rules, 3)
	assert.Equal(t, model.LifecycleRule{AgeDays: 30, TargetTier: model.TierNearline}, rules[0])
	assert.Equal(t, model.LifecycleRule{AgeDays: 90, TargetTier: model.TierColdline}, rules[1])
	assert.Equal(t, model.LifecycleRule{AgeDays: 365, TargetTier: model.TierArchive}, rules[2])
}
