package pricing

import (
	"testing"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/stretchr/testify/assert"
)

func TestRates(t *testing.T) {
	svc := NewService()

	assert.Equal(t, 0.020, svc.Rate(model.TierStandard))
	assert.Equal(t, 0.010, svc.Rate(model.TierNearline))
	assert.Equal(t, 0.004, svc.Rate(model.TierColdline))
	assert.Equal(t, 0.0012, svc.Rate(model.TierArchive))
}

func TestTierProfileOrdering(t *testing.T) {
	svc := NewService()

	// Rates strictly decrease and deletion windows strictly increase
	// from hottest to coldest tier
	for i := 1; i < len(model.Tiers); i++ {
		hotter, colder := model.Tiers[i-1], model.Tiers[i]
		assert.Greater(t, svc.Rate(hotter), svc.Rate(colder), "rate %s vs %s", hotter, colder)
		assert.Less(t, svc.DeletionWindow(hotter), svc.DeletionWindow(colder), "window %s vs %s", hotter, colder)
		assert.LessOrEqual(t, svc.RetrievalCost(hotter), svc.RetrievalCost(colder), "retrieval %s vs %s", hotter, colder)
	}
}

func TestUnknownTierFallsBackToDefault(t *testing.T) {
	svc := NewService()

	unknown := model.StorageTier("MULTI_REGIONAL")
	assert.Equal(t, svc.Rate(model.DefaultTier), svc.Rate(unknown))
	assert.Equal(t, svc.DeletionWindow(model.DefaultTier), svc.DeletionWindow(unknown))
	assert.Equal(t, svc.RetrievalCost(model.DefaultTier), svc.RetrievalCost(unknown))
}
