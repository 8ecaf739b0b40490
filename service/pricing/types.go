package pricing

import "github.com/elC0mpa/gcs-doctor/model"

type service struct{}

type PricingService interface {
	Rate(tier model.StorageTier) float64
	DeletionWindow(tier model.StorageTier) int
	RetrievalCost(tier model.StorageTier) float64
}

// tierPricing holds the static price profile of one storage class
type tierPricing struct {
	rate           float64 // USD per GB per month
	deletionWindow int     // early-deletion fee window in days
	retrievalCost  float64 // USD per GB retrieved
}

// Approximate list prices, may vary by region
var pricingTable = map[model.StorageTier]tierPricing{
	model.TierStandard: {rate: 0.020, deletionWindow: 0, retrievalCost: 0},
	model.TierNearline: {rate: 0.010, deletionWindow: 30, retrievalCost: 0.01},
	model.TierColdline: {rate: 0.004, deletionWindow: 90, retrievalCost: 0.02},
	model.TierArchive:  {rate: 0.0012, deletionWindow: 365, retrievalCost: 0.05},
}
