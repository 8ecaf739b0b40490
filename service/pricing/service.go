package pricing

import "github.com/elC0mpa/gcs-doctor/model"

func NewService() *service {
	return &service{}
}

// lookup resolves a tier's price profile, falling back to
// model.DefaultTier for storage classes the table does not know
func (s *service) lookup(tier model.StorageTier) tierPricing {
	if p, ok := pricingTable[tier]; ok {
		return p
	}
	return pricingTable[model.DefaultTier]
}

// Rate implements service.PricingService
func (s *service) Rate(tier model.StorageTier) float64 {
	return s.lookup(tier).rate
}

// DeletionWindow implements service.PricingService
func (s *service) DeletionWindow(tier model.StorageTier) int {
	return s.lookup(tier).deletionWindow
}

// RetrievalCost implements service.PricingService
func (s *service) RetrievalCost(tier model.StorageTier) float64 {
	return s.lookup(tier).retrievalCost
}
