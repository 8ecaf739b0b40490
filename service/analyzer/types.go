package analyzer

import (
	"context"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service"
)

type analyzerService struct {
	storageService   service.StorageService
	pricingService   service.PricingService
	recommendService service.RecommendService
}

type AnalyzerService interface {
	AnalyzeProject(ctx context.Context) ([]model.BucketSnapshot, error)
	AnalyzeBucket(ctx context.Context, info model.BucketInfo) (*model.BucketSnapshot, error)
}
