package analyzer

import (
	"context"
	"time"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service"
)

func NewService(storageService service.StorageService, pricingService service.PricingService, recommendService service.RecommendService) *analyzerService {
	return &analyzerService{
		storageService:   storageService,
		pricingService:   pricingService,
		recommendService: recommendService,
	}
}

// AnalyzeProject scans every bucket in the project sequentially and
// returns the analyzed snapshots in scan order. An empty project yields
// an empty slice, not an error.
func (s *analyzerService) AnalyzeProject(ctx context.Context) ([]model.BucketSnapshot, error) {
	buckets, err := s.storageService.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]model.BucketSnapshot, 0, len(buckets))
	for _, bucket := range buckets {
		snapshot, err := s.AnalyzeBucket(ctx, bucket)
		if err != nil {
			return nil, err
		}

		snapshot.Recommendations, snapshot.OptimizedCost = s.recommendService.Recommend(snapshot)
		snapshot.Savings = snapshot.CurrentCost - snapshot.OptimizedCost
		snapshots = append(snapshots, *snapshot)
	}

	return snapshots, nil
}

// AnalyzeBucket lists a bucket's objects and accumulates size, age
// cohorts and the current monthly cost. Objects without a creation
// timestamp still count toward size and object count but fall into no
// cohort.
func (s *analyzerService) AnalyzeBucket(ctx context.Context, info model.BucketInfo) (*model.BucketSnapshot, error) {
	objects, err := s.storageService.ListObjects(ctx, info.Name)
	if err != nil {
		return nil, err
	}

	snapshot := &model.BucketSnapshot{
		Name:         info.Name,
		Location:     info.Location,
		StorageClass: info.StorageClass,
		ObjectCount:  int64(len(objects)),
	}

	now := time.Now().UTC()
	for _, object := range objects {
		snapshot.SizeBytes += object.SizeBytes

		if object.Created == nil {
			continue
		}

		switch classifyAge(now, *object.Created) {
		case cohortRecent:
			snapshot.AgeCohorts.Recent++
		case cohortMedium:
			snapshot.AgeCohorts.Medium++
		case cohortRare:
			snapshot.AgeCohorts.Rare++
		case cohortCold:
			snapshot.AgeCohorts.Cold++
		}
	}

	snapshot.CurrentCost = snapshot.SizeGB() * s.pricingService.Rate(info.StorageClass)
	return snapshot, nil
}
