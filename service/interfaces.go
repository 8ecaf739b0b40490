package service

import (
	"context"

	"github.com/elC0mpa/gcs-doctor/model"
)

// StorageService provides bucket/object enumeration and bucket mutation
type StorageService interface {
	ListBuckets(ctx context.Context) ([]model.BucketInfo, error)
	ListObjects(ctx context.Context, bucket string) ([]model.ObjectInfo, error)
	GetBucket(ctx context.Context, bucket string) (*model.BucketInfo, error)
	SetStorageClass(ctx context.Context, bucket string, tier model.StorageTier) error
	SetLifecyclePolicy(ctx context.Context, bucket string, rules []model.LifecycleRule) error
}

// PricingService provides storage-class pricing lookups
type PricingService interface {
	Rate(tier model.StorageTier) float64
	DeletionWindow(tier model.StorageTier) int
	RetrievalCost(tier model.StorageTier) float64
}

// RecommendService derives optimization actions for an analyzed bucket
type RecommendService interface {
	Recommend(snapshot *model.BucketSnapshot) ([]model.Recommendation, float64)
}

// Approver decides whether a recommendation may be applied
type Approver interface {
	Approve(bucket string, rec model.Recommendation) bool
}
