package gcsstorage

import (
	"context"

	"github.com/elC0mpa/gcs-doctor/model"
	storage "google.golang.org/api/storage/v1"
)

type service struct {
	projectID     string
	storageClient *storage.Service
}

type StorageService interface {
	// Generic interface methods (implements service.StorageService)
	ListBuckets(ctx context.Context) ([]model.BucketInfo, error)
	ListObjects(ctx context.Context, bucket string) ([]model.ObjectInfo, error)
	GetBucket(ctx context.Context, bucket string) (*model.BucketInfo, error)
	SetStorageClass(ctx context.Context, bucket string, tier model.StorageTier) error
	SetLifecyclePolicy(ctx context.Context, bucket string, rules []model.LifecycleRule) error
}
