package gcsstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/gcs-doctor/model"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

func NewService(ctx context.Context, projectID string, opts ...option.ClientOption) (*service, error) {
	storageClient, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}

	return &service{
		projectID:     projectID,
		storageClient: storageClient,
	}, nil
}

// ListBuckets implements service.StorageService
// Returns all buckets in the project in API order
func (s *service) ListBuckets(ctx context.Context) ([]model.BucketInfo, error) {
	var buckets []model.BucketInfo

	err := s.storageClient.Buckets.List(s.projectID).Pages(ctx, func(page *storage.Buckets) error {
		for _, bucket := range page.Items {
			buckets = append(buckets, toBucketInfo(bucket))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	return buckets, nil
}

// ListObjects implements service.StorageService
// Returns every object in the bucket with size, creation time and class
func (s *service) ListObjects(ctx context.Context, bucket string) ([]model.ObjectInfo, error) {
	var objects []model.ObjectInfo

	err := s.storageClient.Objects.List(bucket).Pages(ctx, func(page *storage.Objects) error {
		for _, object := range page.Items {
			objects = append(objects, toObjectInfo(object))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects in bucket %s: %w", bucket, err)
	}

	return objects, nil
}

// GetBucket implements service.StorageService
func (s *service) GetBucket(ctx context.Context, bucket string) (*model.BucketInfo, error) {
	raw, err := s.storageClient.Buckets.Get(bucket).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket %s: %w", bucket, err)
	}

	info := toBucketInfo(raw)
	return &info, nil
}

// SetStorageClass implements service.StorageService
// Patches the bucket's default storage class
func (s *service) SetStorageClass(ctx context.Context, bucket string, tier model.StorageTier) error {
	_, err := s.storageClient.Buckets.Patch(bucket, &storage.Bucket{
		StorageClass: string(tier),
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to patch storage class of bucket %s: %w", bucket, err)
	}

	return nil
}

// SetLifecyclePolicy implements service.StorageService
// Replaces the bucket's lifecycle configuration with the given rules
func (s *service) SetLifecyclePolicy(ctx context.Context, bucket string, rules []model.LifecycleRule) error {
	lifecycleRules := make([]*storage.BucketLifecycleRule, 0, len(rules))
	for _, rule := range rules {
		lifecycleRules = append(lifecycleRules, &storage.BucketLifecycleRule{
			Action: &storage.BucketLifecycleRuleAction{
				Type:         "SetStorageClass",
				StorageClass: string(rule.TargetTier),
			},
			Condition: &storage.BucketLifecycleRuleCondition{
				Age: googleapi.Int64(rule.AgeDays),
			},
		})
	}

	_, err := s.storageClient.Buckets.Patch(bucket, &storage.Bucket{
		Lifecycle: &storage.BucketLifecycle{Rule: lifecycleRules},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to patch lifecycle rules of bucket %s: %w", bucket, err)
	}

	return nil
}

func toBucketInfo(bucket *storage.Bucket) model.BucketInfo {
	return model.BucketInfo{
		Name:              bucket.Name,
		Location:          bucket.Location,
		StorageClass:      model.StorageTier(bucket.StorageClass),
		VersioningEnabled: bucket.Versioning != nil && bucket.Versioning.Enabled,
	}
}

func toObjectInfo(object *storage.Object) model.ObjectInfo {
	info := model.ObjectInfo{
		Name:         object.Name,
		SizeBytes:    int64(object.Size),
		StorageClass: model.StorageTier(object.StorageClass),
	}

	// Objects without a parseable creation timestamp stay out of the
	// age cohorts entirely
	if object.TimeCreated != "" {
		if created, err := time.Parse(time.RFC3339, object.TimeCreated); err == nil {
			info.Created = &created
		}
	}

	return info
}
