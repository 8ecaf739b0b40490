package model

import "time"

// BucketInfo represents bucket metadata as returned by the storage API
type BucketInfo struct {
	Name              string
	Location          string
	StorageClass      StorageTier
	VersioningEnabled bool
}

// ObjectInfo represents a single object inside a bucket.
// Created is nil when the API returned no creation timestamp.
type ObjectInfo struct {
	Name         string
	SizeBytes    int64
	Created      *time.Time
	StorageClass StorageTier
}

// AgeCohortCounts buckets a bucket's objects by age relative to the
// analysis time. Objects without a creation timestamp are counted nowhere.
type AgeCohortCounts struct {
	Recent int64 `json:"recent"` // < 30 days
	Medium int64 `json:"medium"` // 30-90 days
	Rare   int64 `json:"rare"`   // 90-365 days
	Cold   int64 `json:"cold"`   // >= 365 days
}

// Total returns the number of objects that fell into a cohort
func (c AgeCohortCounts) Total() int64 {
	return c.Recent + c.Medium + c.Rare + c.Cold
}

// BucketSnapshot is the per-bucket analysis result for a single run
type BucketSnapshot struct {
	Name            string           `json:"name"`
	Location        string           `json:"location"`
	StorageClass    StorageTier      `json:"storage_class"`
	SizeBytes       int64            `json:"size_bytes"`
	ObjectCount     int64            `json:"object_count"`
	AgeCohorts      AgeCohortCounts  `json:"access_frequency"`
	CurrentCost     float64          `json:"current_cost"`
	Recommendations []Recommendation `json:"recommendations"`
	OptimizedCost   float64          `json:"optimized_cost"`
	Savings         float64          `json:"savings"`
}

// SizeGB returns the bucket size in gibibytes
func (s *BucketSnapshot) SizeGB() float64 {
	return float64(s.SizeBytes) / (1 << 30)
}

// LifecycleRule transitions objects older than AgeDays to TargetTier
type LifecycleRule struct {
	AgeDays    int64
	TargetTier StorageTier
}
