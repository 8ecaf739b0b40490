package gcsstorage

import (
	"testing"
	"time"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage "google.golang.org/api/storage/v1"
)

func TestToBucketInfo(t *testing.T) {
	info := toBucketInfo(&storage.Bucket{
		Name:         "data-lake",
		Location:     "EU",
		StorageClass: "STANDARD",
		Versioning:   &storage.BucketVersioning{Enabled: true},
	})

	assert.Equal(t, model.BucketInfo{
		Name:              "data-lake",
		Location:          "EU",
		StorageClass:      model.TierStandard,
		VersioningEnabled: true,
	}, info)
}

func TestToBucketInfoWithoutVersioning(t *testing.T) {
	info := toBucketInfo(&storage.Bucket{Name: "plain"})

	assert.False(t, info.VersioningEnabled)
}

func TestToObjectInfo(t *testing.T) {
	object := toObjectInfo(&storage.Object{
		Name:         "backup.tar",
		Size:         1 << 30,
		StorageClass: "NEARLINE",
		TimeCreated:  "2024-03-01T10:30:00Z",
	})

	assert.Equal(t, "backup.tar", object.Name)
	assert.Equal(t, int64(1<<30), object.SizeBytes)
	assert.Equal(t, model.TierNearline, object.StorageClass)
	require.NotNil(t, object.Created)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), object.Created.UTC())
}

func TestToObjectInfoWithoutTimestamp(t *testing.T) {
	object := toObjectInfo(&storage.Object{Name: "undated.bin", Size: 42})

	assert.Nil(t, object.Created)
}

func TestToObjectInfoWithGarbageTimestamp(t *testing.T) {
	object := toObjectInfo(&storage.Object{Name: "weird.bin", TimeCreated: "yesterday"})

	assert.Nil(t, object.Created)
}
