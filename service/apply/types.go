package apply

import (
	"context"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service"
	"github.com/rs/zerolog"
)

type applyService struct {
	storageService service.StorageService
	approver       service.Approver
	log            zerolog.Logger
}

type ApplyService interface {
	Apply(ctx context.Context, snapshots []model.BucketSnapshot)
}
