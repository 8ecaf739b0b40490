package gcsconfig

import (
	"context"

	"google.golang.org/api/option"
)

type service struct {
	projectID       string
	credentialsPath string
}

type ConfigService interface {
	GetClientOptions(ctx context.Context) ([]option.ClientOption, error)
	GetProjectID() string
}
