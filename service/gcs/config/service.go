package gcsconfig

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

func NewService(projectID, credentialsPath string) *service {
	return &service{
		projectID:       projectID,
		credentialsPath: credentialsPath,
	}
}

// GetClientOptions resolves the credentials used by the storage client.
// An explicit service account file wins; otherwise Application Default
// Credentials are used:
// - GOOGLE_APPLICATION_CREDENTIALS environment variable
// - gcloud auth application-default login
// - Service account on GCE/Cloud Run/Cloud Functions
// ADC is validated here so a misconfigured environment fails before any
// bucket is touched.
func (s *service) GetClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if s.credentialsPath != "" {
		return []option.ClientOption{option.WithCredentialsFile(s.credentialsPath)}, nil
	}

	credentials, err := google.FindDefaultCredentials(ctx, storage.DevstorageFullControlScope)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Google credentials: %w", err)
	}

	return []option.ClientOption{option.WithCredentials(credentials)}, nil
}

func (s *service) GetProjectID() string {
	return s.projectID
}
