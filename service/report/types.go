package report

import (
	"time"

	"github.com/elC0mpa/gcs-doctor/model"
)

type service struct{}

type ReportService interface {
	Build(projectID string, generatedAt time.Time, snapshots []model.BucketSnapshot) *model.AnalysisReport
	Export(report *model.AnalysisReport, path string) error
	Parse(data []byte) (*model.AnalysisReport, error)
}

// costFloor guards the savings-percent division for empty buckets
const costFloor = 0.01
