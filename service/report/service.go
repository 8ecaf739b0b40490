package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/elC0mpa/gcs-doctor/model"
)

func NewService() *service {
	return &service{}
}

// Build folds the analyzed snapshots into a report with project-wide
// totals, summed in scan order.
func (s *service) Build(projectID string, generatedAt time.Time, snapshots []model.BucketSnapshot) *model.AnalysisReport {
	var totalCurrent, totalOptimized float64
	for _, snapshot := range snapshots {
		totalCurrent += snapshot.CurrentCost
		totalOptimized += snapshot.OptimizedCost
	}

	totalSavings := totalCurrent - totalOptimized

	return &model.AnalysisReport{
		ProjectID:   projectID,
		GeneratedAt: generatedAt.Format(time.RFC3339),
		Summary: model.ReportSummary{
			TotalBuckets:       len(snapshots),
			TotalCurrentCost:   totalCurrent,
			TotalOptimizedCost: totalOptimized,
			TotalSavings:       totalSavings,
			SavingsPercent:     SavingsPercent(totalCurrent, totalOptimized),
		},
		Buckets: snapshots,
	}
}

// Export writes the report as indented JSON
func (s *service) Export(report *model.AnalysisReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parse reads an exported report back
func (s *service) Parse(data []byte) (*model.AnalysisReport, error) {
	var report model.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SavingsPercent computes the saved share of the current cost, with a
// floor on the divisor so empty buckets report 0 instead of NaN
func SavingsPercent(current, optimized float64) float64 {
	return (current - optimized) / max(current, costFloor) * 100
}
