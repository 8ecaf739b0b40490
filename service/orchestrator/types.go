package orchestrator

import (
	"context"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service/analyzer"
	"github.com/elC0mpa/gcs-doctor/service/apply"
	"github.com/elC0mpa/gcs-doctor/service/report"
)

type orchestratorService struct {
	projectID       string
	analyzerService analyzer.AnalyzerService
	reportService   report.ReportService
	applyService    apply.ApplyService
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
}
