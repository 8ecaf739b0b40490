package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service/analyzer"
	"github.com/elC0mpa/gcs-doctor/service/apply"
	"github.com/elC0mpa/gcs-doctor/service/report"
	"github.com/elC0mpa/gcs-doctor/utils"
)

func NewService(projectID string, analyzerService analyzer.AnalyzerService, reportService report.ReportService, applyService apply.ApplyService) *orchestratorService {
	return &orchestratorService{
		projectID:       projectID,
		analyzerService: analyzerService,
		reportService:   reportService,
		applyService:    applyService,
	}
}

func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags) error {
	snapshots, err := s.analyzerService.AnalyzeProject(ctx)
	if err != nil {
		utils.StopSpinner()
		return err
	}

	analysisReport := s.reportService.Build(s.projectID, time.Now().UTC(), snapshots)

	utils.StopSpinner()

	if len(snapshots) == 0 {
		fmt.Println("No buckets found in this project.")
	} else {
		utils.DrawSummaryTable(analysisReport)
		utils.DrawRecommendationList(analysisReport)

		if flags.Chart {
			utils.DrawSavingsChart(s.projectID, snapshots)
		}
	}

	if flags.Apply {
		s.applyService.Apply(ctx, snapshots)
	}

	if flags.Export != "" {
		if err := s.reportService.Export(analysisReport, flags.Export); err != nil {
			return err
		}
		fmt.Printf("\nReport exported to %s\n", flags.Export)
	}

	return nil
}
