package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/gcs-doctor/service"
	"github.com/elC0mpa/gcs-doctor/service/analyzer"
	"github.com/elC0mpa/gcs-doctor/service/apply"
	"github.com/elC0mpa/gcs-doctor/service/flag"
	gcsconfig "github.com/elC0mpa/gcs-doctor/service/gcs/config"
	gcsstorage "github.com/elC0mpa/gcs-doctor/service/gcs/storage"
	"github.com/elC0mpa/gcs-doctor/service/orchestrator"
	"github.com/elC0mpa/gcs-doctor/service/pricing"
	"github.com/elC0mpa/gcs-doctor/service/recommend"
	"github.com/elC0mpa/gcs-doctor/service/report"
	"github.com/elC0mpa/gcs-doctor/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return err
	}

	utils.DrawBanner()
	utils.StartSpinner()

	ctx := context.Background()

	cfgService := gcsconfig.NewService(flags.Project, flags.Credentials)
	opts, err := cfgService.GetClientOptions(ctx)
	if err != nil {
		utils.StopSpinner()
		return err
	}

	storageService, err := gcsstorage.NewService(ctx, cfgService.GetProjectID(), opts...)
	if err != nil {
		utils.StopSpinner()
		return err
	}

	pricingService := pricing.NewService()
	recommendService := recommend.NewService(pricingService)
	analyzerService := analyzer.NewService(storageService, pricingService, recommendService)
	reportService := report.NewService()

	var approver service.Approver = apply.AutoApprover{}
	if !flags.AutoApprove {
		approver = apply.NewPromptApprover(os.Stdin, os.Stdout)
	}
	applyService := apply.NewService(storageService, approver)

	orchestratorService := orchestrator.NewService(flags.Project, analyzerService, reportService, applyService)

	return orchestratorService.Orchestrate(ctx, flags)
}
