package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elC0mpa/gcs-doctor/cmd/mcp/response"
	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/elC0mpa/gcs-doctor/service/analyzer"
	gcsconfig "github.com/elC0mpa/gcs-doctor/service/gcs/config"
	gcsstorage "github.com/elC0mpa/gcs-doctor/service/gcs/storage"
	"github.com/elC0mpa/gcs-doctor/service/pricing"
	"github.com/elC0mpa/gcs-doctor/service/recommend"
	"github.com/elC0mpa/gcs-doctor/service/report"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterStorageTools registers all GCS analysis tools with the MCP server.
// All tools are read-only; applying recommendations stays behind the
// interactive CLI.
func RegisterStorageTools(s *server.MCPServer, projectID, credentialsPath string) {
	// Full analysis report
	s.AddTool(
		mcp.NewTool("gcs_analyze_storage",
			mcp.WithDescription("Analyze all GCS buckets in the project: size, age cohorts, current/optimized monthly cost and optimization recommendations. Requires GCP_PROJECT_ID environment variable."),
		),
		makeAnalyzeStorageHandler(projectID, credentialsPath),
	)

	// Summary only
	s.AddTool(
		mcp.NewTool("gcs_get_summary",
			mcp.WithDescription("Get project-wide storage cost totals: current cost, optimized cost, savings and savings percent. Requires GCP_PROJECT_ID."),
		),
		makeSummaryHandler(projectID, credentialsPath),
	)

	// Recommendations across buckets
	s.AddTool(
		mcp.NewTool("gcs_get_recommendations",
			mcp.WithDescription("List cost optimization recommendations (storage class changes, lifecycle policies, versioning reviews) for every bucket that has any. Requires GCP_PROJECT_ID."),
		),
		makeRecommendationsHandler(projectID, credentialsPath),
	)

	// Single bucket snapshot
	s.AddTool(
		mcp.NewTool("gcs_get_bucket_snapshot",
			mcp.WithDescription("Analyze a single GCS bucket: size, object count, age cohorts, costs and recommendations. Requires GCP_PROJECT_ID."),
			mcp.WithString("bucket",
				mcp.Required(),
				mcp.Description("Name of the bucket to analyze"),
			),
		),
		makeBucketSnapshotHandler(projectID, credentialsPath),
	)
}

func makeAnalyzeStorageHandler(projectID, credentialsPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		analysisReport, errResult := runAnalysis(ctx, projectID, credentialsPath)
		if errResult != nil {
			return errResult, nil
		}

		resp := response.ConvertReport(analysisReport)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeSummaryHandler(projectID, credentialsPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		analysisReport, errResult := runAnalysis(ctx, projectID, credentialsPath)
		if errResult != nil {
			return errResult, nil
		}

		resp := response.ConvertReport(analysisReport)
		data, _ := json.MarshalIndent(resp.Summary, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRecommendationsHandler(projectID, credentialsPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		analysisReport, errResult := runAnalysis(ctx, projectID, credentialsPath)
		if errResult != nil {
			return errResult, nil
		}

		var buckets []response.BucketRecommendations
		for _, snapshot := range analysisReport.Buckets {
			if len(snapshot.Recommendations) == 0 {
				continue
			}

			recommendations := make([]response.Recommendation, 0, len(snapshot.Recommendations))
			for _, recommendation := range snapshot.Recommendations {
				recommendations = append(recommendations, response.ConvertRecommendation(recommendation))
			}

			buckets = append(buckets, response.BucketRecommendations{
				Bucket:          snapshot.Name,
				Recommendations: recommendations,
			})
		}

		data, _ := json.MarshalIndent(buckets, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeBucketSnapshotHandler(projectID, credentialsPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if projectID == "" {
			return mcp.NewToolResultError("GCP_PROJECT_ID environment variable is required"), nil
		}

		bucket, err := request.RequireString("bucket")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		storageService, analyzerService, errResult := buildServices(ctx, projectID, credentialsPath)
		if errResult != nil {
			return errResult, nil
		}

		info, err := storageService.GetBucket(ctx, bucket)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get bucket: %v", err)), nil
		}

		snapshot, err := analyzerService.AnalyzeBucket(ctx, *info)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze bucket: %v", err)), nil
		}

		pricingService := pricing.NewService()
		recommendService := recommend.NewService(pricingService)
		snapshot.Recommendations, snapshot.OptimizedCost = recommendService.Recommend(snapshot)
		snapshot.Savings = snapshot.CurrentCost - snapshot.OptimizedCost

		resp := response.ConvertSnapshot(snapshot)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func runAnalysis(ctx context.Context, projectID, credentialsPath string) (*model.AnalysisReport, *mcp.CallToolResult) {
	if projectID == "" {
		return nil, mcp.NewToolResultError("GCP_PROJECT_ID environment variable is required")
	}

	_, analyzerService, errResult := buildServices(ctx, projectID, credentialsPath)
	if errResult != nil {
		return nil, errResult
	}

	snapshots, err := analyzerService.AnalyzeProject(ctx)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("Failed to analyze storage: %v", err))
	}

	return report.NewService().Build(projectID, time.Now().UTC(), snapshots), nil
}

func buildServices(ctx context.Context, projectID, credentialsPath string) (gcsstorage.StorageService, analyzer.AnalyzerService, *mcp.CallToolResult) {
	cfgService := gcsconfig.NewService(projectID, credentialsPath)
	opts, err := cfgService.GetClientOptions(ctx)
	if err != nil {
		return nil, nil, mcp.NewToolResultError(fmt.Sprintf("Failed to resolve credentials: %v", err))
	}

	storageService, err := gcsstorage.NewService(ctx, projectID, opts...)
	if err != nil {
		return nil, nil, mcp.NewToolResultError(fmt.Sprintf("Failed to create storage service: %v", err))
	}

	pricingService := pricing.NewService()
	recommendService := recommend.NewService(pricingService)
	analyzerService := analyzer.NewService(storageService, pricingService, recommendService)

	return storageService, analyzerService, nil
}
