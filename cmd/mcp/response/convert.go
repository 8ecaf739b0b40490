package response

import "github.com/elC0mpa/gcs-doctor/model"

// ConvertSnapshot converts model.BucketSnapshot to response.BucketSnapshot
func ConvertSnapshot(snapshot *model.BucketSnapshot) *BucketSnapshot {
	if snapshot == nil {
		return nil
	}

	recommendations := make([]Recommendation, 0, len(snapshot.Recommendations))
	for _, recommendation := range snapshot.Recommendations {
		recommendations = append(recommendations, ConvertRecommendation(recommendation))
	}

	return &BucketSnapshot{
		Name:         snapshot.Name,
		Location:     snapshot.Location,
		StorageClass: string(snapshot.StorageClass),
		SizeGB:       snapshot.SizeGB(),
		ObjectCount:  snapshot.ObjectCount,
		AgeCohorts: AgeCohorts{
			Recent: snapshot.AgeCohorts.Recent,
			Medium: snapshot.AgeCohorts.Medium,
			Rare:   snapshot.AgeCohorts.Rare,
			Cold:   snapshot.AgeCohorts.Cold,
		},
		CurrentCost:     snapshot.CurrentCost,
		OptimizedCost:   snapshot.OptimizedCost,
		Savings:         snapshot.Savings,
		Recommendations: recommendations,
	}
}

// ConvertRecommendation converts model.Recommendation to response.Recommendation
func ConvertRecommendation(recommendation model.Recommendation) Recommendation {
	return Recommendation{
		Type:    string(recommendation.Kind),
		Action:  recommendation.Action,
		Savings: recommendation.Savings,
		Details: recommendation.Details,
	}
}

// ConvertReport converts model.AnalysisReport to response.AnalysisReport
func ConvertReport(report *model.AnalysisReport) *AnalysisReport {
	if report == nil {
		return nil
	}

	buckets := make([]BucketSnapshot, 0, len(report.Buckets))
	for i := range report.Buckets {
		buckets = append(buckets, *ConvertSnapshot(&report.Buckets[i]))
	}

	return &AnalysisReport{
		ProjectID:   report.ProjectID,
		GeneratedAt: report.GeneratedAt,
		Summary: Summary{
			TotalBuckets:       report.Summary.TotalBuckets,
			TotalCurrentCost:   report.Summary.TotalCurrentCost,
			TotalOptimizedCost: report.Summary.TotalOptimizedCost,
			TotalSavings:       report.Summary.TotalSavings,
			SavingsPercent:     report.Summary.SavingsPercent,
		},
		Buckets: buckets,
	}
}
