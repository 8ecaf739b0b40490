package utils

import (
	"fmt"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawRecommendationList prints the per-bucket recommendation details
// below the summary table
func DrawRecommendationList(report *model.AnalysisReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🩺 DETAILED RECOMMENDATIONS"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	for _, snapshot := range report.Buckets {
		if len(snapshot.Recommendations) == 0 {
			fmt.Printf("\n Bucket: %s - %s\n", text.FgHiCyan.Sprint(snapshot.Name), "No optimization recommendations")
			continue
		}

		fmt.Printf("\n Bucket: %s\n", text.FgHiCyan.Sprint(snapshot.Name))
		for i, recommendation := range snapshot.Recommendations {
			fmt.Printf("   %d. %s\n", i+1, text.FgGreen.Sprint(recommendation.Action))
			fmt.Printf("      %s\n", recommendation.Details)
			if recommendation.Savings > 0 {
				fmt.Printf("      Estimated savings: %s\n", text.FgHiGreen.Sprintf("$%.2f/month", recommendation.Savings))
			}
		}
	}
}
