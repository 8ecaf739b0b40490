package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// savingsPercentFloor avoids NaN percentages for empty buckets
const savingsPercentFloor = 0.01

func DrawSummaryTable(report *model.AnalysisReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💰 STORAGE COST OPTIMIZATION REPORT"))
	fmt.Printf(" Project: %s\n", text.FgBlue.Sprint(report.ProjectID))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Bucket", "Storage Class", "Size", "Objects", "Current Cost", "Optimized Cost", "Savings", "Savings %"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, snapshot := range report.Buckets {
		percent := snapshot.Savings / max(snapshot.CurrentCost, savingsPercentFloor) * 100

		name := snapshot.Name
		savingsStr := fmt.Sprintf("$%.2f", snapshot.Savings)
		percentStr := fmt.Sprintf("%.1f%%", percent)
		if snapshot.Savings > 0 {
			name = text.FgGreen.Sprint(snapshot.Name)
			savingsStr = text.FgHiGreen.Sprint(savingsStr)
			percentStr = text.FgHiGreen.Sprint(percentStr)
		}

		tw.AppendRow(table.Row{
			name,
			snapshot.StorageClass,
			fmt.Sprintf("%.2f GB", snapshot.SizeGB()),
			snapshot.ObjectCount,
			fmt.Sprintf("$%.2f", snapshot.CurrentCost),
			fmt.Sprintf("$%.2f", snapshot.OptimizedCost),
			savingsStr,
			percentStr,
		})
	}

	tw.AppendSeparator()
	tw.AppendRow(table.Row{
		text.FgHiWhite.Sprint("TOTAL"),
		"",
		"",
		"",
		fmt.Sprintf("$%.2f", report.Summary.TotalCurrentCost),
		fmt.Sprintf("$%.2f", report.Summary.TotalOptimizedCost),
		text.FgHiGreen.Sprintf("$%.2f", report.Summary.TotalSavings),
		text.FgHiGreen.Sprintf("%.1f%%", report.Summary.SavingsPercent),
	})

	tw.Render()

	fmt.Printf("\n Total Current Monthly Cost: %s\n", text.FgHiYellow.Sprintf("$%.2f", report.Summary.TotalCurrentCost))
	fmt.Printf(" Total Optimized Monthly Cost: %s\n", text.FgHiGreen.Sprintf("$%.2f", report.Summary.TotalOptimizedCost))
	fmt.Printf(" Total Monthly Savings: %s\n", text.FgHiGreen.Sprintf("$%.2f (%.1f%%)", report.Summary.TotalSavings, report.Summary.SavingsPercent))
}
