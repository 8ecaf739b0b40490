package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/gcs-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawSavingsChart renders the estimated monthly savings per bucket,
// hottest savings first in the palette
func DrawSavingsChart(projectID string, snapshots []model.BucketSnapshot) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📉 MONTHLY SAVINGS BY BUCKET"))
	fmt.Printf(" Project: %s\n", text.FgBlue.Sprint(projectID))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(130, 20)

	indexedColors := assignRankedColors(snapshots)

	for idx, snapshot := range snapshots {
		data := barchart.BarData{
			Label: fmt.Sprintf("%s: $%.2f", snapshot.Name, snapshot.Savings),
			Values: []barchart.BarValue{
				{
					Value: snapshot.Savings,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func assignRankedColors(snapshots []model.BucketSnapshot) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type savingsWithIndex struct {
		index int
		value float64
	}

	savingsToSort := make([]savingsWithIndex, len(snapshots))
	for i, snapshot := range snapshots {
		savingsToSort[i] = savingsWithIndex{
			index: i,
			value: snapshot.Savings,
		}
	}

	sort.Slice(savingsToSort, func(i, j int) bool {
		return savingsToSort[i].value > savingsToSort[j].value
	})

	resultColors := make([]string, len(snapshots))
	for rank, sortedSavings := range savingsToSort {
		originalIndex := sortedSavings.index
		if rank < len(palette) {
			resultColors[originalIndex] = palette[rank]
		}
	}

	return resultColors
}
