package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
)

// renderStatusTable lays out the remote snapshot as a terminal table, one
// row per known file. The numeric columns are right-aligned.
func renderStatusTable(entries []model.SnapshotEntry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Status", "Stages", "Chunks", "Cost", "Delivered"})

	for _, e := range entries {
		cells := statusRow(e)
		row := make(table.Row, len(cells))
		for i, cell := range cells {
			row[i] = cell
		}
		tw.AppendRow(row)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	return tw.Render()
}

func statusRow(e model.SnapshotEntry) []string {
	completed := 0
	for _, s := range e.Stages {
		if s.State == model.StageCompleted {
			completed++
		}
	}

	chunks := ""
	if e.Output.TotalChunks > 0 {
		chunks = fmt.Sprintf("%d/%d", e.Output.SuccessfulChunks, e.Output.TotalChunks)
	}

	cost := ""
	if e.Output.Cost > 0 {
		cost = fmt.Sprintf("$%.4f", e.Output.Cost)
	}

	var delivered []string
	if e.Output.SharePoint.Uploaded {
		delivered = append(delivered, "sharepoint")
	}
	if e.Output.WordPress.Uploaded {
		delivered = append(delivered, "wordpress")
	}
	if e.Output.AzureBlob.Uploaded {
		delivered = append(delivered, "azure")
	}

	return []string{
		e.OriginalFile,
		string(e.Lifecycle),
		fmt.Sprintf("%d/%d", completed, len(model.Stages)),
		chunks,
		cost,
		strings.Join(delivered, ", "),
	}
}
