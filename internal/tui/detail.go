package tui

import (
	"fmt"
	"strings"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
)

// renderDetail renders the per-stage view for one job
func (a *App) renderDetail() string {
	rec, ok := a.selectedRecord()
	if !ok {
		a.currentView = ViewJobs
		return a.renderJobs()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(rec.DisplayName))
	b.WriteString("\n")
	b.WriteString(lifecycleStyle(rec.Lifecycle).Render(string(rec.Lifecycle)))
	b.WriteString(mutedItemStyle.Render("  submitted " + rec.SubmittedAt.Format("15:04:05")))
	b.WriteString("\n")

	if rec.ErrorMessage != "" {
		b.WriteString(errorStyle.Render(rec.ErrorMessage))
		b.WriteString("\n")
	}

	b.WriteString(sectionHeaderStyle.Render("PIPELINE"))
	b.WriteString("\n")

	for _, stage := range model.Stages {
		st := rec.StageFor(stage)
		line := fmt.Sprintf("  %s %s", StageIcon(st.State), stage.DisplayName())
		if st.Message != "" {
			line += mutedItemStyle.Render("  " + st.Message)
		}
		if st.ErrorDetail != "" {
			line += errorStyle.Render("  " + st.ErrorDetail)
		}
		if !st.UpdatedAt.IsZero() {
			line += mutedItemStyle.Render("  " + st.UpdatedAt.Format("15:04:05"))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if rec.Output.TotalChunks > 0 {
		b.WriteString(sectionHeaderStyle.Render("CHUNKS"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %d/%d",
			RenderBar(rec.Output.SuccessfulChunks, rec.Output.TotalChunks, 24),
			rec.Output.SuccessfulChunks, rec.Output.TotalChunks))
		if rec.Output.FailedChunks > 0 {
			b.WriteString(errorStyle.Render(fmt.Sprintf("  %d failed", rec.Output.FailedChunks)))
		}
		if rec.Output.Cost > 0 {
			b.WriteString(mutedItemStyle.Render(fmt.Sprintf("  $%.4f", rec.Output.Cost)))
		}
		b.WriteString("\n")
	}

	b.WriteString(renderDestinations(rec.Output))

	if len(rec.Output.OutputFiles) > 0 {
		b.WriteString(sectionHeaderStyle.Render("OUTPUT"))
		b.WriteString("\n")
		for _, f := range rec.Output.OutputFiles {
			b.WriteString(fmt.Sprintf("  • %s\n", f.Name))
			b.WriteString(mutedItemStyle.Render(fmt.Sprintf("    %s\n", f.URL)))
		}
	}

	b.WriteString(helpStyle.Render("[r] Refresh  [Esc] Back  [q] Quit"))
	return b.String()
}

func renderDestinations(out model.OutputInfo) string {
	destinations := []struct {
		name string
		dest model.DestinationUpload
	}{
		{"SharePoint", out.SharePoint},
		{"WordPress", out.WordPress},
		{"Azure Blob", out.AzureBlob},
	}

	any := false
	for _, d := range destinations {
		if d.dest.Uploaded || d.dest.URL != "" {
			any = true
			break
		}
	}
	if !any {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("DESTINATIONS"))
	b.WriteString("\n")
	for _, d := range destinations {
		if !d.dest.Uploaded && d.dest.URL == "" {
			continue
		}
		icon := mutedItemStyle.Render("○")
		if d.dest.Uploaded {
			icon = successStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  %s %s", icon, d.name))
		if d.dest.URL != "" {
			b.WriteString(mutedItemStyle.Render("  " + d.dest.URL))
		}
		b.WriteString("\n")
	}
	return b.String()
}
