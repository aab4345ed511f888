package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
)

func (a *App) renderJobs() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Legal Processor"))
	b.WriteString("\n")

	active := 0
	for i := range a.records {
		if a.records[i].IsActive() {
			active++
		}
	}
	if active > 0 {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d job(s) in flight", active)))
	} else {
		b.WriteString(subtitleStyle.Render("No active jobs"))
	}
	b.WriteString("\n")

	if a.notice != "" {
		b.WriteString(a.notice)
		b.WriteString("\n\n")
	}

	if len(a.records) == 0 {
		b.WriteString(mutedItemStyle.Render("No documents tracked. Press [a] to add PDFs."))
		b.WriteString("\n")
	}

	for i, rec := range a.records {
		prefix := "  "
		nameStyle := normalItemStyle
		if i == a.cursor {
			prefix = "> "
			nameStyle = selectedItemStyle
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			prefix,
			a.recordIcon(&rec),
			nameStyle.Render(rec.DisplayName),
			a.recordSummary(&rec)))
	}

	completed := a.completed()
	if len(completed) > 0 {
		b.WriteString(sectionHeaderStyle.Render("COMPLETED"))
		b.WriteString("\n")
		for _, sum := range completed {
			b.WriteString(fmt.Sprintf("  %s %s%s\n",
				successStyle.Render("✓"),
				sum.DisplayName,
				mutedItemStyle.Render(chunkSummary(sum.Output))))
		}
	}

	b.WriteString(helpStyle.Render("[a] Add PDFs  [Enter] Detail  [c] Clear completed  [r] Refresh  [q] Quit"))
	return b.String()
}

// recordIcon renders the lifecycle marker, animating while a submission
// is still in flight
func (a *App) recordIcon(rec *model.JobRecord) string {
	if rec.Lifecycle == model.JobSubmitting {
		return a.spin.View()
	}
	return LifecycleIcon(rec.Lifecycle)
}

// recordSummary is the one-line state shown next to a job name
func (a *App) recordSummary(rec *model.JobRecord) string {
	switch rec.Lifecycle {
	case model.JobSubmitting:
		return mutedItemStyle.Render("uploading...")
	case model.JobSubmitted:
		return mutedItemStyle.Render("queued")
	case model.JobFailed:
		return errorStyle.Render(rec.ErrorMessage)
	case model.JobCompleted:
		return successStyle.Render("completed") + mutedItemStyle.Render(chunkSummary(rec.Output))
	default:
		return currentStageLabel(rec)
	}
}

// currentStageLabel names the furthest non-pending stage plus overall progress
func currentStageLabel(rec *model.JobRecord) string {
	label := "processing"
	for _, stage := range model.Stages {
		st := rec.StageFor(stage)
		if st.State == model.StageInProgress || st.State == model.StageFailed {
			label = st.Stage.DisplayName()
			break
		}
	}
	return warningStyle.Render(label) +
		mutedItemStyle.Render(fmt.Sprintf(" (%d/%d)", rec.CompletedStages(), len(model.Stages)))
}

// chunkSummary summarizes chunk counts and cost, empty when unknown
func chunkSummary(out model.OutputInfo) string {
	if out.TotalChunks == 0 {
		return ""
	}
	s := fmt.Sprintf("  %d/%d chunks", out.SuccessfulChunks, out.TotalChunks)
	if out.Cost > 0 {
		s += fmt.Sprintf(", $%.4f", out.Cost)
	}
	return s
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
