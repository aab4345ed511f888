package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("241") // Gray
	colorSuccess   = lipgloss.Color("42")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorError     = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			MarginBottom(1)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	mutedItemStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// Progress bar styles
	barFull = lipgloss.NewStyle().
		Foreground(colorSuccess).
		SetString("█")

	barEmpty = lipgloss.NewStyle().
			Foreground(colorMuted).
			SetString("░")

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Modal box for the conflict decision
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(1, 2)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				MarginTop(1).
				MarginBottom(1)
)

// StageIcon returns the icon for a pipeline stage state
func StageIcon(state model.StageState) string {
	switch state {
	case model.StageCompleted:
		return successStyle.Render("✓")
	case model.StageInProgress:
		return warningStyle.Render("◐")
	case model.StageFailed:
		return errorStyle.Render("✗")
	default:
		return mutedItemStyle.Render("○")
	}
}

// LifecycleIcon returns the icon for a job's lifecycle status
func LifecycleIcon(status model.LifecycleStatus) string {
	switch status {
	case model.JobCompleted:
		return successStyle.Render("✓")
	case model.JobProcessing, model.JobSubmitted:
		return warningStyle.Render("●")
	case model.JobFailed:
		return errorStyle.Render("✗")
	default:
		return mutedItemStyle.Render("○")
	}
}

func lifecycleStyle(status model.LifecycleStatus) lipgloss.Style {
	switch status {
	case model.JobCompleted:
		return successStyle
	case model.JobFailed:
		return errorStyle
	case model.JobProcessing, model.JobSubmitted:
		return warningStyle
	default:
		return mutedItemStyle
	}
}

// RenderBar creates a progress bar
func RenderBar(filled, total, width int) string {
	if total == 0 {
		return ""
	}
	filledWidth := (filled * width) / total
	if filledWidth > width {
		filledWidth = width
	}

	bar := ""
	for i := 0; i < filledWidth; i++ {
		bar += barFull.String()
	}
	for i := filledWidth; i < width; i++ {
		bar += barEmpty.String()
	}
	return bar
}
