package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updatePicker forwards non-key messages the file picker needs to work,
// such as its directory read results
func (a *App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)

	if didSelect, path := a.picker.DidSelectFile(msg); didSelect {
		a.addPending(path)
	}
	return a, cmd
}

func (a *App) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.uploading {
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.pending = nil
		a.currentView = ViewJobs
		return a, nil

	case "u":
		if len(a.pending) == 0 {
			return a, nil
		}
		a.uploading = true
		a.currentView = ViewJobs
		a.notice = ""
		return a, a.submitNext(a.pending)
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)

	if didSelect, path := a.picker.DidSelectFile(msg); didSelect {
		a.addPending(path)
	}
	// Non-PDF files are disabled by the picker's type filter and selecting
	// them is silently ignored
	return a, cmd
}

// addPending adds a picked file to the selection once
func (a *App) addPending(path string) {
	for _, p := range a.pending {
		if p == path {
			return
		}
	}
	a.pending = append(a.pending, path)
}

func (a *App) renderPicker() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select documents"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("PDF files only"))
	b.WriteString("\n")
	b.WriteString(a.picker.View())
	b.WriteString("\n")

	if len(a.pending) > 0 {
		b.WriteString(sectionHeaderStyle.Render("SELECTED"))
		b.WriteString("\n")
		for _, p := range a.pending {
			b.WriteString(fmt.Sprintf("  %s %s\n", successStyle.Render("+"), filepath.Base(p)))
		}
	}

	b.WriteString(helpStyle.Render("[Enter] Add file  [u] Upload selection  [Esc] Cancel"))
	return b.String()
}
