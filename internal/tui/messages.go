package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
	"github.com/akadeepesh/legal-processor-frontend/internal/upload"
)

// JobsUpdatedMsg signals that the store changed outside the Update loop,
// typically after the reconciler merged a snapshot. Sent into the program
// via tea.Program.Send.
type JobsUpdatedMsg struct{}

// fileSubmittedMsg is sent after each file in a batch settles
type fileSubmittedMsg struct {
	result    upload.FileResult
	remaining []string
}

// reprocessDoneMsg is sent when a reprocess request settles
type reprocessDoneMsg struct {
	record model.JobRecord
	err    error
}

// clearDoneMsg is sent when the remote clear-completed call settles
type clearDoneMsg struct {
	err error
}

// refreshDoneMsg is sent after a manually requested fetch
type refreshDoneMsg struct {
	err error
}

// submitNext submits the head of the selection and reports the tail.
// Chaining one command per file keeps the batch strictly sequential while
// poll merges interleave freely on the event loop.
func (a *App) submitNext(paths []string) tea.Cmd {
	if len(paths) == 0 {
		return nil
	}
	return func() tea.Msg {
		result := a.controller.SubmitOne(context.Background(), paths[0])
		return fileSubmittedMsg{result: result, remaining: paths[1:]}
	}
}

func (a *App) reprocessCmd(filename string) tea.Cmd {
	return func() tea.Msg {
		rec, err := a.controller.Reprocess(context.Background(), filename)
		return reprocessDoneMsg{record: rec, err: err}
	}
}

func (a *App) clearCompletedCmd() tea.Cmd {
	return func() tea.Msg {
		return clearDoneMsg{err: a.client.ClearCompleted(context.Background())}
	}
}

func (a *App) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: a.reconciler.FetchNow(context.Background())}
	}
}
