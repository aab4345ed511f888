package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
)

// conflictState tracks the decision flow for an "already processed" file
type conflictState int

const (
	conflictIdle conflictState = iota
	conflictAwaitingDecision
	conflictReprocessing
)

// conflictFlow queues conflicts raised during a batch and mediates the
// user decision for one at a time. The context for a conflict exists only
// between detection and decision; close and reprocess both discard it.
type conflictFlow struct {
	state   conflictState
	current *model.ConflictContext
	queue   []*model.ConflictContext
	err     string
}

func (f *conflictFlow) push(ctx *model.ConflictContext) {
	if ctx == nil {
		return
	}
	f.queue = append(f.queue, ctx)
}

// next promotes the next queued conflict, reporting whether one is showing
func (f *conflictFlow) next() bool {
	if f.state != conflictIdle || len(f.queue) == 0 {
		return false
	}
	f.current = f.queue[0]
	f.queue = f.queue[1:]
	f.state = conflictAwaitingDecision
	f.err = ""
	return true
}

// discard drops the current context and returns the flow to idle
func (f *conflictFlow) discard() {
	f.current = nil
	f.state = conflictIdle
}

// maybeShowConflict switches to the conflict modal if one is pending
func (a *App) maybeShowConflict() {
	if a.conflict.next() {
		a.currentView = ViewConflict
	}
}

func (a *App) handleConflictKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.conflict.state == conflictReprocessing {
		// Decision already made; wait for the request to settle
		return a, nil
	}

	switch msg.String() {
	case "esc", "n", "q":
		// Close: no store change, context discarded
		a.conflict.discard()
		a.currentView = ViewJobs
		a.maybeShowConflict()
		return a, nil

	case "y", "r":
		if a.conflict.current == nil {
			return a, nil
		}
		a.conflict.state = conflictReprocessing
		return a, a.reprocessCmd(a.conflict.current.Filename)
	}
	return a, nil
}

func (a *App) handleReprocessDone(msg reprocessDoneMsg) (tea.Model, tea.Cmd) {
	// The context is discarded whichever way the request settled
	a.conflict.discard()
	a.currentView = ViewJobs

	if msg.err != nil {
		a.notice = errorStyle.Render("Reprocess failed: " + msg.err.Error())
	} else {
		a.notice = ""
		a.refreshRecords()
		a.reconciler.Poke()
	}

	a.maybeShowConflict()
	return a, nil
}

func (a *App) renderConflict() string {
	ctx := a.conflict.current
	if ctx == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(warningStyle.Render("Already processed"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s has been fully processed before.\n", normalItemStyle.Render(ctx.Filename)))

	if len(ctx.ExistingFiles) > 0 {
		b.WriteString("\nExisting output:\n")
		for _, f := range ctx.ExistingFiles {
			b.WriteString(fmt.Sprintf("  • %s\n", f.Name))
			b.WriteString(mutedItemStyle.Render(fmt.Sprintf("    %s\n", f.URL)))
		}
	}

	b.WriteString("\n")
	if a.conflict.state == conflictReprocessing {
		b.WriteString(fmt.Sprintf("%s Requesting reprocess...\n", a.spin.View()))
	} else {
		b.WriteString("Process it again?\n")
		b.WriteString(helpStyle.Render("[y] Reprocess  [n] Keep existing output"))
	}

	modal := modalStyle.Render(b.String())
	if a.width > 0 && a.height > 0 {
		return centered(a.width, a.height, modal)
	}
	return modal
}
