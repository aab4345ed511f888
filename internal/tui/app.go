package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
	"github.com/akadeepesh/legal-processor-frontend/internal/reconcile"
	"github.com/akadeepesh/legal-processor-frontend/internal/store"
	"github.com/akadeepesh/legal-processor-frontend/internal/upload"
)

// View represents the current view
type View int

const (
	ViewJobs View = iota
	ViewPicker
	ViewDetail
	ViewConflict
)

// Remote is the slice of the API client the app drives directly
type Remote interface {
	ClearCompleted(ctx context.Context) error
}

// App is the main application model. Its Update loop is the single place
// that reacts to submission, poll and user events, so every store mutation
// is driven by one typed message at a time.
type App struct {
	store      *store.Store
	controller *upload.Controller
	reconciler *reconcile.Reconciler
	client     Remote

	currentView View
	cursor      int
	records     []model.JobRecord
	selectedID  model.JobID

	picker    filepicker.Model
	pending   []string // selected files not yet submitted
	uploading bool

	conflict conflictFlow

	spin   spinner.Model
	notice string

	width  int
	height int
}

// NewApp creates a new application instance
func NewApp(s *store.Store, controller *upload.Controller, reconciler *reconcile.Reconciler, client Remote) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = warningStyle

	return &App{
		store:       s,
		controller:  controller,
		reconciler:  reconciler,
		client:      client,
		currentView: ViewJobs,
		picker:      newPicker(),
		spin:        sp,
	}
}

func newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf"}
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	return fp
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.spin.Tick
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.Height = msg.Height - 6
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case JobsUpdatedMsg:
		a.refreshRecords()
		return a, nil

	case fileSubmittedMsg:
		return a.handleFileSubmitted(msg)

	case reprocessDoneMsg:
		return a.handleReprocessDone(msg)

	case clearDoneMsg:
		if msg.err != nil {
			// Local state stays untouched when the remote refused
			a.notice = errorStyle.Render("Clear failed: " + msg.err.Error())
			return a, nil
		}
		a.store.RemoveCompleted()
		a.refreshRecords()
		a.notice = ""
		return a, nil

	case refreshDoneMsg:
		if msg.err == nil {
			a.refreshRecords()
		}
		a.reconciler.Poke()
		return a, nil
	}

	if a.currentView == ViewPicker {
		return a.updatePicker(msg)
	}
	return a, nil
}

// handleKeyPress handles keyboard input
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case ViewJobs:
		return a.handleJobsKey(msg)
	case ViewPicker:
		return a.handlePickerKey(msg)
	case ViewDetail:
		return a.handleDetailKey(msg)
	case ViewConflict:
		return a.handleConflictKey(msg)
	}
	return a, nil
}

func (a *App) handleJobsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "a":
		a.currentView = ViewPicker
		a.notice = ""
		return a, a.picker.Init()

	case "r":
		return a, a.refreshCmd()

	case "c":
		if len(a.completed()) == 0 {
			return a, nil
		}
		return a, a.clearCompletedCmd()

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "down", "j":
		if a.cursor < len(a.records)-1 {
			a.cursor++
		}
		return a, nil

	case "enter":
		if a.cursor < len(a.records) {
			a.selectedID = a.records[a.cursor].ID
			a.currentView = ViewDetail
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.currentView = ViewJobs
		return a, nil
	case "r":
		return a, a.refreshCmd()
	}
	return a, nil
}

// handleFileSubmitted advances a running batch by one file
func (a *App) handleFileSubmitted(msg fileSubmittedMsg) (tea.Model, tea.Cmd) {
	a.refreshRecords()
	a.reconciler.Poke()

	if msg.result.Outcome == upload.OutcomeConflict {
		a.conflict.push(msg.result.Conflict)
	}

	if len(msg.remaining) > 0 {
		return a, a.submitNext(msg.remaining)
	}

	// Batch done: drop the selection and reset the picker input
	a.uploading = false
	a.pending = nil
	a.picker = newPicker()
	a.picker.Height = a.height - 6

	a.maybeShowConflict()
	return a, nil
}

// refreshRecords re-reads the store; the copy is what views render
func (a *App) refreshRecords() {
	a.records = a.store.Records()
	if a.cursor >= len(a.records) {
		a.cursor = len(a.records) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) completed() []model.CompletedJobSummary {
	return a.store.Completed()
}

func (a *App) selectedRecord() (model.JobRecord, bool) {
	for _, rec := range a.records {
		if rec.ID == a.selectedID {
			return rec, true
		}
	}
	return model.JobRecord{}, false
}

// View implements tea.Model
func (a *App) View() string {
	switch a.currentView {
	case ViewJobs:
		return a.renderJobs()
	case ViewPicker:
		return a.renderPicker()
	case ViewDetail:
		return a.renderDetail()
	case ViewConflict:
		return a.renderConflict()
	default:
		return "Unknown view"
	}
}
