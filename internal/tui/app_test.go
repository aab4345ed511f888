package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akadeepesh/legal-processor-frontend/internal/api"
	"github.com/akadeepesh/legal-processor-frontend/internal/model"
	"github.com/akadeepesh/legal-processor-frontend/internal/reconcile"
	"github.com/akadeepesh/legal-processor-frontend/internal/store"
	"github.com/akadeepesh/legal-processor-frontend/internal/upload"
)

type stubService struct {
	submit api.SubmitResult
	err    error
}

func (s *stubService) Submit(context.Context, string) (api.SubmitResult, error) {
	return s.submit, s.err
}

func (s *stubService) Reprocess(context.Context, string) (api.ReprocessResult, error) {
	return api.ReprocessResult{FileID: "srv-2", Filename: "contract.pdf"}, s.err
}

type stubRemote struct{ err error }

func (s *stubRemote) ClearCompleted(context.Context) error { return s.err }

type stubPoller struct{}

func (stubPoller) PollStatus(context.Context) ([]model.SnapshotEntry, error) { return nil, nil }

func newTestApp(svc upload.Service, remote Remote) (*App, *store.Store) {
	s := store.New()
	controller := upload.New(s, svc, nil)
	reconciler := reconcile.New(s, stubPoller{}, time.Hour, nil)
	return NewApp(s, controller, reconciler, remote), s
}

func TestConflictFlow_QueueAndDecision(t *testing.T) {
	var f conflictFlow

	f.push(&model.ConflictContext{Filename: "a.pdf"})
	f.push(&model.ConflictContext{Filename: "b.pdf"})

	if !f.next() {
		t.Fatal("next() = false, want conflict promoted")
	}
	if f.state != conflictAwaitingDecision {
		t.Errorf("state = %v, want awaiting decision", f.state)
	}
	if f.current.Filename != "a.pdf" {
		t.Errorf("current = %q, want a.pdf", f.current.Filename)
	}

	// A second conflict waits until the first is decided
	if f.next() {
		t.Error("next() promoted a second conflict while one is showing")
	}

	f.discard()
	if f.current != nil || f.state != conflictIdle {
		t.Error("discard() did not return flow to idle")
	}

	if !f.next() {
		t.Fatal("next() = false, want queued conflict promoted")
	}
	if f.current.Filename != "b.pdf" {
		t.Errorf("current = %q, want b.pdf", f.current.Filename)
	}
}

func TestHandleFileSubmitted_ConflictOpensModalAfterBatch(t *testing.T) {
	app, s := newTestApp(&stubService{}, &stubRemote{})

	conflict := &model.ConflictContext{Filename: "contract.pdf"}
	app.Update(fileSubmittedMsg{
		result: upload.FileResult{Outcome: upload.OutcomeConflict, Conflict: conflict},
	})

	if app.currentView != ViewConflict {
		t.Errorf("currentView = %v, want ViewConflict", app.currentView)
	}
	if app.conflict.current != conflict {
		t.Error("conflict context not promoted to the modal")
	}
	if s.Len() != 0 {
		t.Errorf("store has %d records, want 0 for a conflict", s.Len())
	}
}

func TestHandleFileSubmitted_ContinuesBatchBeforeModal(t *testing.T) {
	app, _ := newTestApp(&stubService{}, &stubRemote{})

	conflict := &model.ConflictContext{Filename: "contract.pdf"}
	_, cmd := app.Update(fileSubmittedMsg{
		result:    upload.FileResult{Outcome: upload.OutcomeConflict, Conflict: conflict},
		remaining: []string{"/x/next.pdf"},
	})

	if cmd == nil {
		t.Fatal("Update returned nil cmd, want next submission command")
	}
	// The modal waits for the batch to finish
	if app.currentView == ViewConflict {
		t.Error("conflict modal opened mid-batch")
	}
}

func TestClearDone_Success(t *testing.T) {
	app, s := newTestApp(&stubService{}, &stubRemote{})
	s.Insert(model.JobRecord{ID: model.ServerID("srv-1"), DisplayName: "a.pdf", Lifecycle: model.JobCompleted})
	s.Insert(model.JobRecord{ID: model.ServerID("srv-2"), DisplayName: "b.pdf", Lifecycle: model.JobProcessing})
	app.refreshRecords()

	app.Update(clearDoneMsg{})

	if s.Len() != 1 {
		t.Errorf("store has %d records after clear, want 1", s.Len())
	}
}

func TestClearDone_FailureLeavesStateUntouched(t *testing.T) {
	app, s := newTestApp(&stubService{}, &stubRemote{})
	s.Insert(model.JobRecord{ID: model.ServerID("srv-1"), DisplayName: "a.pdf", Lifecycle: model.JobCompleted})
	app.refreshRecords()

	app.Update(clearDoneMsg{err: errors.New("service down")})

	if s.Len() != 1 {
		t.Errorf("store has %d records after failed clear, want 1", s.Len())
	}
	if app.notice == "" {
		t.Error("failed clear did not surface a notice")
	}
}

func TestCurrentStageLabel(t *testing.T) {
	rec := &model.JobRecord{
		Lifecycle: model.JobProcessing,
		Stages: []model.StageStatus{
			{Stage: model.StageIngestOriginal, State: model.StageCompleted},
			{Stage: model.StageInitialize, State: model.StageCompleted},
			{Stage: model.StageExtractText, State: model.StageInProgress},
		},
	}

	got := currentStageLabel(rec)
	if !strings.Contains(got, "Extract text") {
		t.Errorf("currentStageLabel() = %q, want it to name the in-progress stage", got)
	}
	if !strings.Contains(got, "2/8") {
		t.Errorf("currentStageLabel() = %q, want 2/8 progress", got)
	}
}
