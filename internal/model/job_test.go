package model

import (
	"testing"
	"time"
)

func TestJobRecord_IsActive(t *testing.T) {
	tests := []struct {
		status LifecycleStatus
		want   bool
	}{
		{JobSubmitting, true},
		{JobSubmitted, true},
		{JobProcessing, true},
		{JobCompleted, false},
		{JobFailed, false},
	}
	for _, tt := range tests {
		rec := JobRecord{Lifecycle: tt.status}
		if got := rec.IsActive(); got != tt.want {
			t.Errorf("JobRecord{Lifecycle: %q}.IsActive() = %v, want %v", tt.status, got, tt.want)
		}
		if got := rec.IsTerminal(); got == tt.want {
			t.Errorf("JobRecord{Lifecycle: %q}.IsTerminal() = %v, want %v", tt.status, got, !tt.want)
		}
	}
}

func TestJobRecord_StageFor(t *testing.T) {
	now := time.Now()
	rec := JobRecord{
		Stages: []StageStatus{
			{Stage: StageIngestOriginal, State: StageCompleted, UpdatedAt: now},
			{Stage: StageExtractText, State: StageInProgress, Message: "page 3 of 12"},
		},
	}

	got := rec.StageFor(StageExtractText)
	if got.State != StageInProgress || got.Message != "page 3 of 12" {
		t.Errorf("StageFor(extract-text) = %+v, want reported in_progress status", got)
	}

	// Stages the remote never reported read as pending with no message
	got = rec.StageFor(StageUploadWordPress)
	if got.State != StagePending {
		t.Errorf("StageFor(upload-wordpress).State = %q, want %q", got.State, StagePending)
	}
	if got.Message != "" || got.ErrorDetail != "" {
		t.Errorf("StageFor(upload-wordpress) carries message %q/%q, want empty", got.Message, got.ErrorDetail)
	}
}

func TestJobRecord_CompletedStages(t *testing.T) {
	rec := JobRecord{
		Stages: []StageStatus{
			{Stage: StageIngestOriginal, State: StageCompleted},
			{Stage: StageInitialize, State: StageCompleted},
			{Stage: StageExtractText, State: StageFailed},
		},
	}
	if got := rec.CompletedStages(); got != 2 {
		t.Errorf("CompletedStages() = %d, want 2", got)
	}
}

func TestJobRecord_Clone(t *testing.T) {
	rec := JobRecord{
		ID:          ServerID("srv-1"),
		DisplayName: "contract.pdf",
		Stages:      []StageStatus{{Stage: StageIngestOriginal, State: StageCompleted}},
		Output:      OutputInfo{OutputFiles: []OutputLink{{Name: "out.docx", URL: "https://example.test/out.docx"}}},
	}

	cp := rec.Clone()
	cp.Stages[0].State = StageFailed
	cp.Output.OutputFiles[0].Name = "changed"

	if rec.Stages[0].State != StageCompleted {
		t.Error("Clone() shares the stages slice with the original")
	}
	if rec.Output.OutputFiles[0].Name != "out.docx" {
		t.Error("Clone() shares the output links slice with the original")
	}
}

func TestJobID_Provisional(t *testing.T) {
	provisional := NewProvisionalID()
	if !provisional.Provisional() {
		t.Error("NewProvisionalID().Provisional() = false, want true")
	}
	if provisional == NewProvisionalID() {
		t.Error("NewProvisionalID() returned the same id twice")
	}

	confirmed := ServerID("srv-9")
	if confirmed.Provisional() {
		t.Error("ServerID().Provisional() = true, want false")
	}
	if confirmed.String() != "srv-9" {
		t.Errorf("ServerID().String() = %q, want %q", confirmed.String(), "srv-9")
	}
}
