package model

import "testing"

func TestStages_OrderAndCount(t *testing.T) {
	if len(Stages) != 8 {
		t.Fatalf("len(Stages) = %d, want 8", len(Stages))
	}

	wantKeys := []string{
		"ingest-original",
		"initialize",
		"extract-text",
		"ai-convert",
		"generate-output",
		"upload-output",
		"upload-sharepoint",
		"upload-wordpress",
	}
	for i, stage := range Stages {
		if stage.Key() != wantKeys[i] {
			t.Errorf("Stages[%d].Key() = %q, want %q", i, stage.Key(), wantKeys[i])
		}
	}
}

func TestStageFromKey(t *testing.T) {
	for _, stage := range Stages {
		got, ok := StageFromKey(stage.Key())
		if !ok {
			t.Errorf("StageFromKey(%q) not found", stage.Key())
		}
		if got != stage {
			t.Errorf("StageFromKey(%q) = %v, want %v", stage.Key(), got, stage)
		}
	}

	if _, ok := StageFromKey("no-such-stage"); ok {
		t.Error("StageFromKey(no-such-stage) = ok, want not found")
	}
}

func TestStage_DisplayName(t *testing.T) {
	for _, stage := range Stages {
		if stage.DisplayName() == "" || stage.DisplayName() == "Unknown" {
			t.Errorf("Stage %q has no display name", stage.Key())
		}
	}
}
