package api

import (
	"time"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
)

// SubmitResult is the outcome of a document submission. AlreadyProcessed
// signals the duplicate branch: no new job was created and ExistingFiles
// lists the prior output links.
type SubmitResult struct {
	FileID           string
	AlreadyProcessed bool
	Filename         string
	ExistingFiles    []model.OutputLink
}

// ReprocessResult is the outcome of a forced reprocess request
type ReprocessResult struct {
	FileID   string
	Filename string
}

type submitResponse struct {
	FileID           string         `json:"fileId"`
	AlreadyProcessed bool           `json:"alreadyProcessed"`
	Filename         string         `json:"filename"`
	ExistingFiles    []existingFile `json:"existingFiles"`
}

type existingFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type reprocessRequest struct {
	Filename string `json:"filename"`
}

type reprocessResponse struct {
	FileID   string `json:"fileId"`
	Filename string `json:"filename"`
}

type statusResponse struct {
	Files []fileStatus `json:"files"`
}

type fileStatus struct {
	ID               string           `json:"id"`
	OriginalFile     string           `json:"originalFile"`
	Status           string           `json:"status"`
	Error            string           `json:"error"`
	Stages           []stageStatus    `json:"stages"`
	TotalChunks      int              `json:"totalChunks"`
	SuccessfulChunks int              `json:"successfulChunks"`
	FailedChunks     int              `json:"failedChunks"`
	Cost             float64          `json:"cost"`
	SharePoint       *destinationInfo `json:"sharepoint"`
	WordPress        *destinationInfo `json:"wordpress"`
	AzureBlob        *destinationInfo `json:"azureBlob"`
	OutputFiles      []existingFile   `json:"outputFiles"`
}

type stageStatus struct {
	Stage     string    `json:"stage"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Error     string    `json:"error"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type destinationInfo struct {
	Uploaded bool   `json:"uploaded"`
	URL      string `json:"url"`
}

func (f fileStatus) toEntry() model.SnapshotEntry {
	entry := model.SnapshotEntry{
		ID:           f.ID,
		OriginalFile: f.OriginalFile,
		Lifecycle:    lifecycleFromWire(f.Status),
		ErrorMessage: f.Error,
		Output: model.OutputInfo{
			TotalChunks:      f.TotalChunks,
			SuccessfulChunks: f.SuccessfulChunks,
			FailedChunks:     f.FailedChunks,
			Cost:             f.Cost,
			SharePoint:       destinationFromWire(f.SharePoint),
			WordPress:        destinationFromWire(f.WordPress),
			AzureBlob:        destinationFromWire(f.AzureBlob),
			OutputFiles:      linksFromWire(f.OutputFiles),
		},
	}

	seen := make(map[model.Stage]bool, len(f.Stages))
	for _, ws := range f.Stages {
		stage, ok := model.StageFromKey(ws.Stage)
		if !ok || seen[stage] {
			// Unknown stages are skipped; a duplicate key keeps its first entry
			continue
		}
		seen[stage] = true
		entry.Stages = append(entry.Stages, model.StageStatus{
			Stage:       stage,
			State:       stageStateFromWire(ws.Status),
			Message:     ws.Message,
			ErrorDetail: ws.Error,
			UpdatedAt:   ws.UpdatedAt,
		})
	}
	return entry
}

func lifecycleFromWire(status string) model.LifecycleStatus {
	switch model.LifecycleStatus(status) {
	case model.JobSubmitted, model.JobProcessing, model.JobCompleted, model.JobFailed:
		return model.LifecycleStatus(status)
	default:
		// The remote only reports jobs it has accepted
		return model.JobProcessing
	}
}

func stageStateFromWire(state string) model.StageState {
	switch model.StageState(state) {
	case model.StageInProgress, model.StageCompleted, model.StageFailed:
		return model.StageState(state)
	default:
		return model.StagePending
	}
}

func destinationFromWire(d *destinationInfo) model.DestinationUpload {
	if d == nil {
		return model.DestinationUpload{}
	}
	return model.DestinationUpload{Uploaded: d.Uploaded, URL: d.URL}
}

func linksFromWire(files []existingFile) []model.OutputLink {
	if len(files) == 0 {
		return nil
	}
	out := make([]model.OutputLink, 0, len(files))
	for _, f := range files {
		out = append(out, model.OutputLink{Name: f.Name, URL: f.URL})
	}
	return out
}
