package model

import "time"

// LifecycleStatus represents the client-side lifecycle of a tracked job
type LifecycleStatus string

const (
	JobSubmitting LifecycleStatus = "submitting"
	JobSubmitted  LifecycleStatus = "submitted"
	JobProcessing LifecycleStatus = "processing"
	JobCompleted  LifecycleStatus = "completed"
	JobFailed     LifecycleStatus = "failed"
)

// JobRecord tracks one submitted document and its progress through the
// remote pipeline
type JobRecord struct {
	ID           JobID
	DisplayName  string
	Lifecycle    LifecycleStatus
	SubmittedAt  time.Time
	ErrorMessage string
	Stages       []StageStatus
	Output       OutputInfo
}

// IsActive returns true while the job still needs remote reconciliation
func (j *JobRecord) IsActive() bool {
	switch j.Lifecycle {
	case JobSubmitting, JobSubmitted, JobProcessing:
		return true
	}
	return false
}

// IsTerminal returns true once the job can no longer change state
func (j *JobRecord) IsTerminal() bool {
	return j.Lifecycle == JobCompleted || j.Lifecycle == JobFailed
}

// StageFor resolves the reported status for a stage. Stages the remote has
// not reported yet read as pending with no message.
func (j *JobRecord) StageFor(stage Stage) StageStatus {
	for _, s := range j.Stages {
		if s.Stage == stage {
			return s
		}
	}
	return StageStatus{Stage: stage, State: StagePending}
}

// CompletedStages counts stages the remote has reported as completed
func (j *JobRecord) CompletedStages() int {
	n := 0
	for _, s := range j.Stages {
		if s.State == StageCompleted {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the record
func (j *JobRecord) Clone() JobRecord {
	cp := *j
	cp.Stages = append([]StageStatus(nil), j.Stages...)
	cp.Output = j.Output.Clone()
	return cp
}

// DestinationUpload describes delivery of output to one downstream system
type DestinationUpload struct {
	Uploaded bool
	URL      string
}

// OutputLink is a named link to a generated output file
type OutputLink struct {
	Name string
	URL  string
}

// OutputInfo carries the output metadata the remote reports for a job,
// replaced wholesale on every merge
type OutputInfo struct {
	TotalChunks      int
	SuccessfulChunks int
	FailedChunks     int
	Cost             float64
	SharePoint       DestinationUpload
	WordPress        DestinationUpload
	AzureBlob        DestinationUpload
	OutputFiles      []OutputLink
}

// Clone returns a deep copy of the output metadata
func (o OutputInfo) Clone() OutputInfo {
	cp := o
	cp.OutputFiles = append([]OutputLink(nil), o.OutputFiles...)
	return cp
}

// SnapshotEntry is one job state from the remote status snapshot
type SnapshotEntry struct {
	ID           string
	OriginalFile string
	Lifecycle    LifecycleStatus
	ErrorMessage string
	Stages       []StageStatus
	Output       OutputInfo
}

// CompletedJobSummary is a read-only projection of a completed job
type CompletedJobSummary struct {
	ID          string
	DisplayName string
	Output      OutputInfo
}

// ConflictContext holds the state of an "already processed" submission
// awaiting a user decision
type ConflictContext struct {
	Filename      string
	ExistingFiles []OutputLink
}
