package model

import "time"

// Stage represents a step in the remote document processing pipeline
type Stage int

const (
	StageIngestOriginal Stage = iota
	StageInitialize
	StageExtractText
	StageAIConvert
	StageGenerateOutput
	StageUploadOutput
	StageUploadSharePoint
	StageUploadWordPress
)

// Stages lists every pipeline stage in processing order. The order is a
// process-wide constant and drives both display and lookup; it is never
// derived from remote data.
var Stages = []Stage{
	StageIngestOriginal,
	StageInitialize,
	StageExtractText,
	StageAIConvert,
	StageGenerateOutput,
	StageUploadOutput,
	StageUploadSharePoint,
	StageUploadWordPress,
}

// Key returns the wire identifier for the stage
func (s Stage) Key() string {
	switch s {
	case StageIngestOriginal:
		return "ingest-original"
	case StageInitialize:
		return "initialize"
	case StageExtractText:
		return "extract-text"
	case StageAIConvert:
		return "ai-convert"
	case StageGenerateOutput:
		return "generate-output"
	case StageUploadOutput:
		return "upload-output"
	case StageUploadSharePoint:
		return "upload-sharepoint"
	case StageUploadWordPress:
		return "upload-wordpress"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable label for the stage
func (s Stage) DisplayName() string {
	switch s {
	case StageIngestOriginal:
		return "Upload original"
	case StageInitialize:
		return "Initialize"
	case StageExtractText:
		return "Extract text"
	case StageAIConvert:
		return "AI conversion"
	case StageGenerateOutput:
		return "Generate document"
	case StageUploadOutput:
		return "Upload output"
	case StageUploadSharePoint:
		return "SharePoint upload"
	case StageUploadWordPress:
		return "WordPress upload"
	default:
		return "Unknown"
	}
}

// StageFromKey resolves a wire identifier back to a Stage.
// Returns false for keys the client does not know about.
func StageFromKey(key string) (Stage, bool) {
	for _, s := range Stages {
		if s.Key() == key {
			return s, true
		}
	}
	return 0, false
}

// StageState represents the remote-reported state of a single stage
type StageState string

const (
	StagePending    StageState = "pending"
	StageInProgress StageState = "in_progress"
	StageCompleted  StageState = "completed"
	StageFailed     StageState = "failed"
)

// StageStatus is the remote-reported progress of one pipeline stage for one job
type StageStatus struct {
	Stage       Stage
	State       StageState
	Message     string
	ErrorDetail string
	UpdatedAt   time.Time
}
