package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/akadeepesh/legal-processor-frontend/internal/api"
	"github.com/akadeepesh/legal-processor-frontend/internal/model"
	"github.com/akadeepesh/legal-processor-frontend/internal/store"
)

// Service is the slice of the remote API the controller needs
type Service interface {
	Submit(ctx context.Context, path string) (api.SubmitResult, error)
	Reprocess(ctx context.Context, filename string) (api.ReprocessResult, error)
}

// Outcome classifies the result of one file submission
type Outcome int

const (
	OutcomeTracked Outcome = iota
	OutcomeConflict
	OutcomeFailed
)

// FileResult reports how a single file in a batch was handled
type FileResult struct {
	Path     string
	Outcome  Outcome
	Record   model.JobRecord        // tracked record, or the failure record
	Conflict *model.ConflictContext // set only for OutcomeConflict
	Err      error                  // set only for OutcomeFailed
}

// Controller submits selected documents one at a time and keeps the store
// in step with each outcome. Files are processed strictly sequentially to
// bound load on the remote pipeline and keep display order stable.
type Controller struct {
	store  *store.Store
	svc    Service
	logger *slog.Logger
	now    func() time.Time
}

// New creates a controller over the shared store
func New(s *store.Store, svc Service, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{store: s, svc: svc, logger: logger, now: time.Now}
}

// SubmitOne tracks and submits a single document. The record is inserted
// under a provisional id before the network call so the file is visible
// immediately; the provisional record is then replaced by exactly one of:
// the confirmed record, a failure record, or nothing (conflict).
func (c *Controller) SubmitOne(ctx context.Context, path string) FileResult {
	provisional := model.JobRecord{
		ID:          model.NewProvisionalID(),
		DisplayName: filepath.Base(path),
		Lifecycle:   model.JobSubmitting,
		SubmittedAt: c.now(),
	}
	c.store.Insert(provisional)

	res, err := c.svc.Submit(ctx, path)
	if err != nil {
		return c.failSubmission(path, provisional, err)
	}

	if res.AlreadyProcessed {
		c.store.Remove(provisional.ID)
		name := res.Filename
		if name == "" {
			name = provisional.DisplayName
		}
		conflict := &model.ConflictContext{
			Filename:      name,
			ExistingFiles: append([]model.OutputLink(nil), res.ExistingFiles...),
		}
		c.logger.Info("file already processed", "file", name)
		return FileResult{Path: path, Outcome: OutcomeConflict, Conflict: conflict}
	}

	confirmed := provisional
	confirmed.ID = model.ServerID(res.FileID)
	confirmed.Lifecycle = model.JobSubmitted
	if res.Filename != "" {
		confirmed.DisplayName = res.Filename
	}
	if confirmed.ID.IsZero() {
		return c.failSubmission(path, provisional, errors.New("service returned no job id"))
	}
	// The server may echo an id that is already tracked, for example when
	// the same document is submitted again while its first job is still
	// running. The file fails on its own; the existing record is untouched.
	if !c.store.Replace(provisional.ID, confirmed) {
		return c.failSubmission(path, provisional,
			fmt.Errorf("service returned job id %q already tracked by another record", res.FileID))
	}
	c.logger.Info("file submitted", "file", confirmed.DisplayName, "id", res.FileID)
	return FileResult{Path: path, Outcome: OutcomeTracked, Record: confirmed}
}

// failSubmission swaps the provisional record for a failure record under a
// fresh id and reports the per-file outcome
func (c *Controller) failSubmission(path string, provisional model.JobRecord, err error) FileResult {
	failed := provisional
	failed.ID = model.NewFailureID()
	failed.Lifecycle = model.JobFailed
	failed.ErrorMessage = err.Error()
	c.store.Replace(provisional.ID, failed)
	c.logger.Warn("submission failed", "file", provisional.DisplayName, "error", err)
	return FileResult{Path: path, Outcome: OutcomeFailed, Record: failed, Err: err}
}

// ProcessBatch submits the selected files in order, one at a time. A failed
// or conflicting file never aborts the rest of the batch; records already
// tracked stay tracked.
func (c *Controller) ProcessBatch(ctx context.Context, paths []string) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, c.SubmitOne(ctx, path))
	}
	return results
}

// Reprocess asks the remote to run an already processed document again and
// tracks the new job. The record starts at submitted rather than submitting
// since no file payload is re-uploaded.
func (c *Controller) Reprocess(ctx context.Context, filename string) (model.JobRecord, error) {
	res, err := c.svc.Reprocess(ctx, filename)
	if err != nil {
		return model.JobRecord{}, fmt.Errorf("reprocess %s: %w", filename, err)
	}

	name := res.Filename
	if name == "" {
		name = filename
	}
	rec := model.JobRecord{
		ID:          model.ServerID(res.FileID),
		DisplayName: name,
		Lifecycle:   model.JobSubmitted,
		SubmittedAt: c.now(),
	}
	if rec.ID.IsZero() {
		return model.JobRecord{}, fmt.Errorf("reprocess %s: service returned no job id", filename)
	}
	// A reprocessed job may come back under an id that is still tracked,
	// such as a completed record not yet cleared; rebind it in place
	if _, tracked := c.store.Get(rec.ID); tracked {
		c.store.Replace(rec.ID, rec)
	} else {
		c.store.Insert(rec)
	}
	c.logger.Info("file queued for reprocessing", "file", name, "id", res.FileID)
	return rec, nil
}

// FilterPDFs drops every path that is not PDF-typed. Non-matching files are
// silently excluded from the selection rather than reported as errors.
func FilterPDFs(paths []string) []string {
	var out []string
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".pdf") {
			out = append(out, p)
		}
	}
	return out
}
