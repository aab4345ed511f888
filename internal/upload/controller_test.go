package upload

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akadeepesh/legal-processor-frontend/internal/api"
	"github.com/akadeepesh/legal-processor-frontend/internal/model"
	"github.com/akadeepesh/legal-processor-frontend/internal/store"
)

type fakeService struct {
	submits   map[string]api.SubmitResult
	submitErr map[string]error
	reprocess api.ReprocessResult
	reprocErr error
	submitted []string
	reprocFor []string
}

func (f *fakeService) Submit(_ context.Context, path string) (api.SubmitResult, error) {
	name := filepath.Base(path)
	f.submitted = append(f.submitted, name)
	if err := f.submitErr[name]; err != nil {
		return api.SubmitResult{}, err
	}
	return f.submits[name], nil
}

func (f *fakeService) Reprocess(_ context.Context, filename string) (api.ReprocessResult, error) {
	f.reprocFor = append(f.reprocFor, filename)
	if f.reprocErr != nil {
		return api.ReprocessResult{}, f.reprocErr
	}
	return f.reprocess, nil
}

func TestSubmitOne_NewFile(t *testing.T) {
	s := store.New()
	svc := &fakeService{submits: map[string]api.SubmitResult{
		"contract.pdf": {FileID: "srv-1", Filename: "contract.pdf"},
	}}
	c := New(s, svc, nil)

	res := c.SubmitOne(context.Background(), "/docs/contract.pdf")
	require.Equal(t, OutcomeTracked, res.Outcome)

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "srv-1", records[0].ID.String())
	assert.False(t, records[0].ID.Provisional(), "no provisional record may remain")
	assert.Equal(t, "contract.pdf", records[0].DisplayName)
	assert.Equal(t, model.JobSubmitted, records[0].Lifecycle)
}

func TestSubmitOne_AlreadyProcessed(t *testing.T) {
	s := store.New()
	svc := &fakeService{submits: map[string]api.SubmitResult{
		"contract.pdf": {
			AlreadyProcessed: true,
			Filename:         "contract.pdf",
			ExistingFiles:    []model.OutputLink{{Name: "out.docx", URL: "https://example.test/out.docx"}},
		},
	}}
	c := New(s, svc, nil)

	res := c.SubmitOne(context.Background(), "/docs/contract.pdf")
	require.Equal(t, OutcomeConflict, res.Outcome)

	// No job is tracked for a duplicate submission
	assert.Equal(t, 0, s.Len())
	require.NotNil(t, res.Conflict)
	assert.Equal(t, "contract.pdf", res.Conflict.Filename)
	require.Len(t, res.Conflict.ExistingFiles, 1)
	assert.Equal(t, "out.docx", res.Conflict.ExistingFiles[0].Name)
}

func TestSubmitOne_Failure(t *testing.T) {
	s := store.New()
	svc := &fakeService{submitErr: map[string]error{
		"contract.pdf": errors.New("connection refused"),
	}}
	c := New(s, svc, nil)

	res := c.SubmitOne(context.Background(), "/docs/contract.pdf")
	require.Equal(t, OutcomeFailed, res.Outcome)

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, model.JobFailed, records[0].Lifecycle)
	assert.Equal(t, "connection refused", records[0].ErrorMessage)
	// The failure record gets a fresh id so a retry of the same file
	// cannot collide with it
	assert.True(t, records[0].ID.Provisional())
}

func TestSubmitOne_ServerIDAlreadyTracked(t *testing.T) {
	s := store.New()
	svc := &fakeService{submits: map[string]api.SubmitResult{
		"contract.pdf": {FileID: "srv-1", Filename: "contract.pdf"},
		"copy.pdf":     {FileID: "srv-1", Filename: "copy.pdf"},
	}}
	c := New(s, svc, nil)

	first := c.SubmitOne(context.Background(), "/docs/contract.pdf")
	require.Equal(t, OutcomeTracked, first.Outcome)

	// The service echoed an id it had already issued; the second file fails
	// on its own instead of taking the client down
	second := c.SubmitOne(context.Background(), "/docs/copy.pdf")
	require.Equal(t, OutcomeFailed, second.Outcome)
	require.Error(t, second.Err)
	assert.Contains(t, second.Err.Error(), "srv-1")

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "srv-1", records[0].ID.String())
	assert.Equal(t, model.JobSubmitted, records[0].Lifecycle)
	assert.Equal(t, model.JobFailed, records[1].Lifecycle)
	assert.True(t, records[1].ID.Provisional())
}

func TestSubmitOne_BlankServerID(t *testing.T) {
	s := store.New()
	svc := &fakeService{submits: map[string]api.SubmitResult{
		"contract.pdf": {Filename: "contract.pdf"},
	}}
	c := New(s, svc, nil)

	res := c.SubmitOne(context.Background(), "/docs/contract.pdf")
	require.Equal(t, OutcomeFailed, res.Outcome)

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, model.JobFailed, records[0].Lifecycle)
	assert.Equal(t, "service returned no job id", records[0].ErrorMessage)
}

func TestProcessBatch_MixedOutcomes(t *testing.T) {
	s := store.New()
	svc := &fakeService{
		submits: map[string]api.SubmitResult{
			"a.pdf": {FileID: "srv-1", Filename: "a.pdf"},
			"b.pdf": {AlreadyProcessed: true, Filename: "b.pdf"},
			"d.pdf": {FileID: "srv-2", Filename: "d.pdf"},
		},
		submitErr: map[string]error{"c.pdf": errors.New("timeout")},
	}
	c := New(s, svc, nil)

	results := c.ProcessBatch(context.Background(), []string{"/x/a.pdf", "/x/b.pdf", "/x/c.pdf", "/x/d.pdf"})
	require.Len(t, results, 4)

	// Strictly sequential, in selection order
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"}, svc.submitted)

	// N files minus one conflict leaves three records; the failure mid-batch
	// did not abort the files after it
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, OutcomeTracked, results[0].Outcome)
	assert.Equal(t, OutcomeConflict, results[1].Outcome)
	assert.Equal(t, OutcomeFailed, results[2].Outcome)
	assert.Equal(t, OutcomeTracked, results[3].Outcome)
}

func TestReprocess(t *testing.T) {
	s := store.New()
	svc := &fakeService{reprocess: api.ReprocessResult{FileID: "srv-9", Filename: "contract.pdf"}}
	c := New(s, svc, nil)

	rec, err := c.Reprocess(context.Background(), "contract.pdf")
	require.NoError(t, err)

	// Reprocessing skips the submitting stage: nothing is re-uploaded
	assert.Equal(t, model.JobSubmitted, rec.Lifecycle)
	assert.Equal(t, "srv-9", rec.ID.String())
	assert.Equal(t, []string{"contract.pdf"}, svc.reprocFor)

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "srv-9", records[0].ID.String())
}

func TestReprocess_RebindsTrackedID(t *testing.T) {
	s := store.New()
	s.Insert(model.JobRecord{ID: model.ServerID("srv-9"), DisplayName: "contract.pdf", Lifecycle: model.JobCompleted})
	svc := &fakeService{reprocess: api.ReprocessResult{FileID: "srv-9", Filename: "contract.pdf"}}
	c := New(s, svc, nil)

	// The restarted job came back under the id of the still-listed
	// completed record; that record is rebound rather than duplicated
	rec, err := c.Reprocess(context.Background(), "contract.pdf")
	require.NoError(t, err)
	assert.Equal(t, model.JobSubmitted, rec.Lifecycle)

	require.Equal(t, 1, s.Len())
	got, ok := s.Get(model.ServerID("srv-9"))
	require.True(t, ok)
	assert.Equal(t, model.JobSubmitted, got.Lifecycle)
}

func TestReprocess_Failure(t *testing.T) {
	s := store.New()
	svc := &fakeService{reprocErr: errors.New("service unavailable")}
	c := New(s, svc, nil)

	_, err := c.Reprocess(context.Background(), "contract.pdf")
	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestFilterPDFs(t *testing.T) {
	got := FilterPDFs([]string{"a.pdf", "b.docx", "c.PDF", "d", "e.pdf.txt"})
	assert.Equal(t, []string{"a.pdf", "c.PDF"}, got)

	assert.Nil(t, FilterPDFs(nil))
}
