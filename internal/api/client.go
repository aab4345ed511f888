package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
)

// HTTPDoer describes the HTTP client used to reach the processing service
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the remote document processing service. It carries no
// state beyond its configuration; all job state lives in the store.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *slog.Logger
}

// NewClient constructs a client for the service at baseURL
func NewClient(baseURL string, doer HTTPDoer, logger *slog.Logger) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    doer,
		logger:  logger,
	}
}

// Submit uploads the document at path for processing. A response with
// AlreadyProcessed set means the service declined to start a new job and
// returned the prior output links instead.
func (c *Client) Submit(ctx context.Context, path string) (SubmitResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return SubmitResult{}, fmt.Errorf("read document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return SubmitResult{}, fmt.Errorf("finish upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var wire submitResponse
	if err := c.do(req, &wire); err != nil {
		return SubmitResult{}, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}

	return SubmitResult{
		FileID:           wire.FileID,
		AlreadyProcessed: wire.AlreadyProcessed,
		Filename:         wire.Filename,
		ExistingFiles:    linksFromWire(wire.ExistingFiles),
	}, nil
}

// Reprocess asks the service to run a previously processed document again
func (c *Client) Reprocess(ctx context.Context, filename string) (ReprocessResult, error) {
	payload, err := json.Marshal(reprocessRequest{Filename: filename})
	if err != nil {
		return ReprocessResult{}, fmt.Errorf("encode reprocess request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/reprocess", bytes.NewReader(payload))
	if err != nil {
		return ReprocessResult{}, fmt.Errorf("build reprocess request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var wire reprocessResponse
	if err := c.do(req, &wire); err != nil {
		return ReprocessResult{}, fmt.Errorf("reprocess %s: %w", filename, err)
	}
	return ReprocessResult{FileID: wire.FileID, Filename: wire.Filename}, nil
}

// PollStatus fetches the full remote snapshot of all known jobs
func (c *Client) PollStatus(ctx context.Context) ([]model.SnapshotEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/status", nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}

	var wire statusResponse
	if err := c.do(req, &wire); err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}

	entries := make([]model.SnapshotEntry, 0, len(wire.Files))
	for _, f := range wire.Files {
		entries = append(entries, f.toEntry())
	}
	return entries, nil
}

// ClearCompleted asks the service to drop its completed jobs
func (c *Client) ClearCompleted(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/clear-completed", nil)
	if err != nil {
		return fmt.Errorf("build clear request: %w", err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("clear completed: %w", err)
	}
	return nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("service returned %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
