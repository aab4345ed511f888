package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/akadeepesh/legal-processor-frontend/internal/logging"
	"github.com/akadeepesh/legal-processor-frontend/internal/model"
	"github.com/akadeepesh/legal-processor-frontend/internal/reconcile"
	"github.com/akadeepesh/legal-processor-frontend/internal/store"
	"github.com/akadeepesh/legal-processor-frontend/internal/upload"
)

func newUploadCommand(ctx *commandContext) *cobra.Command {
	var reprocessDuplicates bool
	var wait bool

	cmd := &cobra.Command{
		Use:   "upload <file.pdf>...",
		Short: "Submit documents for processing without the interactive view",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Path: cfg.LogFile})
			if err != nil {
				return err
			}

			// Non-PDF selections are dropped quietly, same as the picker
			paths := upload.FilterPDFs(args)
			if len(paths) == 0 {
				return fmt.Errorf("no PDF files in selection")
			}

			client := ctx.newClient(cfg, logger)
			jobs := store.New()
			controller := upload.New(jobs, client, logger)

			out := cmd.OutOrStdout()
			results := controller.ProcessBatch(cmd.Context(), paths)
			for _, res := range results {
				switch res.Outcome {
				case upload.OutcomeTracked:
					fmt.Fprintf(out, "submitted  %s (%s)\n", res.Record.DisplayName, res.Record.ID)
				case upload.OutcomeFailed:
					fmt.Fprintf(out, "failed     %s: %v\n", res.Record.DisplayName, res.Err)
				case upload.OutcomeConflict:
					fmt.Fprintf(out, "duplicate  %s already processed\n", res.Conflict.Filename)
					for _, f := range res.Conflict.ExistingFiles {
						fmt.Fprintf(out, "           %s  %s\n", f.Name, f.URL)
					}
					if reprocessDuplicates {
						rec, err := controller.Reprocess(cmd.Context(), res.Conflict.Filename)
						if err != nil {
							fmt.Fprintf(out, "reprocess  %s: %v\n", res.Conflict.Filename, err)
							continue
						}
						fmt.Fprintf(out, "reprocess  %s (%s)\n", rec.DisplayName, rec.ID)
					}
				}
			}

			if !wait {
				return nil
			}
			return waitForCompletion(cmd.Context(), out, jobs, client, cfg.PollInterval(), logger)
		},
	}

	cmd.Flags().BoolVar(&reprocessDuplicates, "reprocess", false, "Reprocess files the service has already processed")
	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until every submitted job reaches a terminal state")
	return cmd
}

// waitForCompletion polls the service until every tracked job is terminal,
// reporting lifecycle changes as they land
func waitForCompletion(ctx context.Context, out io.Writer, jobs *store.Store, poller reconcile.Poller, interval time.Duration, logger *slog.Logger) error {
	last := make(map[string]model.LifecycleStatus)
	for _, rec := range jobs.Records() {
		last[rec.ID.String()] = rec.Lifecycle
	}

	for jobs.ActiveCount() > 0 {
		entries, err := poller.PollStatus(ctx)
		if err != nil {
			// Transient poll failures are retried on the next cycle
			logger.Warn("status poll failed", "error", err)
		} else {
			jobs.MergeSnapshot(entries)
		}

		for _, rec := range jobs.Records() {
			if last[rec.ID.String()] == rec.Lifecycle {
				continue
			}
			last[rec.ID.String()] = rec.Lifecycle
			if rec.ErrorMessage != "" {
				fmt.Fprintf(out, "%-10s %s: %s\n", rec.Lifecycle, rec.DisplayName, rec.ErrorMessage)
			} else {
				fmt.Fprintf(out, "%-10s %s\n", rec.Lifecycle, rec.DisplayName)
			}
		}

		if jobs.ActiveCount() == 0 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return nil
}
