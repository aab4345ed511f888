package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akadeepesh/legal-processor-frontend/internal/config"
	"github.com/akadeepesh/legal-processor-frontend/internal/logging"
	"github.com/akadeepesh/legal-processor-frontend/internal/reconcile"
	"github.com/akadeepesh/legal-processor-frontend/internal/store"
	"github.com/akadeepesh/legal-processor-frontend/internal/tui"
	"github.com/akadeepesh/legal-processor-frontend/internal/upload"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Interactively upload documents and watch pipeline progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(ctx)
		},
	}
}

func runWatch(ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Path:   logPath,
	})
	if err != nil {
		return err
	}

	client := ctx.newClient(cfg, logger)
	jobs := store.New()
	controller := upload.New(jobs, client, logger)
	reconciler := reconcile.New(jobs, client, cfg.PollInterval(), logger)
	defer reconciler.Stop()

	app := tui.NewApp(jobs, controller, reconciler, client)
	p := tea.NewProgram(app, tea.WithAltScreen())
	reconciler.SetOnMerge(func() {
		p.Send(tui.JobsUpdatedMsg{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}
