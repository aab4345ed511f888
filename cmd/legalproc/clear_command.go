package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akadeepesh/legal-processor-frontend/internal/logging"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Ask the service to drop its completed jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			client := ctx.newClient(cfg, logging.Discard())
			if err := client.ClearCompleted(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Completed jobs cleared.")
			return nil
		},
	}
}
