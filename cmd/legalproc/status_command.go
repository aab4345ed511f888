package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akadeepesh/legal-processor-frontend/internal/logging"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the remote state of all known jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			client := ctx.newClient(cfg, logging.Discard())
			entries, err := client.PollStatus(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No jobs known to the service.")
				return nil
			}

			fmt.Fprintln(out, renderStatusTable(entries))
			return nil
		},
	}
}
