package cli

import (
	"context"
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/jmcalloway/proforma/internal/cli/formatter"
	"github.com/jmcalloway/proforma/internal/contract"
	"github.com/jmcalloway/proforma/internal/domain"
)

func newTimelineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Calculate and inspect project timelines",
	}
	cmd.AddCommand(
		newTimelineRecalcCmd(app),
		newTimelineShowCmd(app),
	)
	return cmd
}

func newTimelineRecalcCmd(app *App) *cobra.Command {
	var dryRun, validateOnly bool
	var userID string

	cmd := &cobra.Command{
		Use:   "recalc <project-id>",
		Short: "Recalculate the critical path schedule for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewRecalcRequest(args[0], domain.TriggerManual)
			req.DryRun = dryRun
			req.ValidateOnly = validateOnly
			req.UserID = userID
			if req.UserID == "" {
				if u, err := user.Current(); err == nil {
					req.UserID = u.Username
				}
			}

			resp, err := app.Timeline.Recalculate(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecalcResult(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute without persisting")
	cmd.Flags().BoolVar(&validateOnly, "validate", false, "only check the dependency graph")
	cmd.Flags().StringVar(&userID, "user", "", "user recorded in the audit log")
	return cmd
}

func newTimelineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show the persisted schedule for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Timeline.Snapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(snap))
			return nil
		},
	}
}
