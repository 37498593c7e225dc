package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmcalloway/proforma/internal/cli/formatter"
	"github.com/jmcalloway/proforma/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect projects",
	}
	cmd.AddCommand(newProjectListCmd(app))
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), includeArchived)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No projects."))
				return nil
			}

			headers := []string{"ID", "Name", "Analysis Start", "Analysis End", "Status"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					p.DisplayID(),
					p.Name,
					fmtDate(p.AnalysisStart),
					fmtDate(p.AnalysisEnd),
					string(p.Status),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "all", false, "include archived projects")
	return cmd
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(domain.DateLayout)
}
