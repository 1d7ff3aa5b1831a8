package cli

import (
	"fmt"

	"github.com/avollmer/siteplan/internal/cli/formatter"
	"github.com/avollmer/siteplan/internal/snapshot"
	"github.com/spf13/cobra"
)

func newCopyCmd(app *App) *cobra.Command {
	var params snapshot.CopyParameters

	cmd := &cobra.Command{
		Use:   "copy <project>",
		Short: "Copy a project into a new independent project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			res, err := app.Copy.Copy(cmd.Context(), id, params)
			if err != nil {
				return err
			}

			fmt.Printf("Copied project %s to %s\n", id, res.ProjectID)
			fmt.Println(formatter.FormatImportResult(&res.Result))
			return nil
		},
	}

	cmd.Flags().StringVar(&params.ProjectName, "name", "", "Title for the new project")
	cmd.Flags().BoolVar(&params.Disciplines, "crafts", true, "Copy crafts")
	cmd.Flags().BoolVar(&params.WorkingAreas, "work-areas", true, "Copy working areas")
	cmd.Flags().BoolVar(&params.Milestones, "milestones", true, "Copy milestones")
	cmd.Flags().BoolVar(&params.Tasks, "tasks", true, "Copy tasks")
	cmd.Flags().BoolVar(&params.DayCards, "day-cards", true, "Copy day cards")
	cmd.Flags().BoolVar(&params.Topics, "topics", true, "Copy topics and messages")
	cmd.Flags().BoolVar(&params.KeepTaskAssignee, "keep-assignee", false, "Keep task assignees (copies participants)")
	cmd.Flags().BoolVar(&params.KeepTaskStatus, "keep-status", false, "Keep task statuses (requires --keep-assignee)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
