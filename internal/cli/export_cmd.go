package cli

import (
	"fmt"

	"github.com/avollmer/siteplan/internal/snapshot"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string
	settings := snapshot.ExportEverything()

	cmd := &cobra.Command{
		Use:   "export <project>",
		Short: "Export a project graph to a JSON or YAML snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			graph, err := app.Export.Export(cmd.Context(), id, settings)
			if err != nil {
				return err
			}

			if err := snapshot.WriteFile(out, graph); err != nil {
				return err
			}

			canonical, err := snapshot.Canonical(graph)
			if err != nil {
				return err
			}

			fmt.Printf("Exported project %s to %s\n", id, out)
			fmt.Printf("Revision: %s\n", snapshot.Revision(canonical))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (.json, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("out")

	cmd.Flags().BoolVar(&settings.Participants, "participants", true, "Include participants")
	cmd.Flags().BoolVar(&settings.Crafts, "crafts", true, "Include crafts")
	cmd.Flags().BoolVar(&settings.WorkAreas, "work-areas", true, "Include working areas")
	cmd.Flags().BoolVar(&settings.Milestones, "milestones", true, "Include milestones")
	cmd.Flags().BoolVar(&settings.Tasks, "tasks", true, "Include tasks")
	cmd.Flags().BoolVar(&settings.TaskStatus, "task-status", true, "Keep task statuses (otherwise exported as DRAFT)")
	cmd.Flags().BoolVar(&settings.DayCards, "day-cards", true, "Include day cards")
	cmd.Flags().BoolVar(&settings.Topics, "topics", true, "Include topics and messages")
	cmd.Flags().BoolVar(&settings.Relations, "relations", true, "Include relations")

	return cmd
}
