package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avollmer/siteplan/internal/cli/formatter"
	"github.com/avollmer/siteplan/internal/domain"
	"github.com/spf13/cobra"
)

// resolveProjectID turns user input (full ID, ID prefix or exact title) into
// a project ID.
func resolveProjectID(ctx context.Context, app *App, input string) (domain.ProjectID, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if string(p.ID) == input {
			return p.ID, nil
		}
	}

	for _, p := range projects {
		if strings.EqualFold(p.Title, input) {
			return p.ID, nil
		}
	}

	var matches []domain.ProjectID
	for _, p := range projects {
		if strings.HasPrefix(string(p.ID), input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func parseCategory(s string) (domain.ProjectCategory, error) {
	switch strings.ToUpper(s) {
	case "NB", "NEW":
		return domain.CategoryNewBuilding, nil
	case "OB", "OLD":
		return domain.CategoryOldBuilding, nil
	case "RB", "REFURB":
		return domain.CategoryRefurbished, nil
	default:
		return "", fmt.Errorf("invalid category %q (expected NB, OB or RB)", s)
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var title, client, number, category, start, end string

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"create"},
		Short:   "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			cat, err := parseCategory(category)
			if err != nil {
				return err
			}

			p := &domain.Project{
				Title:         title,
				Client:        client,
				ProjectNumber: number,
				Category:      cat,
				Start:         startDate,
				End:           endDate,
			}

			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s (%s)\n", p.Title, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&number, "number", "", "Project number")
	cmd.Flags().StringVar(&category, "category", "NB", "Category: NB, OB or RB")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project>",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectDetail(p))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <project>",
		Short: "Delete a project and its graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted project %s\n", id)
			return nil
		},
	}
}
