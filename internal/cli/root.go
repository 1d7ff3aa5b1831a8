// Package cli implements the siteplan command tree. Commands are thin: they
// parse flags, call services and render results through the formatter.
package cli

import (
	"github.com/avollmer/siteplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Export   service.ExportService
	Import   service.ImportService
	Copy     service.CopyService
}

// NewRootCmd creates the top-level "siteplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "siteplan",
		Short: "Construction project planner with snapshot export, import and copy",
	}

	root.AddCommand(
		newProjectCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newCopyCmd(app),
	)

	return root
}
