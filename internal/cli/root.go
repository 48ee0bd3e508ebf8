package cli

import (
	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Advisor service.AdvisorService
	Careers service.CareerService
	History service.HistoryService
	Catalog *catalog.Catalog

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pathfinder" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathfinder",
		Short: "Rule-based career guidance advisor",
		Long: "Pathfinder asks a short sequence of questions about your skills and\n" +
			"preferences, then narrows a catalog of career profiles to the ones\n" +
			"that fit what you confirmed.",
	}

	root.AddCommand(
		newQuizCmd(app),
		newCareersCmd(app),
		newQuestionsCmd(app),
		newHistoryCmd(app),
		newValidateCmd(),
	)

	return root
}
