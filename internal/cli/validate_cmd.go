package cli

import (
	"os"

	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog file for integrity problems",
		Long: "Validates that every attribute a career references is declared and can\n" +
			"actually be confirmed by at least one question. Without --catalog, the\n" +
			"catalog from PATHFINDER_CATALOG (or the built-in one) is checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := catalogPath
			if path == "" {
				path = os.Getenv("PATHFINDER_CATALOG")
			}

			_, err := catalog.LoadOrDefault(path)
			if err != nil {
				if ve, ok := catalog.AsValidationError(err); ok {
					cmd.Println(formatter.StyleRed.Render("Catalog is invalid:"))
					for _, p := range ve.Problems {
						cmd.Println("  - " + p)
					}
				}
				return err
			}

			cmd.Println(formatter.StyleGreen.Render("Catalog OK"))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file to validate")
	return cmd
}
