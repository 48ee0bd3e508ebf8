package cli

import (
	"context"

	"github.com/pathfinderhq/pathfinder/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past consultations",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryRemoveCmd(app),
	)
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent consultations",
		RunE: func(cmd *cobra.Command, args []string) error {
			consultations, err := app.History.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(consultations) == 0 {
				cmd.Println(formatter.Dim("No consultations yet. Run 'pathfinder quiz' to start one."))
				return nil
			}
			cmd.Println(formatter.Header("History"))
			for _, c := range consultations {
				cmd.Println(formatter.FormatConsultationRow(c))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of consultations to show")
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one consultation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.History.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatConsultationDetail(c, app.Catalog.AttributeLabel))
			return nil
		},
	}
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a consultation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.History.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted consultation %s\n", args[0])
			return nil
		},
	}
}
