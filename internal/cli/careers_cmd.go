package cli

import (
	"context"

	"github.com/pathfinderhq/pathfinder/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCareersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "careers",
		Short: "Browse the career catalog",
	}

	cmd.AddCommand(newCareersListCmd(app), newCareersShowCmd(app))
	return cmd
}

func newCareersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all careers with their required and preferred skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Careers.List(context.Background())
			if err != nil {
				return err
			}
			cmd.Println(formatter.Header("Careers"))
			for i := range views {
				cmd.Println(formatter.FormatCareer(&views[i]))
				cmd.Println()
			}
			return nil
		},
	}
}

func newCareersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show one career profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Careers.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatCareer(view))
			return nil
		},
	}
}

func newQuestionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the question sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(formatter.Header("Questions"))
			for i := range app.Catalog.Questions {
				q := &app.Catalog.Questions[i]
				cmd.Printf("%s %s\n", formatter.Dim(q.ID), q.Prompt)
			}
			return nil
		},
	}
}
