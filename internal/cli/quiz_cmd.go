package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pathfinderhq/pathfinder/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	var formMode bool

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run an interactive career guidance session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			interactive := app.IsInteractive == nil || app.IsInteractive()
			switch {
			case formMode && interactive:
				return runFormQuiz(ctx, app, cmd)
			case interactive:
				return runChatQuiz(app)
			default:
				return runPlainQuiz(ctx, app, cmd)
			}
		},
	}

	cmd.Flags().BoolVar(&formMode, "form", false, "Answer with selection menus instead of free text")
	return cmd
}

// runChatQuiz starts the bubbletea chat interface.
func runChatQuiz(app *App) error {
	p := tea.NewProgram(newQuizModel(app))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running quiz: %w", err)
	}
	return nil
}

// runPlainQuiz reads answers line by line from stdin. Used when stdin is
// not a terminal, e.g. scripted runs.
func runPlainQuiz(ctx context.Context, app *App, cmd *cobra.Command) error {
	q, err := app.Advisor.Start(ctx)
	if err != nil {
		return err
	}
	if q == nil {
		cmd.Println(formatter.FormatReport(app.Advisor.Report(ctx)))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for q != nil {
		cmd.Println(formatter.FormatQuestion(q))
		if !scanner.Scan() {
			return scanner.Err()
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		outcome, err := app.Advisor.Answer(ctx, raw)
		if err != nil {
			return err
		}
		if outcome.Unresolved {
			cmd.Println(formatter.FormatReprompt(q))
			continue
		}
		if outcome.Report != nil {
			cmd.Println(formatter.FormatReport(outcome.Report))
			return nil
		}
		q = outcome.Next
	}
	return nil
}

// runFormQuiz walks the question sequence with huh select forms.
func runFormQuiz(ctx context.Context, app *App, cmd *cobra.Command) error {
	q, err := app.Advisor.Start(ctx)
	if err != nil {
		return err
	}

	for q != nil {
		label, err := askWithForm(q)
		if err != nil {
			return err
		}

		outcome, err := app.Advisor.Answer(ctx, label)
		if err != nil {
			return err
		}
		if outcome.Report != nil {
			cmd.Println(formatter.FormatReport(outcome.Report))
			return nil
		}
		q = outcome.Next
	}

	cmd.Println(formatter.FormatReport(app.Advisor.Report(ctx)))
	return nil
}
