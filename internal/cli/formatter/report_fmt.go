package formatter

import (
	"fmt"
	"strings"

	"github.com/pathfinderhq/pathfinder/internal/contract"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// FormatQuestion renders a question prompt with its numbered position and
// the declared answer options.
func FormatQuestion(q *contract.QuestionView) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("Q%d. ", q.Number)))
	b.WriteString(StyleFg.Render(q.Prompt))
	b.WriteString("\n")
	b.WriteString(Dim("    (" + strings.Join(optionLabels(q), " / ") + ")"))
	return b.String()
}

func optionLabels(q *contract.QuestionView) []string {
	labels := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		labels = append(labels, o.Label)
	}
	return labels
}

// FormatReprompt renders the re-prompt shown when an answer could not be
// matched against any option.
func FormatReprompt(q *contract.QuestionView) string {
	return StyleYellow.Render("I didn't catch that. ") +
		Dim("Try one of: "+strings.Join(optionLabels(q), " / "))
}

// FormatReport renders the final advice box.
func FormatReport(r *contract.AdviceReport) string {
	var b strings.Builder

	b.WriteString(MatchIndicator(r.Kind))
	b.WriteString("\n\n")

	switch r.Kind {
	case domain.MatchSuggested:
		b.WriteString(StyleFg.Render("Based on your answers, these careers fit you well:"))
	case domain.MatchFallback:
		b.WriteString(StyleFg.Render("No perfect match, but these careers come closest:"))
	default:
		b.WriteString(StyleFg.Render("Your answers did not match any career in the catalog."))
	}
	b.WriteString("\n")

	for _, m := range r.Matches {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Render("  " + m.Name))
		b.WriteString(Dim(fmt.Sprintf("  (%d/%d required skills", len(m.MatchedRequired), m.RequiredTotal)))
		if m.PreferredDeclared > 0 {
			b.WriteString(Dim(fmt.Sprintf(", %d preference(s)", len(m.MatchedPreferred))))
		}
		b.WriteString(Dim(")"))
	}
	if len(r.Matches) > 0 {
		b.WriteString("\n")
	}

	if len(r.FactLabels) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("What you told me: "))
		b.WriteString(StyleFg.Render(strings.Join(r.FactLabels, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d question(s) answered", r.AnsweredCount)))

	return RenderBox("Career Advice", b.String())
}
