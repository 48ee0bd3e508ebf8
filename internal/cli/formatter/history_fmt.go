package formatter

import (
	"fmt"
	"strings"

	"github.com/pathfinderhq/pathfinder/internal/contract"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// FormatConsultationRow renders one line of the history list.
func FormatConsultationRow(c *domain.Consultation) string {
	outcome := Dim("no match")
	switch {
	case len(c.Suggested) > 0:
		outcome = StyleGreen.Render(strings.Join(c.Suggested, ", "))
	case len(c.Fallback) > 0:
		outcome = StyleYellow.Render("~ " + strings.Join(c.Fallback, ", "))
	}
	return fmt.Sprintf("%s  %s  %s",
		Dim(c.CompletedAt.Local().Format("2006-01-02 15:04")),
		Dim(shortID(c.ID)),
		outcome,
	)
}

// FormatConsultationDetail renders the full record of one past run.
func FormatConsultationDetail(c *domain.Consultation, labelFor func(string) string) string {
	var b strings.Builder
	b.WriteString(Header("Consultation " + shortID(c.ID)))
	b.WriteString("\n")
	b.WriteString(Dim("Completed: ") + StyleFg.Render(c.CompletedAt.Local().Format("2006-01-02 15:04")))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Questions answered: %d", c.AnsweredCount)))
	b.WriteString("\n")

	if len(c.Suggested) > 0 {
		b.WriteString("\n" + StyleGreen.Render("Suggested: ") + StyleFg.Render(strings.Join(c.Suggested, ", ")))
	}
	if len(c.Fallback) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Near matches: ") + StyleFg.Render(strings.Join(c.Fallback, ", ")))
	}
	if len(c.Facts) > 0 {
		labels := make([]string, 0, len(c.Facts))
		for _, id := range c.Facts {
			labels = append(labels, labelFor(id))
		}
		b.WriteString("\n" + Dim("Confirmed: ") + StyleFg.Render(strings.Join(labels, ", ")))
	}
	return b.String()
}

// FormatCareer renders one career profile with its attribute labels.
func FormatCareer(v *contract.CareerView) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(v.Name))
	b.WriteString("\n  " + Dim("requires: ") + StyleFg.Render(strings.Join(v.Required, ", ")))
	if len(v.Preferred) > 0 {
		b.WriteString("\n  " + Dim("prefers:  ") + StyleFg.Render(strings.Join(v.Preferred, ", ")))
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
