package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pathfinderhq/pathfinder/internal/cli/formatter"
	"github.com/pathfinderhq/pathfinder/internal/contract"
)

// quizModel is the bubbletea chat interface for a quiz session: a running
// transcript plus a free-text input resolved through the answer normalizer.
type quizModel struct {
	app   *App
	input textinput.Model

	transcript []string
	current    *contract.QuestionView
	done       bool
	err        error
}

func newQuizModel(app *App) *quizModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 200

	m := &quizModel{app: app, input: ti}
	m.transcript = append(m.transcript,
		formatter.Header("Pathfinder"),
		formatter.Dim("Answer in your own words. /restart starts over, /quit exits."),
		"",
	)

	q, err := app.Advisor.Start(context.Background())
	if err != nil {
		m.err = err
		m.done = true
		return m
	}
	if q == nil {
		m.finish()
		return m
	}
	m.current = q
	m.transcript = append(m.transcript, formatter.FormatQuestion(q))
	return m
}

func (m *quizModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			raw := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if raw == "" {
				return m, nil
			}
			return m.handleInput(raw)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *quizModel) View() string {
	var b strings.Builder
	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.done {
		b.WriteString(formatter.Dim("Press enter to exit, or /restart for another round."))
		b.WriteString("\n")
	}
	b.WriteString(formatter.StylePurple.Render("you") + formatter.Dim("> "))
	b.WriteString(m.input.View())
	return b.String()
}

func (m *quizModel) handleInput(raw string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(raw) {
	case "/quit", "/exit", "/q":
		return m, tea.Quit
	case "/restart":
		return m.restart()
	}
	if m.done {
		return m, tea.Quit
	}

	m.transcript = append(m.transcript, formatter.Dim("You: ")+raw)

	outcome, err := m.app.Advisor.Answer(context.Background(), raw)
	if err != nil {
		m.err = err
		m.done = true
		return m, nil
	}

	if outcome.Unresolved {
		m.transcript = append(m.transcript, formatter.FormatReprompt(m.current), "")
		return m, nil
	}

	m.transcript = append(m.transcript, describeOutcome(outcome), "")

	if outcome.Report != nil {
		m.current = nil
		m.transcript = append(m.transcript, formatter.FormatReport(outcome.Report), "")
		m.done = true
		return m, nil
	}

	m.current = outcome.Next
	m.transcript = append(m.transcript, formatter.FormatQuestion(outcome.Next))
	return m, nil
}

func (m *quizModel) restart() (tea.Model, tea.Cmd) {
	m.done = false
	m.err = nil
	m.transcript = append(m.transcript, formatter.Dim("— starting over —"), "")

	q, err := m.app.Advisor.Start(context.Background())
	if err != nil {
		m.err = err
		m.done = true
		return m, nil
	}
	if q == nil {
		m.finish()
		return m, nil
	}
	m.current = q
	m.transcript = append(m.transcript, formatter.FormatQuestion(q))
	return m, nil
}

// finish renders the report for a session that produced no questions.
func (m *quizModel) finish() {
	m.current = nil
	m.done = true
	m.transcript = append(m.transcript, formatter.FormatReport(m.app.Advisor.Report(context.Background())), "")
}

func describeOutcome(outcome *contract.AnswerOutcome) string {
	if outcome.ConfirmedFact != "" {
		return formatter.Dim("Noted: ") + formatter.StyleGreen.Render(outcome.ConfirmedFact)
	}
	return formatter.Dim("Noted.")
}
