// Package contract defines the request/response shapes exchanged between
// the services and the CLI layer, independent of any transport.
package contract

import (
	"time"

	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// OptionView is one presentable answer choice.
type OptionView struct {
	Label    string
	Confirms bool
}

// QuestionView is a question prepared for display, with its position in the
// session so the UI can show progress.
type QuestionView struct {
	ID      string
	Prompt  string
	Options []OptionView
	Number  int // 1-based count of questions asked so far, including this one
}

// CareerMatch describes one recommended career with the confirmed attribute
// labels that earned it the spot.
type CareerMatch struct {
	Name              string
	MatchedRequired   []string
	MatchedPreferred  []string
	RequiredTotal     int
	PreferredDeclared int
}

// AdviceReport is the final output of a finished session: the perfect
// matches if any, otherwise up to three near matches, plus the facts the
// user confirmed along the way.
type AdviceReport struct {
	Kind           domain.MatchKind
	Matches        []CareerMatch
	FactLabels     []string
	AnsweredCount  int
	ConsultationID string
}

// AnswerOutcome is the result of submitting one raw answer. Exactly one of
// the three shapes applies: Unresolved (re-prompt, nothing recorded), Next
// (the session continues with another question), or Report (the session
// just finished).
type AnswerOutcome struct {
	Unresolved    bool
	MatchedOption string
	ConfirmedFact string // attribute label, when the answer confirmed one
	Next          *QuestionView
	Report        *AdviceReport
}

// AnswerEvent is emitted to observers after each recorded answer.
type AnswerEvent struct {
	QuestionID   string
	AttributeID  string
	Viable       int
	Suggested    int
	At           time.Time
	SessionState domain.SessionState
}
