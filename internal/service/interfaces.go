package service

import (
	"context"

	"github.com/pathfinderhq/pathfinder/internal/contract"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// AdvisorService runs one quiz conversation: it hands out questions,
// resolves raw answers through the normalizer, and produces the final
// advice report when no discriminating question remains. One instance holds
// one in-flight session; construct a new instance (or Restart) per
// conversation.
type AdvisorService interface {
	// Start resets the session and returns the first question, or nil when
	// the catalog yields no question at all.
	Start(ctx context.Context) (*contract.QuestionView, error)
	// Answer resolves raw input against the outstanding question. Unresolved
	// input leaves the session untouched and asks the caller to re-prompt.
	Answer(ctx context.Context, raw string) (*contract.AnswerOutcome, error)
	// Current returns the outstanding question, or nil.
	Current(ctx context.Context) *contract.QuestionView
	// State reports where the conversation stands.
	State(ctx context.Context) domain.SessionState
	// Report assembles the advice for the session as it stands now. Normally
	// called implicitly by Answer on the final turn; exposed for displays
	// that want intermediate standings.
	Report(ctx context.Context) *contract.AdviceReport
	// Restart discards all session state.
	Restart(ctx context.Context) error
}

// CareerService exposes read-only catalog browsing.
type CareerService interface {
	List(ctx context.Context) ([]contract.CareerView, error)
	Get(ctx context.Context, name string) (*contract.CareerView, error)
}

// HistoryService manages persisted consultation records.
type HistoryService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.Consultation, error)
	Get(ctx context.Context, id string) (*domain.Consultation, error)
	Delete(ctx context.Context, id string) error
}
