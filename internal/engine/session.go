package engine

import (
	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// Session ties a fact store to a catalog and tracks where the conversation
// stands. Each conversation gets its own Session; the catalog is shared
// read-only. The flow is a linear ask → record → re-evaluate cycle:
// NotStarted until the first Next call, AwaitingAnswer while a question is
// outstanding, Finished once no question can discriminate further.
type Session struct {
	cat     *catalog.Catalog
	store   *FactStore
	state   domain.SessionState
	current *domain.Question
}

// NewSession creates a fresh session over the given catalog.
func NewSession(cat *catalog.Catalog) *Session {
	return &Session{
		cat:   cat,
		store: NewFactStore(),
		state: domain.SessionNotStarted,
	}
}

// State returns the current conversation state.
func (s *Session) State() domain.SessionState {
	return s.state
}

// CurrentQuestion returns the outstanding question, or nil.
func (s *Session) CurrentQuestion() *domain.Question {
	return s.current
}

// Store exposes the session's fact store for read access.
func (s *Session) Store() *FactStore {
	return s.store
}

// Catalog returns the catalog the session runs against.
func (s *Session) Catalog() *catalog.Catalog {
	return s.cat
}

// Record resolves the outstanding question with the given attribute (empty
// for a "confirms nothing" answer).
func (s *Session) Record(attributeID, questionID string) {
	s.store.Record(attributeID, questionID)
}

// Evaluate scores the catalog against the session's current facts.
func (s *Session) Evaluate() Evaluation {
	return Evaluate(s.cat, s.store)
}

// Next advances the conversation: it evaluates, selects the next question
// for the still-viable careers, and updates the session state. A nil return
// means the session has reached its terminal state.
func (s *Session) Next() *domain.Question {
	ev := s.Evaluate()
	q := NextQuestion(s.cat, s.store, ev.Viable)
	s.current = q
	if q == nil {
		s.state = domain.SessionFinished
	} else {
		s.state = domain.SessionAwaitingAnswer
	}
	return q
}

// Reset clears all session state, returning to NotStarted.
func (s *Session) Reset() {
	s.store.Reset()
	s.current = nil
	s.state = domain.SessionNotStarted
}
