// Package engine implements the inference core: the per-session fact store
// and the pure evaluation and question-selection functions that narrow the
// career catalog as answers accumulate.
package engine

// FactStore is the working memory of one quiz session: the set of confirmed
// attributes and the set of questions already resolved. Both sets grow
// monotonically; only Reset clears them. A FactStore is owned by a single
// session and is not safe for concurrent use.
type FactStore struct {
	facts    map[string]bool
	answered map[string]bool
}

// NewFactStore returns an empty fact store.
func NewFactStore() *FactStore {
	return &FactStore{
		facts:    make(map[string]bool),
		answered: make(map[string]bool),
	}
}

// Record marks questionID answered and, when attributeID is non-empty, adds
// it to the confirmed facts. An empty attributeID is the "confirms nothing"
// sentinel for answers like "No". Both inserts are idempotent and unknown
// ids are tolerated: Record never fails.
func (s *FactStore) Record(attributeID, questionID string) {
	if attributeID != "" {
		s.facts[attributeID] = true
	}
	if questionID != "" {
		s.answered[questionID] = true
	}
}

// Reset clears all facts and answered questions for a fresh session.
func (s *FactStore) Reset() {
	s.facts = make(map[string]bool)
	s.answered = make(map[string]bool)
}

// HasFact reports whether the attribute has been confirmed.
func (s *FactStore) HasFact(attributeID string) bool {
	return s.facts[attributeID]
}

// QuestionAnswered reports whether the question has been resolved.
func (s *FactStore) QuestionAnswered(questionID string) bool {
	return s.answered[questionID]
}

// FactCount returns the number of confirmed facts.
func (s *FactStore) FactCount() int {
	return len(s.facts)
}

// AnsweredCount returns the number of resolved questions.
func (s *FactStore) AnsweredCount() int {
	return len(s.answered)
}

// Facts returns a copy of the confirmed fact set.
func (s *FactStore) Facts() map[string]bool {
	out := make(map[string]bool, len(s.facts))
	for id := range s.facts {
		out[id] = true
	}
	return out
}

// AnsweredQuestions returns a copy of the answered question set.
func (s *FactStore) AnsweredQuestions() map[string]bool {
	out := make(map[string]bool, len(s.answered))
	for id := range s.answered {
		out[id] = true
	}
	return out
}
