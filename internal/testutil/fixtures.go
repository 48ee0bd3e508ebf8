package testutil

import (
	"time"

	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// TinyCatalog returns a small three-career catalog for engine tests where
// the full built-in data set would obscure the scenario. Careers:
//
//	Builder  requires a+b, prefers c
//	Painter  requires d,   prefers nothing
//	Mixed    requires a+d, prefers b
//
// Questions ask, in order: q_ab (a or b multi-choice), q_a (yes->a),
// q_b (yes->b), q_c (yes->c), q_d (yes->d).
func TinyCatalog() *catalog.Catalog {
	attrs := []domain.Attribute{
		{ID: "a", Label: "skill a"},
		{ID: "b", Label: "skill b"},
		{ID: "c", Label: "skill c"},
		{ID: "d", Label: "skill d"},
	}
	careers := []domain.CareerProfile{
		{Name: "Builder", Required: []string{"a", "b"}, Preferred: []string{"c"}},
		{Name: "Painter", Required: []string{"d"}},
		{Name: "Mixed", Required: []string{"a", "d"}, Preferred: []string{"b"}},
	}
	questions := []domain.Question{
		{
			ID:     "q_ab",
			Prompt: "a or b?",
			Options: []domain.Option{
				{Label: "A", AttributeID: "a"},
				{Label: "B", AttributeID: "b"},
			},
		},
		yesNoQuestion("q_a", "got a?", "a"),
		yesNoQuestion("q_b", "got b?", "b"),
		yesNoQuestion("q_c", "got c?", "c"),
		yesNoQuestion("q_d", "got d?", "d"),
	}
	return catalog.New(attrs, careers, questions, catalog.Synonyms{})
}

func yesNoQuestion(id, prompt, attributeID string) domain.Question {
	return domain.Question{
		ID:     id,
		Prompt: prompt,
		Options: []domain.Option{
			{Label: "Yes", AttributeID: attributeID},
			{Label: "No"},
		},
	}
}

// NewTestConsultation builds a consultation record with sensible defaults.
func NewTestConsultation(id string, opts ...ConsultationOption) *domain.Consultation {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Consultation{
		ID:            id,
		StartedAt:     now.Add(-5 * time.Minute),
		CompletedAt:   now,
		AnsweredCount: 3,
		Facts:         []string{"a", "b"},
		Suggested:     []string{"Builder"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConsultationOption customizes a test consultation.
type ConsultationOption func(*domain.Consultation)

func WithFallback(names ...string) ConsultationOption {
	return func(c *domain.Consultation) {
		c.Suggested = nil
		c.Fallback = names
	}
}

func WithFacts(ids ...string) ConsultationOption {
	return func(c *domain.Consultation) {
		c.Facts = ids
	}
}

func WithCompletedAt(t time.Time) ConsultationOption {
	return func(c *domain.Consultation) {
		c.CompletedAt = t
	}
}
