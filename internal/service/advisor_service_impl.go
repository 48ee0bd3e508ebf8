package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/contract"
	"github.com/pathfinderhq/pathfinder/internal/domain"
	"github.com/pathfinderhq/pathfinder/internal/engine"
	"github.com/pathfinderhq/pathfinder/internal/normalize"
	"github.com/pathfinderhq/pathfinder/internal/repository"
)

type advisorService struct {
	cat           *catalog.Catalog
	session       *engine.Session
	norm          normalize.Normalizer
	consultations repository.ConsultationRepo
	observer      AnswerObserver
	startedAt     time.Time
}

// NewAdvisorService creates an advisor over the given catalog. The
// consultation repo may be nil when history persistence is not wanted (e.g.
// dry runs); observer may be nil.
func NewAdvisorService(cat *catalog.Catalog, norm normalize.Normalizer, consultations repository.ConsultationRepo, observer AnswerObserver) AdvisorService {
	if observer == nil {
		observer = NoopAnswerObserver{}
	}
	return &advisorService{
		cat:           cat,
		session:       engine.NewSession(cat),
		norm:          norm,
		consultations: consultations,
		observer:      observer,
	}
}

func (s *advisorService) Start(ctx context.Context) (*contract.QuestionView, error) {
	s.session.Reset()
	s.startedAt = time.Now().UTC()
	q := s.session.Next()
	if q == nil {
		return nil, nil
	}
	return s.questionView(q), nil
}

func (s *advisorService) Answer(ctx context.Context, raw string) (*contract.AnswerOutcome, error) {
	current := s.session.CurrentQuestion()
	if s.session.State() != domain.SessionAwaitingAnswer || current == nil {
		return nil, fmt.Errorf("no question awaiting an answer (state %s)", s.session.State())
	}

	res := s.norm.Resolve(current, raw)
	if !res.Matched {
		return &contract.AnswerOutcome{Unresolved: true}, nil
	}

	s.session.Record(res.AttributeID, current.ID)

	ev := s.session.Evaluate()
	s.observer.OnAnswer(ctx, contract.AnswerEvent{
		QuestionID:   current.ID,
		AttributeID:  res.AttributeID,
		Viable:       len(ev.Viable),
		Suggested:    len(ev.Suggested),
		At:           time.Now().UTC(),
		SessionState: s.session.State(),
	})

	outcome := &contract.AnswerOutcome{
		MatchedOption: res.OptionLabel,
	}
	if res.Confirms() {
		outcome.ConfirmedFact = s.cat.AttributeLabel(res.AttributeID)
	}

	if next := s.session.Next(); next != nil {
		outcome.Next = s.questionView(next)
		return outcome, nil
	}

	report := s.buildReport()
	if err := s.persist(ctx, report); err != nil {
		return nil, fmt.Errorf("saving consultation: %w", err)
	}
	outcome.Report = report
	return outcome, nil
}

func (s *advisorService) Current(ctx context.Context) *contract.QuestionView {
	q := s.session.CurrentQuestion()
	if q == nil {
		return nil
	}
	return s.questionView(q)
}

func (s *advisorService) State(ctx context.Context) domain.SessionState {
	return s.session.State()
}

func (s *advisorService) Report(ctx context.Context) *contract.AdviceReport {
	return s.buildReport()
}

func (s *advisorService) Restart(ctx context.Context) error {
	s.session.Reset()
	s.startedAt = time.Time{}
	return nil
}

func (s *advisorService) questionView(q *domain.Question) *contract.QuestionView {
	view := &contract.QuestionView{
		ID:     q.ID,
		Prompt: q.Prompt,
		Number: s.session.Store().AnsweredCount() + 1,
	}
	for _, o := range q.Options {
		view.Options = append(view.Options, contract.OptionView{Label: o.Label, Confirms: o.Confirms()})
	}
	return view
}

// buildReport assembles the advice for the current facts: suggested careers
// when any exist, otherwise the near-match fallback, otherwise no match.
func (s *advisorService) buildReport() *contract.AdviceReport {
	ev := s.session.Evaluate()
	store := s.session.Store()

	report := &contract.AdviceReport{
		Kind:          domain.MatchNone,
		AnsweredCount: store.AnsweredCount(),
		FactLabels:    s.factLabels(),
	}

	names := ev.Suggested
	if len(names) > 0 {
		report.Kind = domain.MatchSuggested
	} else if len(ev.Fallback) > 0 {
		report.Kind = domain.MatchFallback
		names = ev.Fallback
	}

	facts := store.Facts()
	for _, name := range names {
		career := s.cat.Career(name)
		if career == nil {
			continue
		}
		match := contract.CareerMatch{
			Name:              name,
			RequiredTotal:     len(career.Required),
			PreferredDeclared: len(career.Preferred),
		}
		for _, id := range career.Required {
			if facts[id] {
				match.MatchedRequired = append(match.MatchedRequired, s.cat.AttributeLabel(id))
			}
		}
		for _, id := range career.Preferred {
			if facts[id] {
				match.MatchedPreferred = append(match.MatchedPreferred, s.cat.AttributeLabel(id))
			}
		}
		report.Matches = append(report.Matches, match)
	}
	return report
}

// factLabels returns confirmed fact labels in catalog declaration order so
// output is reproducible.
func (s *advisorService) factLabels() []string {
	facts := s.session.Store().Facts()
	var labels []string
	for _, a := range s.cat.Attributes {
		if facts[a.ID] {
			labels = append(labels, a.Label)
		}
	}
	return labels
}

// confirmedFactIDs returns confirmed attribute IDs in catalog order.
func (s *advisorService) confirmedFactIDs() []string {
	facts := s.session.Store().Facts()
	var ids []string
	for _, a := range s.cat.Attributes {
		if facts[a.ID] {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// persist writes the finished session to the consultation history.
func (s *advisorService) persist(ctx context.Context, report *contract.AdviceReport) error {
	if s.consultations == nil {
		return nil
	}

	ev := s.session.Evaluate()
	c := &domain.Consultation{
		ID:            uuid.New().String(),
		StartedAt:     s.startedAt,
		CompletedAt:   time.Now().UTC(),
		AnsweredCount: s.session.Store().AnsweredCount(),
		Facts:         s.confirmedFactIDs(),
		Suggested:     ev.Suggested,
		Fallback:      ev.Fallback,
	}
	if c.StartedAt.IsZero() {
		c.StartedAt = c.CompletedAt
	}
	if err := s.consultations.Create(ctx, c); err != nil {
		return err
	}
	report.ConsultationID = c.ID
	return nil
}
