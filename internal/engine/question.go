package engine

import (
	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// NextQuestion selects the most discriminating outstanding question for the
// given viable careers. Unknown required attributes are asked about first;
// only when none remain does it move on to unknown preferences. Within each
// tier the catalog's fixed question order decides, and answered questions
// are skipped. Returns nil when no question can still discriminate: the
// session is finished.
func NextQuestion(cat *catalog.Catalog, fs *FactStore, viable []string) *domain.Question {
	unknownRequired := make(map[string]bool)
	unknownPreferred := make(map[string]bool)
	for _, name := range viable {
		career := cat.Career(name)
		if career == nil {
			continue
		}
		for _, id := range career.Required {
			if !fs.HasFact(id) {
				unknownRequired[id] = true
			}
		}
		for _, id := range career.Preferred {
			if !fs.HasFact(id) {
				unknownPreferred[id] = true
			}
		}
	}

	if q := firstQuestionInto(cat, fs, unknownRequired); q != nil {
		return q
	}
	return firstQuestionInto(cat, fs, unknownPreferred)
}

// firstQuestionInto scans the catalog in order for the first unanswered
// question with an option confirming any attribute in wanted.
func firstQuestionInto(cat *catalog.Catalog, fs *FactStore, wanted map[string]bool) *domain.Question {
	if len(wanted) == 0 {
		return nil
	}
	for i := range cat.Questions {
		q := &cat.Questions[i]
		if fs.QuestionAnswered(q.ID) {
			continue
		}
		for _, o := range q.Options {
			if o.Confirms() && wanted[o.AttributeID] {
				return q
			}
		}
	}
	return nil
}
