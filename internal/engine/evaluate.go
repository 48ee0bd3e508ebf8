package engine

import (
	"sort"

	"github.com/pathfinderhq/pathfinder/internal/catalog"
)

// maxFallback caps the number of near-match suggestions shown when no career
// is a perfect match.
const maxFallback = 3

// Evaluation is the outcome of scoring every career against the current
// facts. Suggested and Viable hold career names in catalog declaration
// order; Fallback is ranked best-first and only populated when Suggested is
// empty.
type Evaluation struct {
	Suggested []string
	Viable    []string
	Fallback  []string
}

// SuggestedSet returns the suggested careers as a set.
func (e Evaluation) SuggestedSet() map[string]bool {
	return toSet(e.Suggested)
}

// ViableSet returns the viable careers as a set.
func (e Evaluation) ViableSet() map[string]bool {
	return toSet(e.Viable)
}

func toSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}

// Evaluate scores every career in the catalog against the session's facts.
//
// A career is suggested when all its required attributes are confirmed and,
// if it declares preferences, at least one of them is confirmed too. A
// career stays viable unless some required attribute is both unconfirmed and
// already covered by an answered question: the user had the chance to
// confirm it and did not. A required attribute nobody has asked about yet is
// unknown, not absent, and never disqualifies.
func Evaluate(cat *catalog.Catalog, fs *FactStore) Evaluation {
	ev := Evaluation{}
	facts := fs.Facts()
	matchCounts := make([]int, len(cat.Careers))

	for i := range cat.Careers {
		career := &cat.Careers[i]
		matchCounts[i] = career.RequiredMatchCount(facts)

		if viable(cat, fs, career.Required) {
			ev.Viable = append(ev.Viable, career.Name)
		}

		if matchCounts[i] == len(career.Required) && preferenceSatisfied(fs, career.Preferred) {
			ev.Suggested = append(ev.Suggested, career.Name)
		}
	}

	if len(ev.Suggested) == 0 {
		ev.Fallback = rankFallback(cat, facts, matchCounts)
	}
	return ev
}

// viable reports whether no required attribute has been ruled out. An
// attribute is ruled out when it is unconfirmed and any question able to
// yield it has already been answered.
func viable(cat *catalog.Catalog, fs *FactStore, required []string) bool {
	for _, id := range required {
		if fs.HasFact(id) {
			continue
		}
		for _, q := range cat.QuestionsYielding(id) {
			if fs.QuestionAnswered(q.ID) {
				return false
			}
		}
	}
	return true
}

// preferenceSatisfied reports whether the preference OR-condition holds:
// vacuously true with no preferences, otherwise at least one confirmed.
func preferenceSatisfied(fs *FactStore, preferred []string) bool {
	if len(preferred) == 0 {
		return true
	}
	for _, id := range preferred {
		if fs.HasFact(id) {
			return true
		}
	}
	return false
}

// rankFallback picks the careers with the highest required-match count and
// orders them by descending preferred-match count. Ties keep catalog
// declaration order so results are reproducible. A zero max score means
// nothing matched at all and there is no fallback.
func rankFallback(cat *catalog.Catalog, facts map[string]bool, matchCounts []int) []string {
	maxScore := 0
	for _, n := range matchCounts {
		if n > maxScore {
			maxScore = n
		}
	}
	if maxScore == 0 {
		return nil
	}

	type candidate struct {
		name      string
		prefScore int
		pos       int
	}
	var candidates []candidate
	for i := range cat.Careers {
		if matchCounts[i] != maxScore {
			continue
		}
		career := &cat.Careers[i]
		candidates = append(candidates, candidate{
			name:      career.Name,
			prefScore: career.PreferredMatchCount(facts),
			pos:       i,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].prefScore != candidates[j].prefScore {
			return candidates[i].prefScore > candidates[j].prefScore
		}
		return candidates[i].pos < candidates[j].pos
	})

	var out []string
	for _, c := range candidates {
		out = append(out, c.name)
		if len(out) == maxFallback {
			break
		}
	}
	return out
}
