package normalize

import (
	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// KeywordNormalizer resolves answers with the catalog's synonym tables. The
// matching stages run in priority order: explicit per-question keyword maps,
// the generic affirmative/negative vocabulary for Yes/No questions,
// per-question yes-implying hints, and finally the declared option labels
// themselves.
type KeywordNormalizer struct {
	syn catalog.Synonyms
}

// NewKeywordNormalizer creates a normalizer over the given synonym tables.
func NewKeywordNormalizer(syn catalog.Synonyms) *KeywordNormalizer {
	return &KeywordNormalizer{syn: syn}
}

func (n *KeywordNormalizer) Resolve(q *domain.Question, raw string) Resolution {
	input := clean(raw)
	if input == "" {
		return Resolution{}
	}

	if res, ok := n.matchMultiChoice(q, input); ok {
		return res
	}
	if q.IsYesNo() {
		if res, ok := n.matchYesNo(q, input); ok {
			return res
		}
	}
	return matchOptionLabels(q, input)
}

// matchMultiChoice applies the per-question keyword map. The longest
// matching keyword wins so "in between" beats "in".
func (n *KeywordNormalizer) matchMultiChoice(q *domain.Question, input string) (Resolution, bool) {
	mapping := n.syn.MultiChoice[q.ID]
	if len(mapping) == 0 {
		return Resolution{}, false
	}

	best := ""
	bestAttr := ""
	for keyword, attrID := range mapping {
		if len(keyword) > len(best) && containsPhrase(input, keyword) {
			best = keyword
			bestAttr = attrID
		}
	}
	if best == "" {
		return Resolution{}, false
	}

	res := Resolution{Matched: true, AttributeID: bestAttr}
	if bestAttr != "" {
		for _, o := range q.Options {
			if o.AttributeID == bestAttr {
				res.OptionLabel = o.Label
				break
			}
		}
	}
	return res, true
}

// matchYesNo resolves a Yes/No question from the generic phrase lists plus
// the question's yes-implying hints. When both polarities match, the longer
// phrase wins ("not really" over "really"); exact ties go to the negative
// reading.
func (n *KeywordNormalizer) matchYesNo(q *domain.Question, input string) (Resolution, bool) {
	yesLen := longestMatch(input, n.syn.Affirmative)
	if hintLen := longestMatch(input, n.syn.YesHints[q.ID]); hintLen > yesLen {
		yesLen = hintLen
	}
	noLen := longestMatch(input, n.syn.Negative)

	if yesLen == 0 && noLen == 0 {
		return Resolution{}, false
	}
	if noLen >= yesLen {
		no := q.Option("No")
		return Resolution{Matched: true, OptionLabel: no.Label}, true
	}
	yes := q.Option("Yes")
	return Resolution{Matched: true, AttributeID: yes.AttributeID, OptionLabel: yes.Label}, true
}

// matchOptionLabels falls back to the declared option labels: an exact
// (case-insensitive) label, or the label appearing inside the input.
func matchOptionLabels(q *domain.Question, input string) Resolution {
	for _, o := range q.Options {
		if clean(o.Label) == input {
			return Resolution{Matched: true, AttributeID: o.AttributeID, OptionLabel: o.Label}
		}
	}
	for _, o := range q.Options {
		label := clean(o.Label)
		if label != "" && containsPhrase(input, label) {
			return Resolution{Matched: true, AttributeID: o.AttributeID, OptionLabel: o.Label}
		}
	}
	return Resolution{}
}

// longestMatch returns the length of the longest phrase found in input.
func longestMatch(input string, phrases []string) int {
	best := 0
	for _, p := range phrases {
		if len(p) > best && containsPhrase(input, p) {
			best = len(p)
		}
	}
	return best
}
