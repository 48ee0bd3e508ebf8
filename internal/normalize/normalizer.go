// Package normalize maps raw free-text answers onto a question's declared
// options. It is the one genuinely heuristic part of the system and is kept
// behind an interface so the inference core never depends on any particular
// text-matching strategy.
package normalize

import (
	"strings"

	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// Resolution is the outcome of normalizing one raw answer. Matched reports
// whether the input could be resolved at all; an empty AttributeID on a
// matched resolution means the question is answered without confirming a
// fact (a "No"-style answer). OptionLabel names the matched option when one
// exists; keyword matches that bypass the declared options leave it empty.
type Resolution struct {
	Matched     bool
	AttributeID string
	OptionLabel string
}

// Confirms reports whether the resolution yields a fact.
func (r Resolution) Confirms() bool {
	return r.Matched && r.AttributeID != ""
}

// Normalizer resolves raw user input against a question's options. An
// unmatched resolution means the caller should re-prompt without touching
// session state.
type Normalizer interface {
	Resolve(q *domain.Question, raw string) Resolution
}

// clean lowercases the input and strips punctuation (apostrophes excepted,
// for contractions like "don't") so phrase matching sees plain words.
func clean(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// containsPhrase reports whether phrase occurs in input on word boundaries,
// so "no" does not match inside "know".
func containsPhrase(input, phrase string) bool {
	padded := " " + input + " "
	return strings.Contains(padded, " "+phrase+" ")
}
