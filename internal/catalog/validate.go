package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError aggregates every integrity violation found in a catalog so
// a bad data file reports all its problems at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog integrity: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the catalog's data-integrity invariants. It is meant to
// run once at load time; a failure is fatal. The critical invariant is that
// every attribute a career references can actually be confirmed by some
// question, otherwise that career is permanently unreachable.
func (c *Catalog) Validate() error {
	var problems []string

	seenAttr := make(map[string]bool)
	for _, a := range c.Attributes {
		if a.ID == "" {
			problems = append(problems, "attribute with empty id")
			continue
		}
		if seenAttr[a.ID] {
			problems = append(problems, fmt.Sprintf("duplicate attribute %q", a.ID))
		}
		seenAttr[a.ID] = true
	}

	seenQ := make(map[string]bool)
	for _, q := range c.Questions {
		if q.ID == "" {
			problems = append(problems, "question with empty id")
			continue
		}
		if seenQ[q.ID] {
			problems = append(problems, fmt.Sprintf("duplicate question %q", q.ID))
		}
		seenQ[q.ID] = true
		if len(q.Options) == 0 {
			problems = append(problems, fmt.Sprintf("question %q has no options", q.ID))
		}
		for _, o := range q.Options {
			if o.Confirms() && !seenAttr[o.AttributeID] {
				problems = append(problems, fmt.Sprintf("question %q option %q references unknown attribute %q", q.ID, o.Label, o.AttributeID))
			}
		}
	}

	seenCareer := make(map[string]bool)
	for _, career := range c.Careers {
		if career.Name == "" {
			problems = append(problems, "career with empty name")
			continue
		}
		if seenCareer[career.Name] {
			problems = append(problems, fmt.Sprintf("duplicate career %q", career.Name))
		}
		seenCareer[career.Name] = true

		for _, id := range career.Required {
			problems = append(problems, c.checkReachable(career.Name, "required", id, seenAttr)...)
		}
		for _, id := range career.Preferred {
			problems = append(problems, c.checkReachable(career.Name, "preferred", id, seenAttr)...)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// checkReachable verifies a career-referenced attribute exists and is
// yielded by at least one question.
func (c *Catalog) checkReachable(career, kind, attrID string, known map[string]bool) []string {
	var problems []string
	if !known[attrID] {
		problems = append(problems, fmt.Sprintf("career %q %s attribute %q is not declared", career, kind, attrID))
	}
	if len(c.QuestionsYielding(attrID)) == 0 {
		problems = append(problems, fmt.Sprintf("career %q %s attribute %q is not yielded by any question", career, kind, attrID))
	}
	return problems
}

// AsValidationError extracts a *ValidationError from err, if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
