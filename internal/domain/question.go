package domain

// Option is one selectable answer to a question. An empty AttributeID is the
// explicit "confirms nothing" sentinel used by answers like "No": the
// question still counts as answered, but no fact is recorded.
type Option struct {
	Label       string
	AttributeID string
}

// Confirms reports whether choosing this option confirms an attribute.
func (o Option) Confirms() bool {
	return o.AttributeID != ""
}

// Question is a single prompt in the catalog's fixed sequence. Two-option
// yes/no questions and multi-choice questions share the same shape.
type Question struct {
	ID      string
	Prompt  string
	Options []Option
}

// Option returns the option with the given label, or nil.
func (q *Question) Option(label string) *Option {
	for i := range q.Options {
		if q.Options[i].Label == label {
			return &q.Options[i]
		}
	}
	return nil
}

// IsYesNo reports whether the question is a plain Yes/No question.
func (q *Question) IsYesNo() bool {
	return len(q.Options) == 2 && q.Option("Yes") != nil && q.Option("No") != nil
}

// Yields reports whether any option of the question confirms the given
// attribute.
func (q *Question) Yields(attributeID string) bool {
	if attributeID == "" {
		return false
	}
	for _, o := range q.Options {
		if o.AttributeID == attributeID {
			return true
		}
	}
	return false
}
