package catalog

import "github.com/pathfinderhq/pathfinder/internal/domain"

// Catalog bundles the static data the inference engine runs against:
// attributes, career profiles, the ordered question sequence, and the
// synonym tables used by free-text answer normalization. A Catalog is built
// once at startup and shared read-only across sessions; all slices keep
// declaration order because fallback ranking and next-question selection
// tie-break on it.
type Catalog struct {
	Attributes []domain.Attribute
	Careers    []domain.CareerProfile
	Questions  []domain.Question
	Synonyms   Synonyms

	attrByID     map[string]*domain.Attribute
	careerByName map[string]*domain.CareerProfile
	questionByID map[string]*domain.Question
	byAttribute  map[string][]*domain.Question
}

// Synonyms holds the free-text matching tables consumed by the answer
// normalizer. They are catalog data, not engine logic: swapping the catalog
// swaps the matching vocabulary.
type Synonyms struct {
	// Affirmative and Negative are phrases that resolve Yes/No questions.
	Affirmative []string
	Negative    []string
	// MultiChoice maps question ID -> keyword -> attribute ID ("" keeps the
	// question answered without confirming anything, e.g. "both").
	MultiChoice map[string]map[string]string
	// YesHints maps question ID -> keywords that imply a Yes answer for that
	// specific question.
	YesHints map[string][]string
}

// New builds a Catalog from its parts and prepares the lookup indexes.
func New(attrs []domain.Attribute, careers []domain.CareerProfile, questions []domain.Question, syn Synonyms) *Catalog {
	c := &Catalog{
		Attributes: attrs,
		Careers:    careers,
		Questions:  questions,
		Synonyms:   syn,
	}
	c.buildIndexes()
	return c
}

func (c *Catalog) buildIndexes() {
	c.attrByID = make(map[string]*domain.Attribute, len(c.Attributes))
	for i := range c.Attributes {
		c.attrByID[c.Attributes[i].ID] = &c.Attributes[i]
	}
	c.careerByName = make(map[string]*domain.CareerProfile, len(c.Careers))
	for i := range c.Careers {
		c.careerByName[c.Careers[i].Name] = &c.Careers[i]
	}
	c.questionByID = make(map[string]*domain.Question, len(c.Questions))
	c.byAttribute = make(map[string][]*domain.Question)
	for i := range c.Questions {
		q := &c.Questions[i]
		c.questionByID[q.ID] = q
		seen := make(map[string]bool)
		for _, o := range q.Options {
			if o.Confirms() && !seen[o.AttributeID] {
				seen[o.AttributeID] = true
				c.byAttribute[o.AttributeID] = append(c.byAttribute[o.AttributeID], q)
			}
		}
	}
}

// Attribute returns the attribute with the given ID, or nil.
func (c *Catalog) Attribute(id string) *domain.Attribute {
	return c.attrByID[id]
}

// AttributeLabel returns the human-readable label for an attribute ID,
// falling back to the ID itself for unknown attributes.
func (c *Catalog) AttributeLabel(id string) string {
	if a := c.attrByID[id]; a != nil {
		return a.Label
	}
	return id
}

// Career returns the career profile with the given name, or nil.
func (c *Catalog) Career(name string) *domain.CareerProfile {
	return c.careerByName[name]
}

// Question returns the question with the given ID, or nil.
func (c *Catalog) Question(id string) *domain.Question {
	return c.questionByID[id]
}

// QuestionsYielding returns, in catalog order, every question with an option
// that confirms the given attribute.
func (c *Catalog) QuestionsYielding(attributeID string) []*domain.Question {
	return c.byAttribute[attributeID]
}

// CareerNames returns all career names in catalog declaration order.
func (c *Catalog) CareerNames() []string {
	names := make([]string, len(c.Careers))
	for i := range c.Careers {
		names[i] = c.Careers[i].Name
	}
	return names
}
