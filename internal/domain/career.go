package domain

// CareerProfile describes one career in the catalog. Required attributes are
// AND conditions: every one must be confirmed for a perfect match. Preferred
// attributes are OR conditions: any single confirmed one satisfies the
// profile's preferences. Slice order follows catalog declaration order.
type CareerProfile struct {
	Name      string
	Required  []string
	Preferred []string
}

// RequiredMatchCount returns how many required attributes appear in facts.
func (c *CareerProfile) RequiredMatchCount(facts map[string]bool) int {
	n := 0
	for _, id := range c.Required {
		if facts[id] {
			n++
		}
	}
	return n
}

// PreferredMatchCount returns how many preferred attributes appear in facts.
func (c *CareerProfile) PreferredMatchCount(facts map[string]bool) int {
	n := 0
	for _, id := range c.Preferred {
		if facts[id] {
			n++
		}
	}
	return n
}
