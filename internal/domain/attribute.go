package domain

// Attribute names a skill or preference a user can confirm, such as
// "analytical_thinking". The label is the human-readable phrasing used when
// presenting confirmed facts back to the user.
type Attribute struct {
	ID    string
	Label string
}
