package contract

// CareerView is a career profile prepared for display, with attribute IDs
// already resolved to their human-readable labels.
type CareerView struct {
	Name      string
	Required  []string
	Preferred []string
}
