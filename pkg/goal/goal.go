package goal

// Goal is a user-set target pair. Zero values mean "no goal set", not a goal
// of zero; progress calculations treat them as absent.
type Goal struct {
	TargetHours    float64
	TargetEarnings float64
}

// IsSet reports whether either target has been given a non-zero value.
func (g Goal) IsSet() bool {
	return g.TargetHours != 0 || g.TargetEarnings != 0
}
