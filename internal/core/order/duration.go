package order

// DurationEstimator supplies a synthetic duration (in minutes) for a work
// order that reaches complete without a recorded duration. Injectable so
// tests can assert exact outputs instead of depending on a random value.
type DurationEstimator func(p Priority) int

// EstimateByPriority is the default estimator: a fixed figure per priority
// band, deterministic for a given order.
func EstimateByPriority(p Priority) int {
	switch p {
	case PriorityCritical:
		return 180
	case PriorityHigh:
		return 120
	default:
		return 90
	}
}

// FixedDuration returns an estimator that always yields the given minutes.
func FixedDuration(minutes int) DurationEstimator {
	return func(Priority) int {
		return minutes
	}
}
