package analyzer

import "time"

type cohort int

const (
	cohortRecent cohort = iota
	cohortMedium
	cohortRare
	cohortCold
)

// classifyAge places an object creation time into exactly one age
// cohort relative to now. Bands are half-open and checked in order.
func classifyAge(now, created time.Time) cohort {
	switch {
	case created.After(now.AddDate(0, 0, -30)):
		return cohortRecent
	case created.After(now.AddDate(0, 0, -90)):
		return cohortMedium
	case created.After(now.AddDate(0, 0, -365)):
		return cohortRare
	default:
		return cohortCold
	}
}
